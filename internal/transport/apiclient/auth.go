package apiclient

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// checkTokenExpiry разбирает bearer токен без проверки подписи и возвращает
// ErrTokenExpired если claim exp остался в прошлом. Подпись проверяет сервер,
// клиенту важно лишь не начинать оптимистичное окно с заведомо мертвым
// токеном. Токен без exp или не-JWT токен пропускается как есть.
func checkTokenExpiry(token string, now time.Time) error {
	if token == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil //nolint:nilerr // непрозрачный (не-JWT) токен отдаем серверу как есть.
	}

	exp, expErr := claims.GetExpirationTime()
	if expErr != nil || exp == nil {
		return nil
	}
	if exp.Before(now) {
		return ErrTokenExpired
	}
	return nil
}
