package domain

import (
	"math"
	"time"
)

const expiryWarningDays = 7

// DaysUntilExpiry возвращает кол-во дней до окончания абонемента, округленное
// вверх. Для прошедшей endDate значение будет нулевым или отрицательным.
func DaysUntilExpiry(m Membership, now time.Time) int {
	hours := m.EndDate.Sub(now).Hours()
	return int(math.Ceil(hours / 24))
}

// IsExpiringSoon возвращает true если активный абонемент заканчивается в
// ближайшие 7 дней. Уже прошедшая endDate - это отдельное состояние
// "истек", а не "скоро истекает", поэтому возвращается false.
func IsExpiringSoon(m Membership, now time.Time) bool {
	if m.Status != MembershipStatusActive {
		return false
	}
	days := DaysUntilExpiry(m, now)
	return days > 0 && days <= expiryWarningDays
}

// HasExpired возвращает true для активного абонемента с endDate в прошлом.
// Это условие наблюдается на чтении и никогда не отправляется на сервер
// как явный переход статуса.
func HasExpired(m Membership, now time.Time) bool {
	return m.Status == MembershipStatusActive && now.After(m.EndDate)
}
