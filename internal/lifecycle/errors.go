package lifecycle

import "fmt"

// RemoteRejectionError оборачивает отказ авторитетного вызова (сетевая
// ошибка, не-2xx статус, таймаут). К моменту получения этой ошибки откат
// оптимистичных копий уже выполнен.
type RemoteRejectionError struct {
	Err error
}

func NewRemoteRejectionError(err error) error {
	return &RemoteRejectionError{Err: err}
}

func (e *RemoteRejectionError) Error() string {
	return fmt.Sprintf("authoritative call rejected: %s", e.Err.Error())
}

func (e *RemoteRejectionError) Unwrap() error {
	return e.Err
}
