package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrUnknown        = errors.New("unknown error")

	ErrMinOrderAmountNotMet = errors.New("minimum order amount not met")
)

// InvalidTransitionError возвращается локальным guard'ом до любого сетевого
// вызова: запрошенный целевой статус недостижим из текущего по графу переходов.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func NewInvalidTransitionError(entity, from, to string) error {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("illegal %s status transition %q -> %q", e.Entity, e.From, e.To)
}

// InvalidAmountError сигнализирует о нарушении денежного инварианта заказа
// (отрицательная скидка или finalAmount != totalAmount - discount).
type InvalidAmountError struct {
	Field string
	Value fmt.Stringer
}

func NewInvalidAmountError(field string, value fmt.Stringer) error {
	return &InvalidAmountError{Field: field, Value: value}
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid order amount: %s=%s", e.Field, e.Value.String())
}

// ConcurrentMutationError возвращается когда запрос перехода не дождался
// завершения уже выполняющегося запроса по той же сущности.
type ConcurrentMutationError struct {
	EntityID string
}

func NewConcurrentMutationError(entityID string) error {
	return &ConcurrentMutationError{EntityID: entityID}
}

func (e *ConcurrentMutationError) Error() string {
	return fmt.Sprintf("concurrent mutation in flight for entity %s", e.EntityID)
}
