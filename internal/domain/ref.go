package domain

import (
	"bytes"
	"context"
	"encoding/json"
)

// Referenced реализуют сущности, на которые можно ссылаться по идентификатору.
type Referenced interface {
	RefID() string
}

// Ref - ссылочное поле, которое API отдает в двух кодировках: либо голой
// строкой-идентификатором, либо полностью заполненным объектом (populated).
// Вместо разбросанных по месту вызова проверок типа, вариант фиксируется
// один раз при декодировании.
type Ref[T Referenced] struct {
	id    string
	value *T
}

func NewRef[T Referenced](id string) Ref[T] {
	return Ref[T]{id: id}
}

func NewPopulatedRef[T Referenced](value T) Ref[T] {
	return Ref[T]{id: value.RefID(), value: &value}
}

// ID возвращает идентификатор ссылки независимо от варианта.
func (r Ref[T]) ID() string {
	return r.id
}

// Value возвращает заполненный объект и признак его наличия.
func (r Ref[T]) Value() (T, bool) {
	if r.value == nil {
		var zero T
		return zero, false
	}
	return *r.value, true
}

func (r Ref[T]) IsPopulated() bool {
	return r.value != nil
}

func (r Ref[T]) IsZero() bool {
	return r.id == "" && r.value == nil
}

// ResolveRef возвращает заполненный объект ссылки, при необходимости получая
// его через fetch по идентификатору.
func ResolveRef[T Referenced](ctx context.Context, r Ref[T], fetch func(context.Context, string) (T, error)) (T, error) {
	if v, ok := r.Value(); ok {
		return v, nil
	}
	return fetch(ctx, r.id)
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = Ref[T]{}
		return nil
	}

	// Строка - голый идентификатор.
	if trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return err
		}
		*r = Ref[T]{id: id}
		return nil
	}

	// Иначе ожидаем заполненный объект.
	var value T
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return err
	}
	*r = Ref[T]{id: value.RefID(), value: &value}
	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.value != nil {
		return json.Marshal(*r.value)
	}
	if r.id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}
