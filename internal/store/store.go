// Package store содержит in-memory состояние клиента: плоские списки и
// слоты выбранной сущности. Одна и та же сущность может одновременно лежать
// в нескольких коллекциях (денормализованные копии), поэтому любая мутация
// применяется ко всем копиям атомарно, под одной блокировкой.
package store

import (
	"sync"

	"github.com/osokin-dev/gymcart/internal/domain"
)

type collectionName string

const (
	collOrders             collectionName = "orders"
	collSelectedOrder      collectionName = "selected_order"
	collMemberships        collectionName = "memberships"
	collMyMemberships      collectionName = "my_memberships"
	collSelectedMembership collectionName = "selected_membership"
)

type Store struct {
	mu sync.RWMutex

	orders        []domain.Order
	selectedOrder *domain.Order

	memberships        []domain.Membership
	myMemberships      []domain.Membership
	selectedMembership *domain.Membership

	// terminal хранит id сущностей, по которым получен авторитетный
	// терминальный ответ. Дополнительная защита поверх статической таблицы
	// переходов: после нее любые новые запросы отклоняются локально.
	terminal map[string]struct{}

	currentUserID string
}

func New() *Store {
	return &Store{
		terminal: make(map[string]struct{}),
	}
}

// SetCurrentUser задает пользователя, от имени которого работает клиент.
// Нужен чтобы понимать, какие созданные абонементы класть в "мои".
func (s *Store) SetCurrentUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUserID = userID
}

func (s *Store) ReplaceOrders(orders []domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]domain.Order(nil), orders...)
}

func (s *Store) ReplaceMemberships(memberships []domain.Membership) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memberships = append([]domain.Membership(nil), memberships...)
}

func (s *Store) ReplaceMyMemberships(memberships []domain.Membership) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.myMemberships = append([]domain.Membership(nil), memberships...)
}

// SelectOrder копирует заказ из списка в слот выбранного заказа.
func (s *Store) SelectOrder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			s.selectedOrder = &o
			return nil
		}
	}
	return domain.ErrEntityNotFound
}

// SelectMembership копирует абонемент из любого списка в слот выбранного.
func (s *Store) SelectMembership(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, list := range [][]domain.Membership{s.memberships, s.myMemberships} {
		for i := range list {
			if list[i].ID == id {
				m := list[i]
				s.selectedMembership = &m
				return nil
			}
		}
	}
	return domain.ErrEntityNotFound
}

func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Order(nil), s.orders...)
}

func (s *Store) Memberships() []domain.Membership {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Membership(nil), s.memberships...)
}

func (s *Store) MyMemberships() []domain.Membership {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Membership(nil), s.myMemberships...)
}

func (s *Store) SelectedOrder() (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedOrder == nil {
		return domain.Order{}, false
	}
	return *s.selectedOrder, true
}

func (s *Store) SelectedMembership() (domain.Membership, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedMembership == nil {
		return domain.Membership{}, false
	}
	return *s.selectedMembership, true
}

// Order возвращает первую найденную копию заказа.
func (s *Store) Order(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			return s.orders[i], true
		}
	}
	if s.selectedOrder != nil && s.selectedOrder.ID == id {
		return *s.selectedOrder, true
	}
	return domain.Order{}, false
}

// Membership возвращает первую найденную копию абонемента.
func (s *Store) Membership(id string) (domain.Membership, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, list := range [][]domain.Membership{s.memberships, s.myMemberships} {
		for i := range list {
			if list[i].ID == id {
				return list[i], true
			}
		}
	}
	if s.selectedMembership != nil && s.selectedMembership.ID == id {
		return *s.selectedMembership, true
	}
	return domain.Membership{}, false
}

// InsertMembership добавляет созданный абонемент во все релевантные
// коллекции одной атомарной операцией.
func (s *Store) InsertMembership(m domain.Membership) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memberships = append(s.memberships, m)
	if s.currentUserID != "" && m.User.ID() == s.currentUserID {
		s.myMemberships = append(s.myMemberships, m)
	}
}

func (s *Store) MarkTerminal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terminal[id] = struct{}{}
}

func (s *Store) IsTerminal(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.terminal[id]
	return ok
}
