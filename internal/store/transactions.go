package store

import (
	"github.com/osokin-dev/gymcart/internal/domain"
)

// DoOrder выполняет оптимистичную мутацию заказа в стиле unit-of-work:
// снимок всех денормализованных копий, затем fn, и откат к снимку если fn
// вернула ошибку. Внутри fn ожидается последовательность SetStatus
// (оптимистичное применение) и Commit (замена копий каноничным ответом
// сервера). Блокировка store не удерживается на время fn, поэтому два
// DoOrder по одному id обязаны сериализоваться на уровне вызывающего.
func (s *Store) DoOrder(id string, fn func(tx *OrderTxn) error) error {
	snap, err := s.snapshotOrder(id)
	if err != nil {
		return err
	}
	tx := &OrderTxn{store: s, id: id}
	if fnErr := fn(tx); fnErr != nil {
		s.restoreOrder(snap)
		return fnErr
	}
	return nil
}

// DoMembership - то же что DoOrder, для абонементов.
func (s *Store) DoMembership(id string, fn func(tx *MembershipTxn) error) error {
	snap, err := s.snapshotMembership(id)
	if err != nil {
		return err
	}
	tx := &MembershipTxn{store: s, id: id}
	if fnErr := fn(tx); fnErr != nil {
		s.restoreMembership(snap)
		return fnErr
	}
	return nil
}

type OrderTxn struct {
	store *Store
	id    string
}

// SetStatus синхронно применяет оптимистичный статус ко всем копиям заказа.
func (t *OrderTxn) SetStatus(status domain.OrderStatusType) {
	t.store.mutateOrder(t.id, func(o *domain.Order) {
		o.Status = status
	})
}

// Commit заменяет каждую копию каноничной сущностью из ответа сервера.
func (t *OrderTxn) Commit(canonical domain.Order) {
	t.store.mutateOrder(t.id, func(o *domain.Order) {
		*o = canonical
	})
}

type MembershipTxn struct {
	store *Store
	id    string
}

func (t *MembershipTxn) SetStatus(status domain.MembershipStatusType) {
	t.store.mutateMembership(t.id, func(m *domain.Membership) {
		m.Status = status
	})
}

func (t *MembershipTxn) Commit(canonical domain.Membership) {
	t.store.mutateMembership(t.id, func(m *domain.Membership) {
		*m = canonical
	})
}

type orderSnapshot struct {
	id     string
	copies map[collectionName]domain.Order
}

type membershipSnapshot struct {
	id     string
	copies map[collectionName]domain.Membership
}

func (s *Store) snapshotOrder(id string) (orderSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := orderSnapshot{id: id, copies: make(map[collectionName]domain.Order)}
	for i := range s.orders {
		if s.orders[i].ID == id {
			snap.copies[collOrders] = s.orders[i]
			break
		}
	}
	if s.selectedOrder != nil && s.selectedOrder.ID == id {
		snap.copies[collSelectedOrder] = *s.selectedOrder
	}
	if len(snap.copies) == 0 {
		return orderSnapshot{}, domain.ErrEntityNotFound
	}
	return snap, nil
}

func (s *Store) snapshotMembership(id string) (membershipSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := membershipSnapshot{id: id, copies: make(map[collectionName]domain.Membership)}
	for i := range s.memberships {
		if s.memberships[i].ID == id {
			snap.copies[collMemberships] = s.memberships[i]
			break
		}
	}
	for i := range s.myMemberships {
		if s.myMemberships[i].ID == id {
			snap.copies[collMyMemberships] = s.myMemberships[i]
			break
		}
	}
	if s.selectedMembership != nil && s.selectedMembership.ID == id {
		snap.copies[collSelectedMembership] = *s.selectedMembership
	}
	if len(snap.copies) == 0 {
		return membershipSnapshot{}, domain.ErrEntityNotFound
	}
	return snap, nil
}

// mutateOrder применяет fn ко всем текущим копиям заказа под блокировкой.
func (s *Store) mutateOrder(id string, fn func(*domain.Order)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			fn(&s.orders[i])
		}
	}
	if s.selectedOrder != nil && s.selectedOrder.ID == id {
		fn(s.selectedOrder)
	}
}

func (s *Store) mutateMembership(id string, fn func(*domain.Membership)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.memberships {
		if s.memberships[i].ID == id {
			fn(&s.memberships[i])
		}
	}
	for i := range s.myMemberships {
		if s.myMemberships[i].ID == id {
			fn(&s.myMemberships[i])
		}
	}
	if s.selectedMembership != nil && s.selectedMembership.ID == id {
		fn(s.selectedMembership)
	}
}

// restoreOrder возвращает каждой копии значение из снимка. Копии ищутся по
// id, а не по позиции: список мог быть заменен пока мутация была в полете.
func (s *Store) restoreOrder(snap orderSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := snap.copies[collOrders]; ok {
		for i := range s.orders {
			if s.orders[i].ID == snap.id {
				s.orders[i] = prev
			}
		}
	}
	if prev, ok := snap.copies[collSelectedOrder]; ok {
		if s.selectedOrder != nil && s.selectedOrder.ID == snap.id {
			*s.selectedOrder = prev
		}
	}
}

func (s *Store) restoreMembership(snap membershipSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := snap.copies[collMemberships]; ok {
		for i := range s.memberships {
			if s.memberships[i].ID == snap.id {
				s.memberships[i] = prev
			}
		}
	}
	if prev, ok := snap.copies[collMyMemberships]; ok {
		for i := range s.myMemberships {
			if s.myMemberships[i].ID == snap.id {
				s.myMemberships[i] = prev
			}
		}
	}
	if prev, ok := snap.copies[collSelectedMembership]; ok {
		if s.selectedMembership != nil && s.selectedMembership.ID == snap.id {
			*s.selectedMembership = prev
		}
	}
}
