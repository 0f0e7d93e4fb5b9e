package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestOrderStatusCanTransitionTo перебирает все пары статусов и сверяет
// результат с полным списком ребер графа.
func TestOrderStatusCanTransitionTo(t *testing.T) {
	all := []OrderStatusType{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}

	legal := map[OrderStatusType][]OrderStatusType{
		OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
		OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
		OrderStatusShipped:   {OrderStatusDelivered},
		OrderStatusDelivered: {},
		OrderStatusCancelled: {},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, allowed := range legal[from] {
				if allowed == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

// TestOrderStatusNoSelfLoops проверяет что повторный переход в текущий
// статус нелегален для каждого статуса.
func TestOrderStatusNoSelfLoops(t *testing.T) {
	for status := range orderTransitions {
		assert.False(t, status.CanTransitionTo(status), "self loop %s", status)
	}
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusConfirmed.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
}

func TestOrderStatusIsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.False(t, OrderStatusType("refunded").IsValid())
	assert.False(t, OrderStatusType("").IsValid())
}

func TestOrderStatusLegalTargets(t *testing.T) {
	targets := OrderStatusPending.LegalTargets()
	assert.ElementsMatch(t, []OrderStatusType{OrderStatusConfirmed, OrderStatusCancelled}, targets)

	// возвращается копия, мутация не должна задеть таблицу.
	targets[0] = OrderStatusDelivered
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusConfirmed))
}

// TestMembershipStatusCanTransitionTo: единственное легальное ребро
// active -> cancelled, expired не бывает целью перехода.
func TestMembershipStatusCanTransitionTo(t *testing.T) {
	all := []MembershipStatusType{
		MembershipStatusActive,
		MembershipStatusExpired,
		MembershipStatusCancelled,
	}

	for _, from := range all {
		for _, to := range all {
			want := from == MembershipStatusActive && to == MembershipStatusCancelled
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestMembershipStatusIsTerminal(t *testing.T) {
	assert.True(t, MembershipStatusCancelled.IsTerminal())
	assert.False(t, MembershipStatusActive.IsTerminal())
	assert.False(t, MembershipStatusExpired.IsTerminal())
}
