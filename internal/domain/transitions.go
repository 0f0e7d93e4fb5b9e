package domain

// orderTransitions задает полный граф допустимых переходов статусов заказа.
// Граф направленный, без циклов и без петель: повторный переход в текущий
// статус считается нелегальным наравне с любым другим отсутствующим ребром.
var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

func (s OrderStatusType) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// IsTerminal возвращает true для статусов из которых нет ни одного ребра.
func (s OrderStatusType) IsTerminal() bool {
	targets, ok := orderTransitions[s]
	return ok && len(targets) == 0
}

// CanTransitionTo проверяет наличие ребра s -> target в графе переходов.
func (s OrderStatusType) CanTransitionTo(target OrderStatusType) bool {
	for _, t := range orderTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// LegalTargets возвращает копию списка допустимых целевых статусов.
func (s OrderStatusType) LegalTargets() []OrderStatusType {
	targets := orderTransitions[s]
	out := make([]OrderStatusType, len(targets))
	copy(out, targets)
	return out
}

func (s MembershipStatusType) IsValid() bool {
	switch s {
	case MembershipStatusActive, MembershipStatusExpired, MembershipStatusCancelled:
		return true
	default:
		return false
	}
}

func (s MembershipStatusType) IsTerminal() bool {
	return s == MembershipStatusCancelled
}

// CanTransitionTo разрешает единственный явный переход active -> cancelled.
// Статус expired не бывает целью перехода: это производная метка на чтении,
// она выставляется локально когда endDate осталась в прошлом.
func (s MembershipStatusType) CanTransitionTo(target MembershipStatusType) bool {
	return s == MembershipStatusActive && target == MembershipStatusCancelled
}
