package domain

type OrderStatusType string

const (
	OrderStatusPending   OrderStatusType = "pending"
	OrderStatusConfirmed OrderStatusType = "confirmed"
	OrderStatusShipped   OrderStatusType = "shipped"
	OrderStatusDelivered OrderStatusType = "delivered"
	OrderStatusCancelled OrderStatusType = "cancelled"
)

type MembershipStatusType string

const (
	MembershipStatusActive    MembershipStatusType = "active"
	MembershipStatusExpired   MembershipStatusType = "expired"
	MembershipStatusCancelled MembershipStatusType = "cancelled"
)

// PromoStatusType никогда не хранится, всегда вычисляется на чтении (см. ResolvePromoStatus).
type PromoStatusType string

const (
	PromoStatusInactive  PromoStatusType = "inactive"
	PromoStatusScheduled PromoStatusType = "scheduled"
	PromoStatusExpired   PromoStatusType = "expired"
	PromoStatusExhausted PromoStatusType = "exhausted"
	PromoStatusActive    PromoStatusType = "active"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)
