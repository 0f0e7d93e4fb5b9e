package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        string    `json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
}

func (u User) RefID() string { return u.ID }

type Gym struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
}

func (g Gym) RefID() string { return g.ID }

type Plan struct {
	ID           string          `json:"_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"durationDays"`
	Features     []string        `json:"features"`
}

func (p Plan) RefID() string { return p.ID }

type OrderItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

// Order создается единожды на чекауте, состав позиций после создания не
// меняется. Мутируется только переходами статуса по графу из transitions.go.
type Order struct {
	ID              string          `json:"_id"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	User            Ref[User]       `json:"user"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Discount        decimal.Decimal `json:"discount"`
	FinalAmount     decimal.Decimal `json:"finalAmount"`
	PromoCode       string          `json:"promoCode,omitempty"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Status          OrderStatusType `json:"status"`
}

// Validate проверяет денежные инварианты заказа: скидка неотрицательна,
// итог неотрицателен и равен total - discount.
func (o *Order) Validate() error {
	if o.Discount.IsNegative() {
		return NewInvalidAmountError("discount", o.Discount)
	}
	if o.FinalAmount.IsNegative() {
		return NewInvalidAmountError("finalAmount", o.FinalAmount)
	}
	if !o.FinalAmount.Equal(o.TotalAmount.Sub(o.Discount)) {
		return NewInvalidAmountError("finalAmount", o.FinalAmount)
	}
	return nil
}

type Membership struct {
	ID        string               `json:"_id"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
	User      Ref[User]            `json:"user"`
	Plan      Ref[Plan]            `json:"plan"`
	Gym       Ref[Gym]             `json:"gym"`
	StartDate time.Time            `json:"startDate"`
	EndDate   time.Time            `json:"endDate"`
	Status    MembershipStatusType `json:"status"`
}

type PromoCode struct {
	Code           string           `json:"code"`
	DiscountType   DiscountType     `json:"discountType"`
	DiscountValue  decimal.Decimal  `json:"discountValue"`
	MinOrderAmount *decimal.Decimal `json:"minOrderAmount,omitempty"`
	MaxDiscount    *decimal.Decimal `json:"maxDiscount,omitempty"`
	ValidFrom      *time.Time       `json:"validFrom,omitempty"`
	ValidUntil     *time.Time       `json:"validUntil,omitempty"`
	UsageLimit     *int             `json:"usageLimit,omitempty"`
	UsedCount      int              `json:"usedCount"`
	IsActive       bool             `json:"isActive"`
}
