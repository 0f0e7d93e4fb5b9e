package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const percentBase = 100

// ResolvePromoStatus вычисляет эффективный статус промокода на момент now.
// Правила проверяются строго в фиксированном порядке приоритета: выключенный
// флаг бьет любые проверки по датам, проверки окна действия идут раньше
// проверки исчерпания лимита. Функция чистая, результат ровно один.
func ResolvePromoStatus(promo PromoCode, now time.Time) PromoStatusType {
	if !promo.IsActive {
		return PromoStatusInactive
	}
	if promo.ValidFrom != nil && now.Before(*promo.ValidFrom) {
		return PromoStatusScheduled
	}
	if promo.ValidUntil != nil && now.After(*promo.ValidUntil) {
		return PromoStatusExpired
	}
	if promo.UsageLimit != nil && promo.UsedCount >= *promo.UsageLimit {
		return PromoStatusExhausted
	}
	return PromoStatusActive
}

// ComputeDiscount считает размер скидки промокода для заказа на сумму total.
// Возвращает ErrMinOrderAmountNotMet если сумма заказа ниже минимального
// порога промокода. Скидка ограничивается сверху MaxDiscount (если задан)
// и суммой заказа, чтобы итог не ушел в минус.
func ComputeDiscount(promo PromoCode, total decimal.Decimal) (decimal.Decimal, error) {
	if promo.MinOrderAmount != nil && total.LessThan(*promo.MinOrderAmount) {
		return decimal.Zero, ErrMinOrderAmountNotMet
	}

	var discount decimal.Decimal
	switch promo.DiscountType {
	case DiscountPercentage:
		discount = total.Mul(promo.DiscountValue).Div(decimal.NewFromInt(percentBase))
	case DiscountFixed:
		discount = promo.DiscountValue
	default:
		return decimal.Zero, ErrUnknown
	}

	if promo.MaxDiscount != nil && discount.GreaterThan(*promo.MaxDiscount) {
		discount = *promo.MaxDiscount
	}
	if discount.GreaterThan(total) {
		discount = total
	}
	return discount, nil
}
