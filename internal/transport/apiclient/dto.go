package apiclient

import (
	"time"

	"github.com/osokin-dev/gymcart/internal/domain"
)

// Pagination - серверный конверт постраничных списков.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type UpdateOrderStatusRequest struct {
	Status domain.OrderStatusType `json:"status"`
}

type AssignMembershipRequest struct {
	UserID    string    `json:"userId"`
	PlanID    string    `json:"planId"`
	StartDate time.Time `json:"startDate"`
}

// ListArgs - фильтры постраничных списков. Нулевые значения не попадают
// в query string.
type ListArgs struct {
	Page   int
	Limit  int
	GymID  string
	Status string
}
