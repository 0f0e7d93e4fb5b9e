package lifecycle

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/osokin-dev/gymcart/internal/domain"
	"github.com/osokin-dev/gymcart/internal/transport/apiclient"
)

// Remote - авторитетный сервис заказов/абонементов. Каждый мутирующий вызов
// обязан вернуть полную каноничную сущность, а не флаг успеха: реконсиляция
// подставляет ответ вместо оптимистичных копий как есть.
type Remote interface {
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatusType) (*domain.Order, error)
	CancelMembership(ctx context.Context, membershipID string) (*domain.Membership, error)
	AssignMembership(ctx context.Context, args apiclient.AssignMembershipRequest) (*domain.Membership, error)
	ListMyMemberships(ctx context.Context, args apiclient.ListArgs) (*apiclient.Page[domain.Membership], error)
}
