// Package lifecycle реализует движок жизненного цикла заказов и абонементов:
// локальный guard по таблице переходов, оптимистичное применение статуса ко
// всем денормализованным копиям в store и реконсиляцию с авторитетным
// ответом сервиса (или откат при отказе).
package lifecycle

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/osokin-dev/gymcart/internal/domain"
	"github.com/osokin-dev/gymcart/internal/metrics"
	"github.com/osokin-dev/gymcart/internal/store"
	"github.com/osokin-dev/gymcart/internal/transport/apiclient"
)

const (
	defaultRemoteTimeout = 10 * time.Second

	entityOrder      = "order"
	entityMembership = "membership"
)

type Executor struct {
	st     *store.Store
	remote Remote
	l      *logrus.Entry

	// timeout ограничивает авторитетный вызов, чтобы оптимистичное состояние
	// не висело неразрешенным: зависший вызов превращается в откат с ошибкой.
	timeout time.Duration

	locks *keyedMutex
}

func New(st *store.Store, remote Remote, l *logrus.Logger) *Executor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "lifecycle",
		"module":    "executor",
	})

	return &Executor{
		st:      st,
		remote:  remote,
		l:       loggerEntry,
		timeout: defaultRemoteTimeout,
		locks:   newKeyedMutex(),
	}
}

// SetRemoteTimeout устанавливает таймаут авторитетного вызова.
func (e *Executor) SetRemoteTimeout(timeout time.Duration) *Executor {
	e.timeout = timeout
	return e
}

// RequestOrderTransition переводит заказ в статус target.
//
// Порядок работы:
//  1. Захват per-entity блокировки: конкурирующий запрос по тому же заказу
//     ждет завершения текущего, а не гонится с устаревшим снимком.
//  2. Чисто локальный guard по таблице переходов - выполняется до любого
//     I/O, при отказе сетевой вызов не делается и откатывать нечего.
//  3. Оптимистичное применение статуса ко всем копиям, один авторитетный
//     вызов, затем замена копий каноничным ответом сервера либо полный
//     откат к снимку.
func (e *Executor) RequestOrderTransition(
	ctx context.Context,
	orderID string,
	target domain.OrderStatusType,
) (*domain.Order, error) {
	if lockErr := e.locks.lock(ctx, orderID); lockErr != nil {
		metrics.RecordTransition(entityOrder, string(target), metrics.OutcomeRejected)
		return nil, lockErr
	}
	defer e.locks.unlock(orderID)

	current, ok := e.st.Order(orderID)
	if !ok {
		return nil, domain.ErrEntityNotFound
	}

	if e.st.IsTerminal(orderID) || !current.Status.CanTransitionTo(target) {
		metrics.RecordTransition(entityOrder, string(target), metrics.OutcomeRejected)
		return nil, domain.NewInvalidTransitionError(entityOrder, string(current.Status), string(target))
	}

	var updated *domain.Order
	doErr := e.st.DoOrder(orderID, func(tx *store.OrderTxn) error {
		tx.SetStatus(target)

		reqCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()

		resp, remoteErr := e.remote.UpdateOrderStatus(reqCtx, orderID, target)
		if remoteErr != nil {
			return NewRemoteRejectionError(remoteErr)
		}

		tx.Commit(*resp)
		updated = resp
		return nil
	})

	if doErr != nil {
		metrics.RecordRollback(entityOrder)
		metrics.RecordTransition(entityOrder, string(target), metrics.OutcomeFailed)
		e.l.WithError(doErr).WithFields(logrus.Fields{
			"orderID": orderID,
			"from":    current.Status,
			"target":  target,
		}).Error("order transition rolled back")
		return nil, doErr
	}

	// После авторитетного терминального ответа сущность закрывается локально,
	// дальнейшие запросы отклоняются независимо от таблицы.
	if updated.Status.IsTerminal() {
		e.st.MarkTerminal(orderID)
	}

	metrics.RecordTransition(entityOrder, string(target), metrics.OutcomeAccepted)
	e.l.WithFields(logrus.Fields{
		"orderID": orderID,
		"from":    current.Status,
		"target":  updated.Status,
	}).Info("order transition applied")
	return updated, nil
}

// CancelMembership отменяет абонемент. Тот же конвейер что и у заказа:
// guard (единственное легальное ребро active -> cancelled), оптимистичное
// применение, авторитетный вызов, реконсиляция или откат.
func (e *Executor) CancelMembership(ctx context.Context, membershipID string) (*domain.Membership, error) {
	if lockErr := e.locks.lock(ctx, membershipID); lockErr != nil {
		metrics.RecordTransition(entityMembership, string(domain.MembershipStatusCancelled), metrics.OutcomeRejected)
		return nil, lockErr
	}
	defer e.locks.unlock(membershipID)

	current, ok := e.st.Membership(membershipID)
	if !ok {
		return nil, domain.ErrEntityNotFound
	}

	if e.st.IsTerminal(membershipID) || !current.Status.CanTransitionTo(domain.MembershipStatusCancelled) {
		metrics.RecordTransition(entityMembership, string(domain.MembershipStatusCancelled), metrics.OutcomeRejected)
		return nil, domain.NewInvalidTransitionError(
			entityMembership,
			string(current.Status),
			string(domain.MembershipStatusCancelled),
		)
	}

	var updated *domain.Membership
	doErr := e.st.DoMembership(membershipID, func(tx *store.MembershipTxn) error {
		tx.SetStatus(domain.MembershipStatusCancelled)

		reqCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()

		resp, remoteErr := e.remote.CancelMembership(reqCtx, membershipID)
		if remoteErr != nil {
			return NewRemoteRejectionError(remoteErr)
		}

		tx.Commit(*resp)
		updated = resp
		return nil
	})

	if doErr != nil {
		metrics.RecordRollback(entityMembership)
		metrics.RecordTransition(entityMembership, string(domain.MembershipStatusCancelled), metrics.OutcomeFailed)
		e.l.WithError(doErr).WithField("membershipID", membershipID).Error("membership cancellation rolled back")
		return nil, doErr
	}

	e.st.MarkTerminal(membershipID)

	metrics.RecordTransition(entityMembership, string(domain.MembershipStatusCancelled), metrics.OutcomeAccepted)
	e.l.WithField("membershipID", membershipID).Info("membership cancelled")
	return updated, nil
}

// AssignMembership создает абонемент пользователю и кладет созданную
// сущность во все релевантные коллекции store одной атомарной операцией.
// Оптимистичного окна здесь нет: до ответа сервера сущности не существует.
func (e *Executor) AssignMembership(
	ctx context.Context,
	args apiclient.AssignMembershipRequest,
) (*domain.Membership, error) {
	reqCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	created, remoteErr := e.remote.AssignMembership(reqCtx, args)
	if remoteErr != nil {
		metrics.RemoteFailuresTotal.Inc()
		return nil, NewRemoteRejectionError(remoteErr)
	}

	e.st.InsertMembership(*created)

	e.l.WithFields(logrus.Fields{
		"membershipID": created.ID,
		"userID":       args.UserID,
		"planID":       args.PlanID,
	}).Info("membership assigned")
	return created, nil
}
