package lifecycle

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/osokin-dev/gymcart/internal/domain"
	"github.com/osokin-dev/gymcart/internal/metrics"
	"github.com/osokin-dev/gymcart/internal/store"
	"github.com/osokin-dev/gymcart/internal/transport/apiclient"
)

const (
	defaultRefreshInterval = time.Minute
	defaultPageLimit       = 100
)

// Refresher периодически перечитывает абонементы текущего пользователя с
// сервера. Истечение абонемента - пассивное, наблюдаемое условие: активный
// абонемент с endDate в прошлом помечается производной меткой expired
// локально, на сервер такой переход никогда не отправляется. Для
// заканчивающихся в ближайшую неделю абонементов пишется предупреждение.
type Refresher struct {
	remote    Remote
	st        *store.Store
	l         *logrus.Entry
	interval  time.Duration
	pageLimit int
}

func NewRefresher(st *store.Store, remote Remote, l *logrus.Logger) *Refresher {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "lifecycle",
		"module":    "refresher",
	})

	return &Refresher{
		remote:    remote,
		st:        st,
		l:         loggerEntry,
		interval:  defaultRefreshInterval,
		pageLimit: defaultPageLimit,
	}
}

// SetInterval устанавливает период между итерациями обновления.
func (r *Refresher) SetInterval(interval time.Duration) *Refresher {
	r.interval = interval
	return r
}

// SetPageLimit устанавливает размер страницы при чтении списков.
func (r *Refresher) SetPageLimit(limit int) *Refresher {
	r.pageLimit = limit
	return r
}

// Run крутит цикл обновления до отмены контекста.
func (r *Refresher) Run(ctx context.Context) {
	r.l.WithFields(logrus.Fields{
		"interval":  r.interval,
		"pageLimit": r.pageLimit,
	}).Info("Starting")

	for {
		if err := r.Refresh(ctx); err != nil {
			metrics.RecordRefresh(metrics.OutcomeFailed)
			r.l.WithError(err).Error("refresh error")
		} else {
			metrics.RecordRefresh(metrics.OutcomeSuccess)
		}

		select {
		case <-ctx.Done():
			r.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(r.interval):
		}
	}
}

// Refresh выполняет одну итерацию: выгребает все страницы, перевешивает
// производные метки и атомарно заменяет коллекцию в store.
func (r *Refresher) Refresh(ctx context.Context) error {
	memberships, err := r.fetchAll(ctx)
	if err != nil {
		return errors.Wrap(err, "refresh memberships")
	}

	now := time.Now()
	for i := range memberships {
		if domain.HasExpired(memberships[i], now) {
			memberships[i].Status = domain.MembershipStatusExpired
			continue
		}
		if domain.IsExpiringSoon(memberships[i], now) {
			r.l.WithFields(logrus.Fields{
				"membershipID": memberships[i].ID,
				"daysLeft":     domain.DaysUntilExpiry(memberships[i], now),
			}).Warn("membership expiring soon")
		}
	}

	r.st.ReplaceMyMemberships(memberships)
	return nil
}

func (r *Refresher) fetchAll(ctx context.Context) ([]domain.Membership, error) {
	var all []domain.Membership

	for page := 1; ; page++ {
		reqCtx, cancel := context.WithTimeout(ctx, defaultRemoteTimeout)
		resp, err := r.remote.ListMyMemberships(reqCtx, apiclient.ListArgs{Page: page, Limit: r.pageLimit})
		cancel()
		if err != nil {
			return nil, errors.Wrapf(err, "list page %d", page)
		}

		all = append(all, resp.Data...)
		if page >= resp.Pagination.Pages || len(resp.Data) == 0 {
			return all, nil
		}
	}
}
