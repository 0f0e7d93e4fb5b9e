package app

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/osokin-dev/gymcart/internal/config"
	"github.com/osokin-dev/gymcart/internal/lifecycle"
	"github.com/osokin-dev/gymcart/internal/store"
	"github.com/osokin-dev/gymcart/internal/transport/apiclient"
)

const metricsReadHeaderTimeout = 5 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Run поднимает фоновый цикл обновления абонементов и эндпоинт метрик,
// работает до сигнала остановки.
func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)

	client := apiclient.New(a.Config.APIBaseURL, a.Config.APIToken)

	st := store.New()
	st.SetCurrentUser(a.Config.CurrentUserID)

	refresher := lifecycle.NewRefresher(st, client, a.Logger).
		SetInterval(a.Config.RefreshInterval).
		SetPageLimit(a.Config.PageLimit)

	go refresher.Run(notifyCtx)

	errChan := make(chan error, 1)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:              a.Config.MetricsAddress,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}

	go func() {
		if serveErr := metricsServer.ListenAndServe(); serveErr != nil {
			errChan <- serveErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}
