package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"roulette_patterns/internal/config"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		// .env необязателен, переменные могут прийти из окружения
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()

	logger := s.ServiceProvider.Logger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go s.sweepSessions(ctx)

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("address", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// sweepSessions Периодически удаляет простаивающие сессии вместе с их журналами
func (s *App) sweepSessions(ctx context.Context) {
	repo := s.ServiceProvider.SessionRepository()
	logger := s.ServiceProvider.Logger()

	ticker := time.NewTicker(s.ServiceProvider.SessionCfg().SweepInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := repo.Sweep(now); removed > 0 {
				logger.Info("expired sessions removed", zap.Int("count", removed), zap.Int("alive", repo.Len()))
			}
		}
	}
}
