package appmode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/UnendingLoop/minigrep/internal/apperr"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/transport"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// RunServer serves until ctx is done. A listen failure cancels ctx via stop and
// is returned as apperr.KindIO, as is a failed shutdown.
func RunServer(ctx context.Context, stop context.CancelFunc, cfg *model.Config, log zerolog.Logger) error {
	// получить экземпляр сервера
	srv := transport.NewServer(cfg.Address, processor.Processor{}, log)
	listenErr := make(chan error, 1)

	// запуск сервера
	go func() {
		log.Info().Str("address", srv.Addr).Msg("server running")
		err := srv.ListenAndServe()
		if err != nil {
			switch {
			case errors.Is(err, http.ErrServerClosed):
				log.Info().Msg("server gracefully stopping...")
			default:
				// ошибку кладем до stop(), чтобы она была видна после ctx.Done()
				listenErr <- err
				stop()
			}
		}
	}()

	<-ctx.Done()

	select {
	case err := <-listenErr:
		return apperr.IO(fmt.Errorf("server on %q stopped: %w", cfg.Address, err))
	default:
	}

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return apperr.IO(fmt.Errorf("failed to shutdown server on %q correctly: %w", cfg.Address, err))
	}
	log.Info().Str("address", cfg.Address).Msg("server is closed")
	return nil
}
