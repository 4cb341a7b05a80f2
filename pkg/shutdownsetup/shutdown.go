// Package shutdownsetup wires OS signal handling to graceful HTTP
// server shutdown.
package shutdownsetup

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

const defaultTimeout = 10 * time.Second

// Wait blocks until SIGINT or SIGTERM arrives, then drains the server.
// Cleanup functions run after the server has stopped accepting requests.
func Wait(server *http.Server, log *logger.Logger, cleanup ...func() error) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	sig := <-stop
	log.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
	} else {
		log.Info("HTTP server stopped")
	}

	for _, fn := range cleanup {
		if err := fn(); err != nil {
			log.Error("Cleanup failed", "error", err)
		}
	}
}
