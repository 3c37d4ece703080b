package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/neuralshield/neuralshield/internal/adapters/httpapi"
	"github.com/neuralshield/neuralshield/internal/core"
	"github.com/neuralshield/neuralshield/internal/di"
	"github.com/neuralshield/neuralshield/internal/session"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	server *httpapi.Server,
	sessions *session.Store,
	limiter *session.Cooldown,
	verdictCache core.VerdictCache,
) error {
	defer logger.Sync()

	// Start the API
	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start HTTP API", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	if err := server.Stop(); err != nil {
		logger.Error("Failed to stop HTTP API", zap.Error(err))
	}

	sessions.Stop()
	limiter.Stop()

	// Stop the verdict cache if needed
	if stopper, ok := verdictCache.(interface{ Stop() }); ok {
		stopper.Stop()
	}

	logger.Info("Shutdown complete")
	return nil
}
