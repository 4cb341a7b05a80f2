package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/handler"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/repositories"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/router"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/seed"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/service"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/database"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/envconfig"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/flags"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/shutdownsetup"
)

const portRetryLimit = 10

// alwaysHealthy satisfies the router's health check when running without
// a database.
type alwaysHealthy struct{}

func (alwaysHealthy) HealthCheck() error { return nil }

func main() {
	config := flags.Parse()

	if err := envconfig.LoadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:        envconfig.GetLogLevel(),
		Format:       envconfig.GetEnv("LOG_FORMAT", "json"),
		Output:       envconfig.GetEnv("LOG_OUTPUT", "stdout"),
		EnableCaller: true,
		Component:    "canteen-server",
		Environment:  envconfig.GetEnv("APP_ENV", "development"),
	})
	defer log.Close()

	var (
		catalogRepo repositories.CatalogRepositoryInterface
		userRepo    repositories.UserRepositoryInterface
		orderRepo   repositories.OrderRepositoryInterface
		health      router.HealthChecker
		cleanup     []func() error
	)

	if config.Memory {
		log.Info("Using in-memory storage")
		memCatalog := repositories.NewMemoryCatalogRepository()
		memUsers := repositories.NewMemoryUserRepository()
		catalogRepo = memCatalog
		userRepo = memUsers
		orderRepo = repositories.NewMemoryOrderRepository()
		health = alwaysHealthy{}

		if err := seed.Catalog(memCatalog, log); err != nil {
			log.Fatal("Failed to seed catalog", "error", err)
		}
		if err := seed.Users(memUsers, log); err != nil {
			log.Fatal("Failed to seed users", "error", err)
		}
	} else {
		db, err := database.NewConnection(envconfig.LoadDatabaseConfig(), log.WithComponent("database"))
		if err != nil {
			log.Fatal("Failed to connect to database", "error", err)
		}
		cleanup = append(cleanup, db.Close)

		if err := db.EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure database schema", "error", err)
		}

		pgCatalog := repositories.NewCatalogRepository(log.WithComponent("catalog-repository"), db)
		pgUsers := repositories.NewUserRepository(log.WithComponent("user-repository"), db)
		catalogRepo = pgCatalog
		userRepo = pgUsers
		orderRepo = repositories.NewOrderRepository(log.WithComponent("order-repository"), db)
		health = db

		seeded, err := db.IsSeeded()
		if err != nil {
			log.Fatal("Failed to inspect database state", "error", err)
		}
		if !seeded {
			if err := seed.Catalog(pgCatalog, log); err != nil {
				log.Fatal("Failed to seed catalog", "error", err)
			}
			if err := seed.Users(pgUsers, log); err != nil {
				log.Fatal("Failed to seed users", "error", err)
			}
		}
	}

	catalogService := service.NewCatalogService(catalogRepo, log.WithComponent("catalog-service"))
	authService := service.NewAuthService(userRepo, log.WithComponent("auth-service"))
	orderService := service.NewOrderService(orderRepo, catalogRepo, log.WithComponent("order-service"))

	menuHandler := handler.NewMenuHandler(catalogService, log.WithComponent("menu-handler"))
	authHandler := handler.NewAuthHandler(authService, log.WithComponent("auth-handler"))
	orderHandler := handler.NewOrderHandler(orderService, log.WithComponent("order-handler"))

	mux := router.NewRouter(menuHandler, authHandler, orderHandler, health)

	port, err := strconv.Atoi(config.Port)
	if err != nil {
		log.Fatal("Invalid port", "port", config.Port)
	}

	for attempt := 0; attempt < portRetryLimit; attempt++ {
		addr := ":" + strconv.Itoa(port+attempt)
		server := &http.Server{
			Addr:         addr,
			Handler:      log.HTTPMiddleware(mux),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()

		// Give the listener a moment to fail on a busy port before
		// committing to this server instance.
		select {
		case err := <-errCh:
			if isAddrInUse(err) {
				log.Warn("Port busy, trying next", "addr", addr)
				continue
			}
			log.Fatal("Server failed to start", "addr", addr, "error", err)
		case <-time.After(200 * time.Millisecond):
		}

		log.Info("Server listening", "addr", addr)
		shutdownsetup.Wait(server, log, cleanup...)
		return
	}

	log.Fatal("No free port found", "base_port", port, "attempts", portRetryLimit)
}

func isAddrInUse(err error) bool {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return false
	}
	return strings.Contains(err.Error(), "address already in use")
}
