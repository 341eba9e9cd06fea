package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-orders/internal/audit"
	"github.com/BruksfildServices01/service-orders/internal/config"
	dbpkg "github.com/BruksfildServices01/service-orders/internal/db"
	"github.com/BruksfildServices01/service-orders/internal/infra/repository"
	"github.com/BruksfildServices01/service-orders/internal/routes"
	ucAuth "github.com/BruksfildServices01/service-orders/internal/usecase/auth"
	"github.com/BruksfildServices01/service-orders/internal/validators"
)

const shutdownTimeout = 10 * time.Second

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := routes.Deps{Config: cfg}
	if cfg.CheckEmailDomain {
		deps.Emails = validators.NewEmailDomainChecker(nil)
	}

	switch cfg.Storage {
	case config.StorageMemory:
		deps.Clients = repository.NewClientMemoryRepository()
		deps.Users = repository.NewUserMemoryRepository()
		deps.Audit = audit.NewDispatcher(audit.LogSink{}, cfg.AuditQueueSize)
		log.Printf("using in-memory storage")
	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		deps.DB = db
		deps.Clients = repository.NewClientGormRepository(db)
		deps.Users = repository.NewUserGormRepository(db)
		deps.Audit = audit.NewDispatcher(audit.New(db), cfg.AuditQueueSize)
	}

	if cfg.OperatorEmail != "" {
		u, created, err := ucAuth.NewEnsureOperator(deps.Users).Execute(
			ctx, cfg.OperatorName, cfg.OperatorEmail, cfg.OperatorPassword,
		)
		if err != nil {
			log.Fatalf("failed to seed operator: %v", err)
		}
		if created {
			log.Printf("operator %s created", u.Email)
		}
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: routes.NewEngine(deps),
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	// in-flight requests are done; flush queued audit events
	deps.Audit.Close()
}
