package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-orders/internal/audit"
	"github.com/BruksfildServices01/service-orders/internal/config"
	domain "github.com/BruksfildServices01/service-orders/internal/domain/client"
	domainUser "github.com/BruksfildServices01/service-orders/internal/domain/user"
	"github.com/BruksfildServices01/service-orders/internal/handlers"
	"github.com/BruksfildServices01/service-orders/internal/middleware"
	ucAuth "github.com/BruksfildServices01/service-orders/internal/usecase/auth"
	ucClient "github.com/BruksfildServices01/service-orders/internal/usecase/client"
)

// Deps are the singletons shared by all routes. DB may be nil when the
// service runs on in-memory storage; the audit log listing is then disabled.
type Deps struct {
	Config  *config.Config
	DB      *gorm.DB
	Clients domain.Repository
	Users   domainUser.Repository
	Audit   *audit.Dispatcher

	// Emails, when set, rejects addresses whose domain does not resolve.
	Emails ucClient.EmailDomainChecker
}

func NewEngine(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware(d.Config.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// USE CASES — CLIENTS
	// ======================================================
	clientHandler := handlers.NewClientHandler(
		ucClient.NewCreateClient(d.Clients, d.Audit).WithEmailDomainChecker(d.Emails),
		ucClient.NewGetClient(d.Clients),
		ucClient.NewListClients(d.Clients),
		ucClient.NewUpdateClient(d.Clients, d.Audit).WithEmailDomainChecker(d.Emails),
		ucClient.NewDeleteClient(d.Clients, d.Audit),
	)

	authHandler := handlers.NewAuthHandler(
		ucAuth.NewLogin(d.Users, d.Config.JWTSecret, d.Config.JWTTTL),
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.POST("/clients", clientHandler.Create)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			if d.DB != nil {
				auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)
				secured.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
