package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/talentbase/recruiting-api/internal/api/handler"
	"github.com/talentbase/recruiting-api/internal/core/ports"
	"github.com/talentbase/recruiting-api/internal/core/service"
	"github.com/talentbase/recruiting-api/internal/infrastructure/db/postgres"
	"github.com/talentbase/recruiting-api/internal/infrastructure/document"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// generator may be nil when no AI provider is configured; the AI routes then
// answer with an upstream-unavailable error instead of failing at startup.
func NewRouter(pool *pgxpool.Pool, generator ports.TextGenerator, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("recruiting"))

	// --- Dependencies ---
	adminRepo := postgres.NewAdminRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	applicationRepo := postgres.NewApplicationRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)

	authService := service.NewAuthService(adminRepo)
	userService := service.NewUserService(userRepo)
	jobService := service.NewJobService(jobRepo)
	applicationService := service.NewApplicationService(applicationRepo, log)
	clientService := service.NewClientService(clientRepo)
	assistService := service.NewAssistService(generator, document.NewPDFTextExtractor(), log)
	documentService := service.NewDocumentService(
		userRepo, applicationRepo, jobRepo,
		document.NewProfilePDFRenderer(), document.NewFeedXMLRenderer(), log,
	)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	clientHandler := handler.NewClientHandler(clientService)
	assistHandler := handler.NewAssistHandler(assistService)
	documentHandler := handler.NewDocumentHandler(documentService)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API routes ---
	v1 := e.Group("/api/v1")

	v1.POST("/admin/register", authHandler.Register)
	v1.POST("/admin/login", authHandler.Login)

	v1.POST("/users", userHandler.Signup)
	v1.POST("/users/login", userHandler.Login)
	v1.GET("/users", userHandler.List)
	v1.GET("/users/:id", userHandler.Get)
	v1.DELETE("/users/:id", userHandler.Delete)
	v1.GET("/users/:id/profile/pdf", documentHandler.CandidateProfilePDF)

	v1.POST("/jobs", jobHandler.Create)
	v1.GET("/jobs", jobHandler.List)
	v1.GET("/jobs/:id", jobHandler.Get)
	v1.PUT("/jobs/:id", jobHandler.Update)
	v1.DELETE("/jobs/:id", jobHandler.Delete)
	v1.GET("/jobs/:id/feed/:portal", documentHandler.JobFeedXML)

	v1.POST("/applications", applicationHandler.Create)
	v1.GET("/applications/job/:job_id", applicationHandler.ListByJob)
	v1.GET("/applications/user/:user_id", applicationHandler.ListByUser)

	v1.POST("/clients", clientHandler.Create)
	v1.GET("/clients", clientHandler.List)

	v1.POST("/ai/job-ad", assistHandler.GenerateJobAd)
	v1.POST("/ai/resume", assistHandler.ExtractResume)

	return e
}
