package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	handlers "github.com/staylodge/guest-service/internal/adapter/handler/http"
	"github.com/staylodge/guest-service/internal/config"
	"github.com/staylodge/guest-service/internal/domain/provider"
	"github.com/staylodge/guest-service/internal/infrastructure/database"
	"github.com/staylodge/guest-service/internal/middleware/auth"
	"github.com/staylodge/guest-service/internal/usecase"
	"github.com/staylodge/guest-service/pkg/logger"
	"go.uber.org/zap"
)

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	repos    *database.Repositories
	authPrv  provider.AuthProvider
	notifier provider.NotificationDispatcher
	mailer   provider.MailSender
}

func NewServer(
	cfg *config.Config,
	log *zap.Logger,
	repos *database.Repositories,
	authPrv provider.AuthProvider,
	notifier provider.NotificationDispatcher,
	mailer provider.MailSender,
) *Server {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(logger.NewEchoRequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	return &Server{
		config:   cfg,
		logger:   log,
		echo:     e,
		repos:    repos,
		authPrv:  authPrv,
		notifier: notifier,
		mailer:   mailer,
	}
}

func (s *Server) Start() error {
	// Setup routes
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Assemble usecases
	resolver := usecase.NewIdentityResolver(s.logger, s.repos.Profile)
	provisioner := usecase.NewAccountProvisioner(s.logger, resolver, s.repos.Profile, s.authPrv)
	registrar := usecase.NewLeadRegistrar(s.logger, s.repos.Customer)
	binder := usecase.NewConversationBinder(s.logger, s.repos.Conversation)
	claimUsecase := usecase.NewClaimUsecase(
		s.logger,
		s.repos.Promotion,
		s.repos.Property,
		s.repos.Company,
		provisioner,
		registrar,
		binder,
		s.notifier,
		s.authPrv,
		s.mailer,
		s.config.Service.ClientURL,
	)
	aggregator := usecase.NewConversationAggregator(
		s.logger,
		s.repos.Customer,
		s.repos.Profile,
		s.repos.Conversation,
		s.repos.Property,
		s.repos.SupportTicket,
	)

	// Initialize handlers
	claimHandler := handlers.NewClaimHandler(s.logger, claimUsecase)
	customerHandler := handlers.NewCustomerHandler(s.logger, aggregator)

	// JWT middleware configuration
	jwtConfig := auth.JWTConfig{
		Secret: s.config.Service.Supabase.JWTSecret,
		Logger: s.logger,
	}

	// API v1 routes
	v1 := s.echo.Group("/api/v1")

	// Public routes: claimants have no account yet when they hit this
	v1.POST("/promotions/claim", claimHandler.ClaimPromotion)

	// Protected CRM routes (require JWT authentication)
	protected := v1.Group("", auth.JWTMiddleware(jwtConfig))
	protected.GET("/customers/:id/conversations", customerHandler.GetCustomerConversations)
}
