package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"smarta/internal/domain"
)

// Version is reported by /api/health.
const Version = "1.0.0"

// Coach is the chat surface the API needs.
type Coach interface {
	domain.CoachService
	Suggestions() []string
}

// Server holds the services behind the API.
type Server struct {
	sessions domain.SessionService
	banking  domain.BankingService
	coach    Coach
	log      zerolog.Logger
}

// New returns a Server over the given services.
func New(sessions domain.SessionService, banking domain.BankingService, coach Coach, log zerolog.Logger) *Server {
	return &Server{sessions: sessions, banking: banking, coach: coach, log: log}
}

// App builds the fiber application with middleware and routes.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "smarta",
		ErrorHandler:          s.handleError,
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(s.accessLog)
	s.RegisterRoutes(app)
	return app
}

// RegisterRoutes mounts the API under /api.
func (s *Server) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/health", s.handleHealth)

	api.Get("/session", s.handleSession)
	api.Post("/session/actions", s.handleAction)
	api.Post("/session/navigate", s.handleNavigate)
	api.Post("/login", s.handleLogin)
	api.Post("/logout", s.handleLogout)
	api.Post("/pin/setup", s.handlePinSetup)
	api.Post("/pin/skip", s.handlePinSkip)
	api.Post("/pin/verify", s.handlePinVerify)
	api.Post("/pin/change", s.handlePinChange)
	api.Get("/security", s.handleGetSecurity)
	api.Put("/security", s.handlePutSecurity)

	api.Get("/transactions", s.handleTransactions)
	api.Get("/insight", s.handleInsight)
	api.Get("/goals", s.handleGoals)
	api.Get("/notifications", s.handleNotifications)
	api.Get("/dashboard", s.handleDashboard)

	api.Get("/accounts", s.handleAccounts)
	api.Post("/accounts", s.handleLink)
	api.Get("/accounts/providers", s.handleProviders)
	api.Post("/accounts/:id/connect", s.handleConnect)
	api.Post("/accounts/:id/disconnect", s.handleDisconnect)

	api.Get("/coach/messages", s.handleCoachHistory)
	api.Post("/coach/messages", s.handleCoachAsk)
	api.Get("/coach/suggestions", s.handleCoachSuggestions)
}

// accessLog logs one line per request.
func (s *Server) accessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	status := c.Response().StatusCode()
	if err != nil {
		status = StatusOf(err)
	}
	s.log.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", status).
		Int("bytes", len(c.Response().Body())).
		Dur("duration", time.Since(start)).
		Msg("request")
	return err
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": Version})
}
