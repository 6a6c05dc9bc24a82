package server

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/surveypulse/surveypulse/internal/config"
	"github.com/surveypulse/surveypulse/internal/domain"
	apperrors "github.com/surveypulse/surveypulse/internal/errors"
	"github.com/surveypulse/surveypulse/internal/report"
)

// surveyService is the application layer contract the handlers depend on.
// Kept on the consumer side to avoid import cycles.
type surveyService interface {
	SubmitResponse(ctx context.Context, r *domain.Response) error
	SubmitLeaderResponse(ctx context.Context, lr *domain.LeaderResponse) error
	Results(ctx context.Context, f report.Filter) report.Results
	ExportRows(ctx context.Context, f report.Filter) []domain.Response
	LeaderResults(ctx context.Context) report.LeaderResults
}

// dbHealthChecker is a minimal interface for database health checks.
type dbHealthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	app       surveyService
	db        dbHealthChecker
	startTime time.Time
}

func NewServer(cfg *config.Config, app surveyService, db dbHealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(correlationMiddleware())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		app:       app,
		db:        db,
		startTime: time.Now(),
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
