package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	submitLimit := newRateLimiter(s.config.SubmitRatePerSecond, s.config.SubmitBurst)

	// Team-member survey
	s.echo.POST("/api/responses", s.handleSubmitResponse, submitLimit)
	s.echo.GET("/api/results", s.handleResults)
	s.echo.GET("/api/export/xlsx", s.handleExport)

	// Leader feedback
	s.echo.POST("/api/leader/responses", s.handleSubmitLeaderResponse, submitLimit)
	s.echo.GET("/api/leader/results", s.handleLeaderResults)
}
