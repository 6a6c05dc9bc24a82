package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/surveypulse/surveypulse/internal/domain"
	apperrors "github.com/surveypulse/surveypulse/internal/errors"
)

func (s *Server) handleSubmitLeaderResponse(c echo.Context) error {
	var lr domain.LeaderResponse
	if err := c.Bind(&lr); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	lr.ID = 0

	if err := s.app.SubmitLeaderResponse(c.Request().Context(), &lr); err != nil {
		if errors.Is(err, domain.ErrInvalidSubmission) {
			return apperrors.ValidationError(err.Error())
		}
		return apperrors.InternalError("failed to save leader response", err)
	}

	if err := c.JSON(http.StatusOK, map[string]any{"success": true, "id": lr.ID}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleLeaderResults(c echo.Context) error {
	results := s.app.LeaderResults(c.Request().Context())

	if err := c.JSON(http.StatusOK, results); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
