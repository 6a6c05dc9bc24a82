package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/surveypulse/surveypulse/internal/domain"
	apperrors "github.com/surveypulse/surveypulse/internal/errors"
	"github.com/surveypulse/surveypulse/internal/export"
	"github.com/surveypulse/surveypulse/internal/report"
)

func (s *Server) handleSubmitResponse(c echo.Context) error {
	var r domain.Response
	if err := c.Bind(&r); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	r.ID = 0

	if err := s.app.SubmitResponse(c.Request().Context(), &r); err != nil {
		if errors.Is(err, domain.ErrInvalidSubmission) {
			return apperrors.ValidationError(err.Error())
		}
		return apperrors.InternalError("failed to save response", err)
	}

	if err := c.JSON(http.StatusOK, map[string]any{"success": true, "id": r.ID}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleResults(c echo.Context) error {
	f := filterFromQuery(c)
	results := s.app.Results(c.Request().Context(), f)

	if err := c.JSON(http.StatusOK, results); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleExport(c echo.Context) error {
	f := filterFromQuery(c)
	responses := s.app.ExportRows(c.Request().Context(), f)

	filename := fmt.Sprintf("survey_results_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	if err := export.Write(c.Response(), responses); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

func filterFromQuery(c echo.Context) report.Filter {
	f := report.Filter{
		Department: c.QueryParam("department"),
		Rank:       c.QueryParam("rank"),
	}
	if f.Department == "" {
		f.Department = report.FilterAll
	}
	if f.Rank == "" {
		f.Rank = report.FilterAll
	}
	return f
}
