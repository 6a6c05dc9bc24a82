// Package export projects filtered survey responses into the fixed tabular
// layout the spreadsheet download uses.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/surveypulse/surveypulse/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Survey Results"

// placeholder renders a missing value in the export.
const placeholder = "-"

// Headers is the fixed export column order.
var Headers = []string{
	"소속", "직급", "면담여부",
	"Q2시간", "Q3방식", "Q4안내", "Q6만족도",
	"Q7-1", "Q7-2", "Q7-3", "Q7-4", "Q7-5",
	"Q8건의", "Q5미실시사유", "Q3미실시건의",
}

// Rows projects responses into export rows, one per record, in the Headers
// column order. Missing values render as "-"; the no-interview reasons are
// joined by "|".
func Rows(responses []domain.Response) [][]string {
	rows := make([][]string, 0, len(responses))
	for _, r := range responses {
		rows = append(rows, row(&r))
	}
	return rows
}

func row(r *domain.Response) []string {
	status := "미실시"
	if r.HasInterview {
		status = "실시"
	}

	cols := []string{r.Department, r.Rank, status}

	if r.HasInterview && r.Interview != nil {
		iv := r.Interview
		cols = append(cols,
			orPlaceholder(iv.Time),
			orPlaceholder(iv.MethodLabel()),
			orPlaceholder(iv.Guidance),
			orPlaceholder(iv.Satisfaction),
		)
		for i := 0; i < domain.ScoreCount; i++ {
			if i < len(iv.Scores) {
				cols = append(cols, strconv.Itoa(iv.Scores[i]))
			} else {
				cols = append(cols, placeholder)
			}
		}
		cols = append(cols, iv.Suggestion, placeholder, "")
		return cols
	}

	cols = append(cols, placeholder, placeholder, placeholder, placeholder)
	for i := 0; i < domain.ScoreCount; i++ {
		cols = append(cols, placeholder)
	}

	reasons := ""
	suggestion := ""
	if r.NoInterview != nil {
		reasons = joinPipe(r.NoInterview.Reasons)
		suggestion = r.NoInterview.Suggestion
	}
	cols = append(cols, "", reasons, suggestion)
	return cols
}

func orPlaceholder(v string) string {
	if v == "" {
		return placeholder
	}
	return v
}

func joinPipe(values []string) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += "|"
		}
		out += v
	}
	return out
}

// Write renders responses as an xlsx workbook with a single sheet.
func Write(w io.Writer, responses []domain.Response) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := setRow(f, 1, Headers); err != nil {
		return err
	}
	for i, r := range Rows(responses) {
		if err := setRow(f, i+2, r); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to build cell name: %w", err)
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
		return fmt.Errorf("failed to set row %d: %w", rowNum, err)
	}
	return nil
}
