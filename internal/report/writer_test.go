package report

import (
	"bytes"
	"testing"

	"SportsModelGo/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	summary := &model.Summary{
		Field:         "game_date",
		Threshold:     "2025-01-01",
		FilteredCount: 3,
		FilteredRange: &model.DateRange{Min: "2025-04-01", Max: "2025-04-03"},
		Years:         []string{"2024", "2025"},
		YearCounts: []model.YearCount{
			{Year: "2024", Count: 2430},
			{Year: "2025", Count: 3},
		},
		TotalRows: 2433,
	}

	var buf bytes.Buffer
	Render(&buf, summary)

	expected := "2025 Games: 3\n" +
		"2025 Date Range: 2025-04-01 to 2025-04-03\n" +
		"Available years: [2024, 2025]\n" +
		"\nGames by year:\n" +
		"  2024: 2,430 games\n" +
		"  2025: 3 games\n"
	assert.Equal(t, expected, buf.String())
}

func TestRenderNoData(t *testing.T) {
	summary := &model.Summary{
		Field:         "game_date",
		Threshold:     "2026-01-01",
		FilteredCount: 0,
		FilteredRange: nil,
		Years:         []string{"2024"},
		YearCounts:    []model.YearCount{{Year: "2024", Count: 1}},
		TotalRows:     1,
	}

	var buf bytes.Buffer
	Render(&buf, summary)

	assert.Contains(t, buf.String(), "No 2026 data found")
	assert.NotContains(t, buf.String(), "Date Range")
}

func TestRenderEmptyTable(t *testing.T) {
	summary := &model.Summary{
		Field:      "game_date",
		Threshold:  "2025-01-01",
		Years:      []string{},
		YearCounts: []model.YearCount{},
	}

	var buf bytes.Buffer
	Render(&buf, summary)

	assert.Contains(t, buf.String(), "2025 Games: 0\n")
	assert.Contains(t, buf.String(), "Available years: []\n")
}
