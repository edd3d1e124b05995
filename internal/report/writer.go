package report

import (
	"fmt"
	"io"
	"strings"

	"SportsModelGo/internal/model"

	"github.com/dustin/go-humanize"
)

// Render prints a summary in the diagnostic text format. Lines are
// labelled with the threshold's year, which is what the report is
// usually about ("2025 Games: 314").
func Render(w io.Writer, s *model.Summary) {
	label := yearLabel(s.Threshold)

	fmt.Fprintf(w, "%s Games: %d\n", label, s.FilteredCount)
	if s.FilteredRange != nil {
		fmt.Fprintf(w, "%s Date Range: %s to %s\n", label, s.FilteredRange.Min, s.FilteredRange.Max)
	} else {
		fmt.Fprintf(w, "No %s data found\n", label)
	}

	fmt.Fprintf(w, "Available years: [%s]\n", strings.Join(s.Years, ", "))

	fmt.Fprintf(w, "\nGames by year:\n")
	for _, yc := range s.YearCounts {
		fmt.Fprintf(w, "  %s: %s games\n", yc.Year, humanize.Comma(yc.Count))
	}
}

func yearLabel(threshold string) string {
	if len(threshold) < 4 {
		return threshold
	}
	return threshold[:4]
}
