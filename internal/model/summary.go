package model

// DateRange is the inclusive (min, max) span of a date column.
type DateRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// YearCount is one entry of the per-year breakdown.
type YearCount struct {
	Year  string `json:"year"`
	Count int64  `json:"count"`
}

// Summary is the computed result of one reporting run. It is built once
// and never mutated afterwards.
type Summary struct {
	Field         string      `json:"field"`          // date column the report ran over
	Threshold     string      `json:"threshold"`      // inclusive lower bound, YYYY-MM-DD
	FilteredCount int64       `json:"filtered_count"` // rows with field >= threshold
	FilteredRange *DateRange  `json:"filtered_range"` // nil iff FilteredCount == 0
	Years         []string    `json:"years"`          // distinct year keys, ascending
	YearCounts    []YearCount `json:"year_counts"`    // ascending by year, sums to TotalRows
	TotalRows     int64       `json:"total_rows"`
}

// TableColumn describes one column of an inspected table.
type TableColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TableOverview is the schema inspector's result for one table.
type TableOverview struct {
	Name      string        `json:"name"`
	Columns   []TableColumn `json:"columns"`
	TotalRows int64         `json:"total_rows"`
}
