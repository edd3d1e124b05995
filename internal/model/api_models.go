package model

// SummaryRequest asks for a report over one date column.
type SummaryRequest struct {
	Field     string `json:"field"`     // date column, e.g. "game_date"
	Threshold string `json:"threshold"` // inclusive lower bound, "YYYY-MM-DD"
}

// SummaryResponse wraps a Summary in the service envelope.
type SummaryResponse struct {
	StatusCode int      `json:"status_code"` // 0=success
	StatusMsg  string   `json:"status_msg"`
	Data       *Summary `json:"data"`
}

// OverviewResponse wraps the schema inspector output.
type OverviewResponse struct {
	StatusCode int              `json:"status_code"`
	StatusMsg  string           `json:"status_msg"`
	Data       []*TableOverview `json:"data"`
}
