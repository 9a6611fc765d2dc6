package model

// ErrorResponse is the standard envelope for error responses.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the structured error information returned by the API.
type ErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is the envelope for simple acknowledgment responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// DashboardStats aggregates platform counters for the console dashboard.
type DashboardStats struct {
	TotalUsers    int64   `json:"total_users"`
	UpgradedUsers int64   `json:"upgraded_users"`
	StandardUsers int64   `json:"standard_users"`
	TotalGames    int64   `json:"total_games"`
	TotalRevenue  float64 `json:"total_revenue"`
}
