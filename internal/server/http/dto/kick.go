package dto

import "time"

// KickRequest is the body of POST /api/kicks. Both fields are optional.
type KickRequest struct {
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Note      *string    `json:"note,omitempty"`
}

// KickResponse is a single kick as returned to its owner.
type KickResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// DailyTotalResponse is one day of GET /api/kicks/stats.
type DailyTotalResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// SummaryResponse compares one day's count against the daily target.
type SummaryResponse struct {
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Target    int    `json:"target"`
	Remaining int    `json:"remaining"`
	GoalMet   bool   `json:"goalMet"`
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
