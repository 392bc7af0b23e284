package handler

import (
	"time"

	"github.com/workpulse/workpulse-api/internal/core/stats"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// snapshotRequest is one activity snapshot. It carries no employee identifier
// field: the server binds every record to the verified caller.
type snapshotRequest struct {
	Status      string    `json:"status"      validate:"required,oneof=Active Idle Suspicious"`
	WindowTitle string    `json:"windowTitle"`
	IsPrivate   bool      `json:"isPrivate"`
	Source      string    `json:"source"`
	ReportedAt  time.Time `json:"reportedAt"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// statsResponse bundles every dashboard aggregate in one poll-friendly payload.
type statsResponse struct {
	StatusCounts stats.StatusCounts  `json:"statusCounts"`
	Hourly       [24]int             `json:"hourly"`
	Intensity    [24]float64         `json:"intensity"`
	Series       []stats.MinutePoint `json:"series"`
	Today        stats.DayBreakdown  `json:"today"`
}
