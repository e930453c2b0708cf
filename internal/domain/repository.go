package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a log does not exist or belongs to another user
var ErrNotFound = errors.New("health log not found")

// Pagination describes a page of logs
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// LogPage is one page of a user's logs, newest first
type LogPage struct {
	Logs       []VitalSample `json:"logs"`
	Pagination Pagination    `json:"pagination"`
}

// DashboardData aggregates the per-user overview
type DashboardData struct {
	CurrentVitals CurrentVitals           `json:"currentVitals"`
	Risk          AggregateRiskAssessment `json:"risk"`
	LatestLog     *VitalSample            `json:"latestLog,omitempty"`
	Timestamp     time.Time               `json:"timestamp"`
}

// HealthLogRepository defines the interface for health log persistence.
// All reads are scoped to the owning user.
type HealthLogRepository interface {
	// CreateLog persists a new log and returns it with its id assigned
	CreateLog(ctx context.Context, log VitalSample) (VitalSample, error)

	// GetLog retrieves one log
	GetLog(ctx context.Context, userID, id string) (VitalSample, error)

	// UpdateLog replaces the stored content of an existing log
	UpdateLog(ctx context.Context, log VitalSample) (VitalSample, error)

	// DeleteLog removes a log
	DeleteLog(ctx context.Context, userID, id string) error

	// ListLogs returns a page of logs sorted by date descending, plus the total count
	ListLogs(ctx context.Context, userID string, limit, offset int) ([]VitalSample, int64, error)

	// RecentLogs returns the most recent logs, newest first
	RecentLogs(ctx context.Context, userID string, limit int) ([]VitalSample, error)

	// LogsSince returns logs dated at or after from, oldest first
	LogsSince(ctx context.Context, userID string, from time.Time) ([]VitalSample, error)

	// Health checks database connectivity
	Health(ctx context.Context) error
}
