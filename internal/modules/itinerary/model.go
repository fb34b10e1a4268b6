// README: Task and session models for errand itineraries.
package itinerary

import (
	"time"

	"urnav/internal/types"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Task is one planned errand with its resolved place. The store owns status
// transitions; a task is immutable once completed.
type Task struct {
	Description string     `json:"task"`
	Place       string     `json:"place,omitempty"`
	Lat         *float64   `json:"lat,omitempty"`
	Lng         *float64   `json:"lng,omitempty"`
	Category    string     `json:"category,omitempty"`
	DistanceM   *float64   `json:"distance,omitempty"`
	Rating      *float64   `json:"rating,omitempty"`
	ExternalID  string     `json:"fsq_id,omitempty"`
	Status      Status     `json:"status"`
	AddedAt     time.Time  `json:"added_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// HasCoordinates reports whether the task can serve as a route stop.
func (t Task) HasCoordinates() bool {
	return t.Lat != nil && t.Lng != nil
}

// Session is the itinerary state for one (user, rounded-origin) pair.
// Task descriptions are unique within a session.
type Session struct {
	UserID      types.ID    `json:"user_id"`
	Origin      types.Point `json:"origin"`
	Tasks       []Task      `json:"tasks"`
	CreatedAt   time.Time   `json:"created_at"`
	LastUpdated time.Time   `json:"last_updated"`
}

// Summary aggregates completion state for one session.
type Summary struct {
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	PendingTasks   int     `json:"pending_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}
