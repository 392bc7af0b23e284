package domain

import (
	"errors"
	"time"
)

// ActivityStatus classifies a single snapshot reported by an agent.
type ActivityStatus string

const (
	StatusActive     ActivityStatus = "Active"
	StatusIdle       ActivityStatus = "Idle"
	StatusSuspicious ActivityStatus = "Suspicious"
)

var ErrInvalidStatus = errors.New("invalid activity status")
var ErrActivityNotFound = errors.New("activity not found")

// Valid reports whether s is one of the known snapshot statuses.
func (s ActivityStatus) Valid() bool {
	switch s {
	case StatusActive, StatusIdle, StatusSuspicious:
		return true
	}
	return false
}

// Activity is a single monitoring snapshot. Records are immutable once
// written; there is no update or delete path.
//
// EmployeeID conceptually references a User but is matched only by string
// equality against the caller's token email or id. Historical records carry
// either form, so visibility checks accept both.
type Activity struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	EmployeeID  string         `json:"employeeId" bson:"employee_id"`
	Status      ActivityStatus `json:"status" bson:"status"`
	WindowTitle string         `json:"windowTitle,omitempty" bson:"window_title,omitempty"`
	IsPrivate   bool           `json:"isPrivate" bson:"is_private"`
	Source      string         `json:"source,omitempty" bson:"source,omitempty"`
	CreatedAt   time.Time      `json:"createdAt" bson:"created_at"`
}
