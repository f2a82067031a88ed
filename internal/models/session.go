// internal/models/session.go
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// AttendanceStatus is a member's declared presence for one session.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceMaybe   AttendanceStatus = "maybe"
)

// ValidAttendanceStatus reports whether s is a known status.
func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceMaybe:
		return true
	}
	return false
}

// Session is one scheduled club gathering. GeneratedTeams holds the
// persisted match-set blob in whichever encoding it was saved with; it is
// normalized on read, never rewritten in place just for shape.
type Session struct {
	ID             string          `json:"id"`
	ClubID         string          `json:"clubId"`
	Name           string          `json:"name"`
	Date           time.Time       `json:"date"`
	Location       string          `json:"location,omitempty"`
	GeneratedTeams json.RawMessage `json:"generatedTeams,omitempty"`
}

// Validate checks invariants before a session row is written.
func (s Session) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("session name is required")
	}
	if s.ClubID == "" {
		return fmt.Errorf("club id is required")
	}
	if s.Date.IsZero() {
		return fmt.Errorf("session date is required")
	}
	return nil
}
