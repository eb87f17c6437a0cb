package models

import (
	"fmt"
	"time"
)

// Session represents one member playing one game on a given day
type Session struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	GameID          uint      `gorm:"not null;index" json:"game_id"`
	MemberID        uint      `gorm:"not null;index" json:"member_id"`
	Date            time.Time `gorm:"not null;index" json:"date"`
	DurationMinutes int       `gorm:"not null;check:duration_minutes >= 0" json:"duration_minutes"`

	// Relationships, the foreign keys are declared on Game.Sessions and Member.Sessions
	Game   Game   `json:"-"`
	Member Member `json:"-"`
}

// Validate checks the required fields before the session is persisted.
// Whether GameID and MemberID resolve is left to the store.
func (s Session) Validate() error {
	if s.GameID == 0 {
		return fmt.Errorf("session game is required")
	}
	if s.MemberID == 0 {
		return fmt.Errorf("session member is required")
	}
	if s.Date.IsZero() {
		return fmt.Errorf("session date is required")
	}
	if s.DurationMinutes < 0 {
		return fmt.Errorf("session duration must not be negative, got %d", s.DurationMinutes)
	}
	return nil
}

// Hours converts the session duration to hours
func (s Session) Hours() float64 {
	return float64(s.DurationMinutes) / 60.0
}
