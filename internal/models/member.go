package models

import (
	"fmt"
	"strings"
	"time"
)

// Member represents a person who plays games in the group
type Member struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	FullName string    `gorm:"not null;check:full_name <> ''" json:"full_name"`
	JoinDate time.Time `gorm:"not null" json:"join_date"`

	// Relationships
	Sessions []Session `gorm:"foreignKey:MemberID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

// Validate checks the required fields before the member is persisted
func (m Member) Validate() error {
	if strings.TrimSpace(m.FullName) == "" {
		return fmt.Errorf("member full name is required")
	}
	if m.JoinDate.IsZero() {
		return fmt.Errorf("member %q: join date is required", m.FullName)
	}
	return nil
}
