package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTitleLength is the longest game title the store accepts
const MaxTitleLength = 100

// Game represents a board game in the catalog
type Game struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Title      string `gorm:"size:100;not null;check:title <> ''" json:"title"`
	Genre      string `json:"genre"`
	MinPlayers int    `gorm:"not null;check:min_players > 0" json:"min_players"`
	MaxPlayers int    `gorm:"not null;check:max_players >= min_players" json:"max_players"`

	// Relationships
	Sessions []Session `gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

// Validate checks the required fields before the game is persisted
func (g Game) Validate() error {
	title := strings.TrimSpace(g.Title)
	if title == "" {
		return fmt.Errorf("game title is required")
	}
	if utf8.RuneCountInString(g.Title) > MaxTitleLength {
		return fmt.Errorf("game title %q is longer than %d characters", g.Title, MaxTitleLength)
	}
	if g.MinPlayers < 1 {
		return fmt.Errorf("game %q: min players must be positive, got %d", title, g.MinPlayers)
	}
	if g.MaxPlayers < g.MinPlayers {
		return fmt.Errorf("game %q: max players (%d) is below min players (%d)", title, g.MaxPlayers, g.MinPlayers)
	}
	return nil
}
