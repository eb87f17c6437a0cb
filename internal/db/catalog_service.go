package db

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balkashynov/tabletop/internal/models"
)

// InsertGames validates and stores a batch of games in one transaction.
// The returned games carry their generated IDs. Nothing is stored if any game is invalid.
func (s *Store) InsertGames(games []models.Game) ([]models.Game, error) {
	const op = "insert games"
	if len(games) == 0 {
		return nil, nil
	}

	batch := make([]models.Game, len(games))
	for i, g := range games {
		if err := g.Validate(); err != nil {
			return nil, constraintError(op, fmt.Errorf("game #%d: %w", i+1, err))
		}
		g.ID = 0 // the store assigns IDs
		g.Title = strings.TrimSpace(g.Title)
		batch[i] = g
	}

	if err := s.insertBatch(&batch); err != nil {
		return nil, writeError(op, err)
	}

	s.log.WithField("count", len(batch)).Debug("games inserted")
	return batch, nil
}

// InsertMembers validates and stores a batch of members in one transaction
func (s *Store) InsertMembers(members []models.Member) ([]models.Member, error) {
	const op = "insert members"
	if len(members) == 0 {
		return nil, nil
	}

	batch := make([]models.Member, len(members))
	for i, m := range members {
		if err := m.Validate(); err != nil {
			return nil, constraintError(op, fmt.Errorf("member #%d: %w", i+1, err))
		}
		m.ID = 0
		m.FullName = strings.TrimSpace(m.FullName)
		m.JoinDate = models.Day(m.JoinDate)
		batch[i] = m
	}

	if err := s.insertBatch(&batch); err != nil {
		return nil, writeError(op, err)
	}

	s.log.WithField("count", len(batch)).Debug("members inserted")
	return batch, nil
}

// ListGames returns every game ordered by ID
func (s *Store) ListGames() ([]models.Game, error) {
	var games []models.Game
	if err := s.db.Order("id ASC").Find(&games).Error; err != nil {
		return nil, queryError("list games", err)
	}
	return games, nil
}

// ListMembers returns every member ordered by ID
func (s *Store) ListMembers() ([]models.Member, error) {
	var members []models.Member
	if err := s.db.Order("id ASC").Find(&members).Error; err != nil {
		return nil, queryError("list members", err)
	}
	return members, nil
}

// insertBatch creates all rows of a slice inside a single transaction.
// Associations are never upserted alongside the batch.
func (s *Store) insertBatch(batch any) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(batch).Error
	})
}
