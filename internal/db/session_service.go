package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/balkashynov/tabletop/internal/models"
)

// InsertSessions validates and stores a batch of sessions in one transaction.
// Unknown game or member IDs are rejected by the foreign keys and roll back the whole batch.
func (s *Store) InsertSessions(sessions []models.Session) ([]models.Session, error) {
	const op = "insert sessions"
	if len(sessions) == 0 {
		return nil, nil
	}

	batch := make([]models.Session, len(sessions))
	for i, sess := range sessions {
		if err := sess.Validate(); err != nil {
			return nil, constraintError(op, fmt.Errorf("session #%d: %w", i+1, err))
		}
		sess.ID = 0
		sess.Date = models.Day(sess.Date)
		batch[i] = sess
	}

	if err := s.insertBatch(&batch); err != nil {
		return nil, writeError(op, err)
	}

	s.log.WithField("count", len(batch)).Debug("sessions inserted")
	return batch, nil
}

// RecordSession stores a single play session
func (s *Store) RecordSession(gameID, memberID uint, date time.Time, minutes int) (*models.Session, error) {
	created, err := s.InsertSessions([]models.Session{{
		GameID:          gameID,
		MemberID:        memberID,
		Date:            date,
		DurationMinutes: minutes,
	}})
	if err != nil {
		return nil, err
	}

	session := created[0]
	// Load the relationships for display
	if err := s.db.Preload("Game").Preload("Member").First(&session, session.ID).Error; err != nil {
		return nil, queryError("load session", err)
	}

	s.log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"game_id":    gameID,
		"member_id":  memberID,
	}).Info("session recorded")

	return &session, nil
}
