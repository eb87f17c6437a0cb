// Package seed populates an empty store with the starter catalog of games
// and members plus a batch of randomly generated play sessions.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/balkashynov/tabletop/internal/db"
	"github.com/balkashynov/tabletop/internal/models"
)

const (
	// SessionCount is how many sessions a seed run generates
	SessionCount = 20

	minDaysAgo  = 1
	maxDaysAgo  = 99
	minDuration = 30
	maxDuration = 179
)

// Catalog is the fixed starter set of games
var Catalog = []models.Game{
	{Title: "Catan", Genre: "Strategy", MinPlayers: 3, MaxPlayers: 4},
	{Title: "Uno", Genre: "Card", MinPlayers: 2, MaxPlayers: 10},
	{Title: "Carcassonne", Genre: "Tile", MinPlayers: 2, MaxPlayers: 5},
	{Title: "Dixit", Genre: "Creative", MinPlayers: 3, MaxPlayers: 6},
	{Title: "Chess", Genre: "Classic", MinPlayers: 2, MaxPlayers: 2},
}

// Roster is the fixed starter set of members with how long ago each one joined
var Roster = []struct {
	FullName      string
	JoinedDaysAgo int
}{
	{"Alice Smith", 200},
	{"Bob Johnson", 150},
	{"Carol White", 100},
	{"Dave Brown", 50},
	{"Eve Davis", 10},
}

// Store is the part of the database the seeder writes to
type Store interface {
	IsEmpty() (bool, error)
	InsertGames([]models.Game) ([]models.Game, error)
	InsertMembers([]models.Member) ([]models.Member, error)
	InsertSessions([]models.Session) ([]models.Session, error)
}

var _ Store = (*db.Store)(nil)

// Config holds configuration for the seeder.
type Config struct {
	Seed int64            // 0 picks a time-based seed
	Now  func() time.Time // defaults to time.Now
}

// Result lists what a seed run inserted. It is empty when the store already had data.
type Result struct {
	Games    []models.Game
	Members  []models.Member
	Sessions []models.Session
}

// Seeder fills an empty store with starter data
type Seeder struct {
	store Store
	rng   *rand.Rand
	now   func() time.Time
	log   *logrus.Logger
}

// New creates a Seeder writing to store
func New(store Store, cfg Config, log *logrus.Logger) *Seeder {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Seeder{
		store: store,
		rng:   NewSeededRNG(cfg.Seed, log),
		now:   now,
		log:   log,
	}
}

// Seed inserts the catalog, the roster and SessionCount random sessions.
// It does nothing when the store already holds games or members, so it is
// safe to call on every startup.
func (s *Seeder) Seed() (Result, error) {
	empty, err := s.store.IsEmpty()
	if err != nil {
		return Result{}, fmt.Errorf("failed to check store: %w", err)
	}
	if !empty {
		s.log.Info("store already has data, skipping seed")
		return Result{}, nil
	}

	today := models.Day(s.now())

	games, err := s.store.InsertGames(Catalog)
	if err != nil {
		return Result{}, fmt.Errorf("failed to seed games: %w", err)
	}

	members := make([]models.Member, len(Roster))
	for i, r := range Roster {
		members[i] = models.Member{
			FullName: r.FullName,
			JoinDate: models.DaysAgo(today, r.JoinedDaysAgo),
		}
	}
	members, err = s.store.InsertMembers(members)
	if err != nil {
		return Result{}, fmt.Errorf("failed to seed members: %w", err)
	}

	sessions, err := s.store.InsertSessions(s.generateSessions(today, games, members))
	if err != nil {
		return Result{}, fmt.Errorf("failed to seed sessions: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"games":    len(games),
		"members":  len(members),
		"sessions": len(sessions),
	}).Info("store seeded")

	return Result{Games: games, Members: members, Sessions: sessions}, nil
}

// generateSessions picks a game and a member independently for each session,
// with a date in the last 99 days and a duration of 30 to 179 minutes.
func (s *Seeder) generateSessions(today time.Time, games []models.Game, members []models.Member) []models.Session {
	sessions := make([]models.Session, SessionCount)
	for i := range sessions {
		sessions[i] = models.Session{
			GameID:          games[s.rng.Intn(len(games))].ID,
			MemberID:        members[s.rng.Intn(len(members))].ID,
			Date:            models.DaysAgo(today, s.randomRange(minDaysAgo, maxDaysAgo)),
			DurationMinutes: s.randomRange(minDuration, maxDuration),
		}
	}
	return sessions
}

// randomRange returns a random number in [min, max].
func (s *Seeder) randomRange(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}
