package db

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/balkashynov/tabletop/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "boardgames.db"), testLogger())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	if err := store.Initialize(false); err != nil {
		t.Fatalf("initialize store: %v", err)
	}
	return store
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func seedGames(t *testing.T, store *Store, titles ...string) []models.Game {
	t.Helper()
	games := make([]models.Game, len(titles))
	for i, title := range titles {
		games[i] = models.Game{Title: title, Genre: "Test", MinPlayers: 2, MaxPlayers: 4}
	}
	created, err := store.InsertGames(games)
	if err != nil {
		t.Fatalf("insert games: %v", err)
	}
	return created
}

func seedMembers(t *testing.T, store *Store, names ...string) []models.Member {
	t.Helper()
	members := make([]models.Member, len(names))
	for i, name := range names {
		members[i] = models.Member{FullName: name, JoinDate: day(2026, 1, 1)}
	}
	created, err := store.InsertMembers(members)
	if err != nil {
		t.Fatalf("insert members: %v", err)
	}
	return created
}

func seedSession(t *testing.T, store *Store, game models.Game, member models.Member, date time.Time, minutes int) models.Session {
	t.Helper()
	created, err := store.InsertSessions([]models.Session{{
		GameID:          game.ID,
		MemberID:        member.ID,
		Date:            date,
		DurationMinutes: minutes,
	}})
	if err != nil {
		t.Fatalf("insert session: %v", err)
	}
	return created[0]
}
