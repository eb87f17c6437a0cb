package models

import (
	"strings"
	"testing"
	"time"
)

func TestGameValidate(t *testing.T) {
	tests := []struct {
		name    string
		game    Game
		wantErr bool
	}{
		{"valid", Game{Title: "Catan", Genre: "Strategy", MinPlayers: 3, MaxPlayers: 4}, false},
		{"solo game", Game{Title: "Onirim", MinPlayers: 1, MaxPlayers: 1}, false},
		{"empty title", Game{Title: "", MinPlayers: 2, MaxPlayers: 4}, true},
		{"blank title", Game{Title: "   ", MinPlayers: 2, MaxPlayers: 4}, true},
		{"title at limit", Game{Title: strings.Repeat("a", MaxTitleLength), MinPlayers: 2, MaxPlayers: 4}, false},
		{"title too long", Game{Title: strings.Repeat("a", MaxTitleLength+1), MinPlayers: 2, MaxPlayers: 4}, true},
		{"zero min players", Game{Title: "Uno", MinPlayers: 0, MaxPlayers: 10}, true},
		{"max below min", Game{Title: "Uno", MinPlayers: 4, MaxPlayers: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.game.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMemberValidate(t *testing.T) {
	joined := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	if err := (Member{FullName: "Alice Smith", JoinDate: joined}).Validate(); err != nil {
		t.Fatalf("expected valid member, got %v", err)
	}
	if err := (Member{FullName: " ", JoinDate: joined}).Validate(); err == nil {
		t.Fatal("expected error for blank full name")
	}
	if err := (Member{FullName: "Bob Johnson"}).Validate(); err == nil {
		t.Fatal("expected error for missing join date")
	}
}

func TestSessionValidate(t *testing.T) {
	day := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		session Session
		wantErr bool
	}{
		{"valid", Session{GameID: 1, MemberID: 1, Date: day, DurationMinutes: 90}, false},
		{"zero duration", Session{GameID: 1, MemberID: 1, Date: day}, false},
		{"missing game", Session{MemberID: 1, Date: day, DurationMinutes: 30}, true},
		{"missing member", Session{GameID: 1, Date: day, DurationMinutes: 30}, true},
		{"missing date", Session{GameID: 1, MemberID: 1, DurationMinutes: 30}, true},
		{"negative duration", Session{GameID: 1, MemberID: 1, Date: day, DurationMinutes: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.session.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSessionHours(t *testing.T) {
	if got := (Session{DurationMinutes: 90}).Hours(); got != 1.5 {
		t.Fatalf("expected 1.5 hours, got %v", got)
	}
}

func TestDayAndDaysAgo(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2026, 10, 17, 1, 30, 0, 0, loc)

	day := Day(now)
	want := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Fatalf("Day() = %v, want %v", day, want)
	}

	ago := DaysAgo(now, 10)
	if !ago.Equal(time.Date(2026, 10, 7, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("DaysAgo() = %v", ago)
	}
}
