package db

import (
	"time"

	"github.com/balkashynov/tabletop/internal/models"
)

// TopGamesLimit is how many games the "top games" report shows
const TopGamesLimit = 3

// SessionRow is one line of the session listing
type SessionRow struct {
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
	GameTitle       string    `json:"game"`
	MemberName      string    `json:"member"`
}

// GameHours is the total play time of one game
type GameHours struct {
	Title        string  `json:"title"`
	TotalMinutes int64   `json:"total_minutes"`
	Hours        float64 `json:"hours" gorm:"-"`
}

// MemberHours is the total play time of one member
type MemberHours struct {
	FullName     string  `json:"full_name"`
	TotalMinutes int64   `json:"total_minutes"`
	Hours        float64 `json:"hours" gorm:"-"`
}

// DateRange bounds a statistics query. A nil bound leaves that side open.
// Both bounds are inclusive calendar days.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Stats is the number of sessions in a date range and their total duration
type Stats struct {
	Count        int64 `json:"count"`
	TotalMinutes int64 `json:"total_minutes"`
}

// Hours converts the total duration to hours
func (s Stats) Hours() float64 {
	return minutesToHours(s.TotalMinutes)
}

func minutesToHours(minutes int64) float64 {
	return float64(minutes) / 60.0
}

// ListSessions returns every session with its game title and member name,
// newest first. Sessions on the same day keep insertion order.
func (s *Store) ListSessions() ([]SessionRow, error) {
	var rows []SessionRow

	err := s.db.Model(&models.Session{}).
		Select("sessions.date AS date, sessions.duration_minutes AS duration_minutes, " +
			"games.title AS game_title, members.full_name AS member_name").
		Joins("JOIN games ON games.id = sessions.game_id").
		Joins("JOIN members ON members.id = sessions.member_id").
		Order("sessions.date DESC").
		Order("sessions.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, queryError("list sessions", err)
	}

	return rows, nil
}

// TopGamesByHours groups sessions by game title and returns at most limit
// games with the most hours played. Equal totals are ordered by title.
// A limit of zero or less returns every game that has been played.
func (s *Store) TopGamesByHours(limit int) ([]GameHours, error) {
	var rows []GameHours

	query := s.db.Model(&models.Session{}).
		Select("games.title AS title, SUM(sessions.duration_minutes) AS total_minutes").
		Joins("JOIN games ON games.id = sessions.game_id").
		Group("games.title").
		Order("total_minutes DESC").
		Order("games.title ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, queryError("top games", err)
	}

	for i := range rows {
		rows[i].Hours = minutesToHours(rows[i].TotalMinutes)
	}
	return rows, nil
}

// MembersByHours groups sessions by member name and ranks members by hours
// played, ties ordered by name. Members without sessions are left out unless
// includeIdle is set, in which case they are listed with zero hours.
func (s *Store) MembersByHours(includeIdle bool) ([]MemberHours, error) {
	var rows []MemberHours

	query := s.db.Model(&models.Member{}).
		Select("members.full_name AS full_name, COALESCE(SUM(sessions.duration_minutes), 0) AS total_minutes")
	if includeIdle {
		query = query.Joins("LEFT JOIN sessions ON sessions.member_id = members.id")
	} else {
		query = query.Joins("JOIN sessions ON sessions.member_id = members.id")
	}

	err := query.
		Group("members.full_name").
		Order("total_minutes DESC").
		Order("members.full_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, queryError("members by hours", err)
	}

	for i := range rows {
		rows[i].Hours = minutesToHours(rows[i].TotalMinutes)
	}
	return rows, nil
}

// Statistics counts the sessions inside r and sums their duration
func (s *Store) Statistics(r DateRange) (Stats, error) {
	var stats Stats

	query := s.db.Model(&models.Session{}).
		Select("COUNT(sessions.id) AS count, COALESCE(SUM(sessions.duration_minutes), 0) AS total_minutes")
	if r.From != nil {
		query = query.Where("sessions.date >= ?", models.Day(*r.From))
	}
	if r.To != nil {
		// Inclusive upper day: anything before the following midnight
		query = query.Where("sessions.date < ?", models.Day(*r.To).AddDate(0, 0, 1))
	}

	if err := query.Scan(&stats).Error; err != nil {
		return Stats{}, queryError("statistics", err)
	}
	return stats, nil
}
