// Package report implements the text menu for browsing session reports.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/balkashynov/tabletop/internal/db"
	"github.com/balkashynov/tabletop/internal/parser"
)

// Queryer is the read side of the store used by the reports
type Queryer interface {
	ListSessions() ([]db.SessionRow, error)
	TopGamesByHours(limit int) ([]db.GameHours, error)
	MembersByHours(includeIdle bool) ([]db.MemberHours, error)
	Statistics(r db.DateRange) (db.Stats, error)
}

var _ Queryer = (*db.Store)(nil)

// Menu choices
const (
	ChoiceSessions = "1"
	ChoiceTopGames = "2"
	ChoiceMembers  = "3"
	ChoiceStats    = "4"
	ChoiceExit     = "0"
)

const menuText = `
=== Board game reports ===
1. All sessions
2. Top 3 games by hours played
3. Members by hours played
4. Statistics for a period
0. Exit
Choose an option: `

// Shell runs the menu loop over a line-oriented reader and writer
type Shell struct {
	q           Queryer
	in          *bufio.Scanner
	out         io.Writer
	log         *logrus.Logger
	now         func() time.Time
	includeIdle bool
}

// Option configures a Shell
type Option func(*Shell)

// WithClock overrides the clock used to resolve relative dates
func WithClock(now func() time.Time) Option {
	return func(s *Shell) { s.now = now }
}

// WithIdleMembers lists members without sessions in the members ranking
func WithIdleMembers(include bool) Option {
	return func(s *Shell) { s.includeIdle = include }
}

// NewShell creates a menu shell reading commands from in and printing to out
func NewShell(q Queryer, in io.Reader, out io.Writer, log *logrus.Logger, opts ...Option) *Shell {
	s := &Shell{
		q:   q,
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the user picks 0 or the input ends.
// Query failures are reported and the loop carries on.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menuText)

		choice, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		switch choice {
		case ChoiceExit:
			fmt.Fprintln(s.out, "Bye!")
			return nil
		case ChoiceSessions, ChoiceTopGames, ChoiceMembers, ChoiceStats:
			if err := s.runChoice(choice); err != nil {
				s.log.WithError(err).WithField("choice", choice).Warn("report failed")
				fmt.Fprintf(s.out, "Error: %v\n", err)
			}
		default:
			fmt.Fprintf(s.out, "Unknown option %q, please choose 0-4.\n", choice)
		}
	}
}

func (s *Shell) runChoice(choice string) error {
	fmt.Fprintln(s.out)

	switch choice {
	case ChoiceSessions:
		rows, err := s.q.ListSessions()
		if err != nil {
			return err
		}
		WriteSessions(s.out, rows)

	case ChoiceTopGames:
		rows, err := s.q.TopGamesByHours(db.TopGamesLimit)
		if err != nil {
			return err
		}
		WriteTopGames(s.out, rows)

	case ChoiceMembers:
		rows, err := s.q.MembersByHours(s.includeIdle)
		if err != nil {
			return err
		}
		WriteMembers(s.out, rows)

	case ChoiceStats:
		r := db.DateRange{
			From: s.promptDate("From date (yyyy-mm-dd, empty for no limit): "),
			To:   s.promptDate("To date (yyyy-mm-dd, empty for no limit): "),
		}
		stats, err := s.q.Statistics(r)
		if err != nil {
			return err
		}
		WriteStats(s.out, r, stats)
	}

	return nil
}

// promptDate asks for one date bound. Invalid input is reported and treated as no bound.
func (s *Shell) promptDate(prompt string) *time.Time {
	fmt.Fprint(s.out, prompt)
	line, ok := s.readLine()
	if !ok {
		return nil
	}

	d, err := parser.ParseDateBound(line, s.now())
	if err != nil {
		if errors.Is(err, parser.ErrInvalidDate) {
			fmt.Fprintf(s.out, "Ignoring %q: %v\n", line, err)
		}
		return nil
	}
	return d
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
