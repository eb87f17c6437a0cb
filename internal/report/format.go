package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/balkashynov/tabletop/internal/db"
	"github.com/balkashynov/tabletop/internal/parser"
)

const ruleWidth = 60

// WriteSessions prints the session listing as a table
func WriteSessions(w io.Writer, rows []db.SessionRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		return
	}

	fmt.Fprintf(w, "%-10s  %8s  %-20s  %s\n", "DATE", "MINUTES", "GAME", "MEMBER")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	for _, r := range rows {
		fmt.Fprintf(w, "%-10s  %8d  %-20s  %s\n",
			parser.FormatDate(r.Date),
			r.DurationMinutes,
			truncate(r.GameTitle, 20),
			r.MemberName)
	}
}

// WriteTopGames prints the games ranking
func WriteTopGames(w io.Writer, rows []db.GameHours) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No games have been played yet.")
		return
	}

	fmt.Fprintf(w, "%-3s %-30s %8s\n", "#", "GAME", "HOURS")
	fmt.Fprintln(w, strings.Repeat("-", 43))
	for i, r := range rows {
		fmt.Fprintf(w, "%-3d %-30s %8.2f\n", i+1, truncate(r.Title, 30), r.Hours)
	}
}

// WriteMembers prints the members ranking
func WriteMembers(w io.Writer, rows []db.MemberHours) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No member has played yet.")
		return
	}

	fmt.Fprintf(w, "%-3s %-30s %8s\n", "#", "MEMBER", "HOURS")
	fmt.Fprintln(w, strings.Repeat("-", 43))
	for i, r := range rows {
		fmt.Fprintf(w, "%-3d %-30s %8.2f\n", i+1, truncate(r.FullName, 30), r.Hours)
	}
}

// WriteStats prints the aggregate statistics for a date range
func WriteStats(w io.Writer, r db.DateRange, stats db.Stats) {
	fmt.Fprintf(w, "Period:         %s\n", DescribeRange(r))
	fmt.Fprintf(w, "Sessions:       %s\n", humanize.Comma(stats.Count))
	fmt.Fprintf(w, "Total duration: %s minutes (%.1fh)\n", humanize.Comma(stats.TotalMinutes), stats.Hours())
}

// DescribeRange renders a date range, open sides shown as "…"
func DescribeRange(r db.DateRange) string {
	if r.From == nil && r.To == nil {
		return "all time"
	}
	from, to := "…", "…"
	if r.From != nil {
		from = parser.FormatDate(*r.From)
	}
	if r.To != nil {
		to = parser.FormatDate(*r.To)
	}
	return from + " to " + to
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
