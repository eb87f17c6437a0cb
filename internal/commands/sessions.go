package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tabletop/internal/db"
	"github.com/balkashynov/tabletop/internal/parser"
	"github.com/balkashynov/tabletop/internal/report"
)

var sessionsCmd = &cobra.Command{
	Use:     "sessions",
	Aliases: []string{"ls"},
	Short:   "List all sessions, newest first",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, ok := openStore()
		if !ok {
			return
		}
		defer store.Close()

		rows, err := store.ListSessions()
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			renderJSON(rows)
			return
		}
		report.WriteSessions(os.Stdout, rows)
	},
}

var topGamesCmd = &cobra.Command{
	Use:   "top-games",
	Short: "Show the games with the most hours played",
	Long: `Show the games with the most hours played.

Games with the same number of hours are listed alphabetically.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, ok := openStore()
		if !ok {
			return
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		rows, err := store.TopGamesByHours(limit)
		if err != nil {
			fmt.Printf("Error fetching top games: %v\n", err)
			return
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			renderJSON(rows)
			return
		}
		report.WriteTopGames(os.Stdout, rows)
	},
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Rank members by hours played",
	Long: `Rank members by hours played.

Members who have not played yet are left out unless --all is given.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, ok := openStore()
		if !ok {
			return
		}
		defer store.Close()

		includeIdle, _ := cmd.Flags().GetBool("all")
		rows, err := store.MembersByHours(includeIdle)
		if err != nil {
			fmt.Printf("Error fetching members: %v\n", err)
			return
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			renderJSON(rows)
			return
		}
		report.WriteMembers(os.Stdout, rows)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count sessions and total play time for a period",
	Long: `Count sessions and total play time, optionally limited to a period.

Both dates are inclusive and optional. Dates can be given as yyyy-mm-dd,
dd/mm/yyyy, today, yesterday or "X days ago". An invalid date is ignored
and that side of the period is left open.

Examples:
  tabletop stats
  tabletop stats --from 2026-09-01 --to 2026-09-30
  tabletop stats --from "30 days ago"`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, ok := openStore()
		if !ok {
			return
		}
		defer store.Close()

		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		r := db.DateRange{
			From: parseBoundFlag("from", from),
			To:   parseBoundFlag("to", to),
		}

		stats, err := store.Statistics(r)
		if err != nil {
			fmt.Printf("Error fetching statistics: %v\n", err)
			return
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			renderJSON(struct {
				From  *time.Time `json:"from,omitempty"`
				To    *time.Time `json:"to,omitempty"`
				Hours float64    `json:"hours"`
				db.Stats
			}{From: r.From, To: r.To, Hours: stats.Hours(), Stats: stats})
			return
		}
		report.WriteStats(os.Stdout, r, stats)
	},
}

// parseBoundFlag parses a date flag, warning and leaving the bound open when it is invalid
func parseBoundFlag(name, value string) *time.Time {
	d, err := parser.ParseDateBound(value, time.Now())
	if err != nil {
		fmt.Printf("⚠️  Ignoring --%s %q: %v\n", name, value, err)
		return nil
	}
	return d
}

func init() {
	for _, c := range []*cobra.Command{sessionsCmd, topGamesCmd, membersCmd, statsCmd} {
		c.Flags().Bool("json", false, "Output as JSON")
	}
	topGamesCmd.Flags().IntP("limit", "l", db.TopGamesLimit, "Number of games to show (0 = all)")
	membersCmd.Flags().BoolP("all", "a", false, "Include members without sessions")
	statsCmd.Flags().String("from", "", "First day of the period (inclusive)")
	statsCmd.Flags().String("to", "", "Last day of the period (inclusive)")
}
