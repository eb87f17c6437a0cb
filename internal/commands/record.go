package commands

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tabletop/internal/db"
	"github.com/balkashynov/tabletop/internal/parser"
)

var recordCmd = &cobra.Command{
	Use:   "record <game-id> <member-id> <minutes>",
	Short: "Record a play session",
	Long: `Record that a member played a game for a number of minutes.

Use 'tabletop games' and 'tabletop players' to look up IDs.

Examples:
  tabletop record 1 3 90                     # Played today
  tabletop record 2 1 45 --date yesterday
  tabletop record 4 5 120 --date 2026-09-14`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		gameID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid game ID '%s'\n", args[0])
			return
		}
		memberID, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid member ID '%s'\n", args[1])
			return
		}
		minutes, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Printf("Error: invalid duration '%s', expected minutes\n", args[2])
			return
		}

		dateFlag, _ := cmd.Flags().GetString("date")
		playedOn, err := parser.ParseDateOrToday(dateFlag, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		store, ok := openStore()
		if !ok {
			return
		}
		defer store.Close()

		session, err := store.RecordSession(uint(gameID), uint(memberID), playedOn, minutes)
		if err != nil {
			if errors.Is(err, db.ErrConstraint) {
				fmt.Printf("Error: session rejected: %v\n", err)
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Recorded session #%d: %s played %s for %d minutes on %s\n",
			session.ID, session.Member.FullName, session.Game.Title,
			session.DurationMinutes, parser.FormatDate(session.Date))
	},
}

func init() {
	recordCmd.Flags().StringP("date", "d", "", "Day played (yyyy-mm-dd, dd/mm/yyyy, today, yesterday, X days ago); defaults to today")
}
