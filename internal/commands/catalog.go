package commands

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/balkashynov/tabletop/internal/parser"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the game catalog",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, ok := openStore()
		if !ok {
			return
		}
		defer store.Close()

		games, err := store.ListGames()
		if err != nil {
			fmt.Printf("Error fetching games: %v\n", err)
			return
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			renderJSON(games)
			return
		}

		if len(games) == 0 {
			fmt.Println("No games found. Use 'tabletop init' to create the starter catalog.")
			return
		}

		fmt.Printf("%-4s %-30s %-12s %s\n", "ID", "TITLE", "GENRE", "PLAYERS")
		fmt.Println(strings.Repeat("-", 60))
		for _, g := range games {
			title := g.Title
			if len(title) > 28 {
				title = title[:25] + "..."
			}
			players := fmt.Sprintf("%d-%d", g.MinPlayers, g.MaxPlayers)
			if g.MinPlayers == g.MaxPlayers {
				players = fmt.Sprintf("%d", g.MinPlayers)
			}
			fmt.Printf("%-4d %-30s %-12s %s\n", g.ID, title, g.Genre, players)
		}
	},
}

var playersCmd = &cobra.Command{
	Use:     "players",
	Aliases: []string{"roster"},
	Short:   "List club members",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, ok := openStore()
		if !ok {
			return
		}
		defer store.Close()

		members, err := store.ListMembers()
		if err != nil {
			fmt.Printf("Error fetching members: %v\n", err)
			return
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			renderJSON(members)
			return
		}

		if len(members) == 0 {
			fmt.Println("No members found. Use 'tabletop init' to create the starter roster.")
			return
		}

		fmt.Printf("%-4s %-30s %-10s %s\n", "ID", "NAME", "JOINED", "")
		fmt.Println(strings.Repeat("-", 60))
		for _, m := range members {
			fmt.Printf("%-4d %-30s %-10s %s\n", m.ID, m.FullName, parser.FormatDate(m.JoinDate), humanize.Time(m.JoinDate))
		}
	},
}

func init() {
	gamesCmd.Flags().Bool("json", false, "Output as JSON")
	playersCmd.Flags().Bool("json", false, "Output as JSON")
}
