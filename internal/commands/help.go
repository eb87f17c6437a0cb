package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show comprehensive help for tabletop",
	Long:  `Display detailed help for all tabletop commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			// Delegate to cobra for per-command help
			target, _, err := rootCmd.Find(args)
			if err == nil && target != rootCmd {
				target.Help()
				return
			}
		}
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
tabletop - board game session tracker

COMMANDS:

  init                    Create the database with starter data
    --keep                Keep existing data (seed only an empty database)
    --seed                Random seed for generated sessions

  report                  Interactive report menu
    --no-ui               Plain text menu on standard input
    --all                 Include members without sessions

    Menu:
      1             All sessions
      2             Top 3 games by hours played
      3             Members by hours played
      4             Statistics for a period
      0             Exit

  sessions                List all sessions, newest first
  top-games               Games with the most hours played
    -l, --limit           Number of games (default 3, 0 = all)
  members                 Members ranked by hours played
    -a, --all             Include members without sessions
  stats                   Session count and total time
    --from, --to          Inclusive period bounds

  games                   List the game catalog
  players                 List club members
  record <game> <member> <minutes>
                          Record a play session
    -d, --date            Day played (default today)

  version                 Print version information
  help                    Show this help

GLOBAL FLAGS:
  --db                    Database file (env TABLETOP_DB_PATH)
  --log-level             debug|info|warn|error (env TABLETOP_LOG_LEVEL)

Report commands accept --json for machine-readable output.
Dates: yyyy-mm-dd, dd/mm/yyyy, today, yesterday, X days ago.

`)
}
