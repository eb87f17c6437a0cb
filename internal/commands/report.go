package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tabletop/internal/report"
	"github.com/balkashynov/tabletop/internal/tui"
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"menu"},
	Short:   "Browse reports from an interactive menu",
	Long: `Browse reports from an interactive menu:

  1  All sessions
  2  Top 3 games by hours played
  3  Members by hours played
  4  Statistics for a period (optional from/to dates)
  0  Exit

Opens the interactive UI by default, use --no-ui for a plain text menu
that reads choices from standard input.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, ok := openStore()
		if !ok {
			return
		}
		defer store.Close()

		includeIdle, _ := cmd.Flags().GetBool("all")
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI || cfg.NoUI {
			shell := report.NewShell(store, os.Stdin, os.Stdout, log, report.WithIdleMembers(includeIdle))
			if err := shell.Run(); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		if err := tui.RunReportTUI(store, includeIdle); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func init() {
	reportCmd.Flags().Bool("no-ui", false, "Plain text menu on standard input")
	reportCmd.Flags().Bool("all", false, "Include members without sessions in the members ranking")
}
