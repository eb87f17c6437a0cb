package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/balkashynov/tabletop/internal/config"
	"github.com/balkashynov/tabletop/internal/db"
	"github.com/balkashynov/tabletop/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfg *config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tabletop",
	Short: "Board game session tracker and reports",
	Long: `tabletop keeps a small catalog of board games, the members who play them
and every play session, and reports on who played what and for how long.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// loadConfig reads the environment, applies flag overrides and builds the logger
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("db"); path != "" {
		loaded.DBPath = path
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		loaded.LogLevel = level
	}

	cfg = loaded
	log = logger.New(cfg.LogLevel)
	log.WithField("db", cfg.DBPath).Debug("configuration loaded")
	return nil
}

// openStore opens the existing database, printing a hint when it has not been created yet.
// Callers must Close the returned store.
func openStore() (*db.Store, bool) {
	store, err := db.OpenExisting(cfg.DBPath, log)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil, false
	}
	return store, true
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the database file (default ~/.tabletop/boardgames.db)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error")

	// Add subcommands here
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(topGamesCmd)
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
