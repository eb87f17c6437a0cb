package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tabletop/internal/db"
	"github.com/balkashynov/tabletop/internal/seed"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and fill it with starter data",
	Long: `Create the database and fill it with the starter catalog of 5 games,
5 members and 20 randomly generated play sessions.

By default any existing data is wiped first. Use --keep to keep it; seeding
is skipped when the database already has games or members.

Examples:
  tabletop init            # Fresh database with new random sessions
  tabletop init --seed 42  # Reproducible sessions
  tabletop init --keep     # Only create what is missing`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetBool("keep")
		seedVal, _ := cmd.Flags().GetInt64("seed")
		if !cmd.Flags().Changed("seed") {
			seedVal = cfg.Seed
		}

		counts, err := initializeStore(cfg.DBPath, !keep, seedVal)
		if err != nil {
			return err
		}

		fmt.Println("✅ Database created and populated.")
		fmt.Printf("Games:    %d\n", counts.Games)
		fmt.Printf("Members:  %d\n", counts.Members)
		fmt.Printf("Sessions: %d\n", counts.Sessions)
		return nil
	},
}

// initializeStore (re)creates the schema at path, seeds it and returns the resulting counts
func initializeStore(path string, reset bool, seedVal int64) (db.Counts, error) {
	store, err := db.Open(path, log)
	if err != nil {
		return db.Counts{}, err
	}
	defer store.Close()

	if err := store.Initialize(reset); err != nil {
		return db.Counts{}, err
	}

	if _, err := seed.New(store, seed.Config{Seed: seedVal}, log).Seed(); err != nil {
		return db.Counts{}, err
	}

	return store.Counts()
}

func init() {
	initCmd.Flags().Bool("keep", false, "Keep existing data instead of recreating the database")
	initCmd.Flags().Int64("seed", 0, "Random seed for the generated sessions (0 = random)")
}
