package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"adverse/internal/config"
	"adverse/internal/db"
)

// seedCmd fills the database with demo users, ads and click logs.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo grid data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		ctx := cmd.Context()
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()

		if err = db.Seed(ctx, pool); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		fmt.Println("demo data inserted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
