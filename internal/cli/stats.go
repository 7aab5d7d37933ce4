package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"adverse/internal/adapter/postgres"
	"adverse/internal/adapter/usecase"
	"adverse/internal/config"
	"adverse/internal/db"
)

// statsCmd prints the counters of a single advertisement.
var statsCmd = &cobra.Command{
	Use:   "stats <adId>",
	Short: "Show click and view counters for an advertisement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adID := args[0]

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

		repo := postgres.NewGridRepository(pool)
		svc := usecase.NewGridUseCase(repo, cfg.Grid.Size, cfg.Grid.GenesisSize)

		ad, err := svc.Ad(ctx, adID)
		if err != nil {
			return fmt.Errorf("fetch ad: %w", err)
		}
		if ad == nil {
			return fmt.Errorf("advertisement %q not found", adID)
		}

		title := ""
		if ad.Title != nil {
			title = *ad.Title
		}
		fmt.Printf("Ad:      %s\n", ad.AdID)
		fmt.Printf("Owner:   %s\n", ad.UserID)
		fmt.Printf("Title:   %s\n", title)
		fmt.Printf("Clicks:  %d\n", ad.ClickCount)
		fmt.Printf("Views:   %d\n", ad.ViewCount)
		fmt.Printf("Created: %s\n", ad.CreatedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
