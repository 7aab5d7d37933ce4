package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd is the base command. Subcommands register themselves in their
// own files via init.
var rootCmd = &cobra.Command{
	Use:   "adverse",
	Short: "AdVerse grid advertisement server",
	Long: `AdVerse serves a shared 1000x1000 advertisement grid over HTTP.
Users claim a cell and attach an advertisement; clicks and views are
tracked per ad.`,
}

// Execute runs the CLI. It is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// A .env file, when present, populates the environment before the
	// env-tagged config structs are parsed.
	cobra.OnInitialize(func() {
		_ = godotenv.Load()
	})
}
