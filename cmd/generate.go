package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile-readme/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate <username>",
	Short: "Generates a profile README for a GitHub user",
	Long: `Fetches the public profile, repositories and recent events of a GitHub user and
writes a Markdown profile README with stats, top repositories, a language breakdown,
recent activity and contact links.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		// Inject dependencies and run the main business logic.
		aggregator, cfg, progress, err := newAggregator(cmd)
		if err != nil {
			return err
		}
		output := cfg.OutputPath
		if cmd.Flags().Changed("output") {
			output, _ = cmd.Flags().GetString("output")
		}

		summary, err := aggregator.Aggregate(cmd.Context(), username)
		if err != nil {
			return err
		}

		progress.Println("Generating README...")
		readme := render.Document(summary)
		if err := os.WriteFile(output, []byte(readme), 0o644); err != nil {
			return fmt.Errorf("failed to write README: %w", err)
		}

		progress.Printf("Done! README written to %s", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", "README.md", "Output file path (defaults to README_OUTPUT, then README.md)")
}
