package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile-readme/internal/domain"
)

var previewCmd = &cobra.Command{
	Use:   "preview <username>",
	Short: "Prints the aggregated profile data as tables",
	Long:  `Fetches the same data as generate and prints the stats, top repositories and language breakdown to standard output without writing a file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		aggregator, _, _, err := newAggregator(cmd)
		if err != nil {
			return err
		}
		summary, err := aggregator.Aggregate(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func printSummary(w io.Writer, summary *domain.Summary) {
	p := summary.Profile
	fmt.Fprintf(w, "\n%s (@%s)\n", p.DisplayName(), p.Login)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Followers", strconv.Itoa(p.Followers)})
	table.Append([]string{"Following", strconv.Itoa(p.Following)})
	table.Append([]string{"Public Repos", strconv.Itoa(p.PublicRepos)})
	table.Append([]string{"Total Stars", strconv.Itoa(summary.TotalStars)})
	table.Render()

	if len(summary.TopRepositories) > 0 {
		table = tablewriter.NewWriter(w)
		table.SetHeader([]string{"Repository", "Language", "Stars", "Forks"})
		for _, repo := range summary.TopRepositories {
			lang := repo.Language
			if lang == "" {
				lang = "-"
			}
			table.Append([]string{repo.Name, lang, strconv.Itoa(repo.Stars), strconv.Itoa(repo.Forks)})
		}
		table.Render()
	}

	if len(summary.Languages) > 0 {
		table = tablewriter.NewWriter(w)
		table.SetHeader([]string{"Language", "Share"})
		for _, stat := range summary.Languages {
			table.Append([]string{stat.Language, fmt.Sprintf("%.1f%%", stat.Percent)})
		}
		table.Render()
	}

	fmt.Fprintf(w, "%d recent activity entries\n", len(summary.Activity))
}
