// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile-readme/internal/config"
	apperrors "github.com/naka-gawa/github-profile-readme/internal/errors"
	"github.com/naka-gawa/github-profile-readme/internal/gateway"
	"github.com/naka-gawa/github-profile-readme/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "github-profile-readme",
	Short: "A CLI tool to generate a GitHub profile README.",
	Long: `github-profile-readme fetches a GitHub user's public profile, repositories and
recent activity, and renders them into a Markdown profile README.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", userMessage(err))
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().StringP("token", "t", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	rootCmd.PersistentFlags().Bool("graphql", false, "Read the profile and repositories from the GraphQL API (requires a token)")
}

// userMessage returns the message of the application error in err's chain, if any.
func userMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// newAggregator wires configuration, loggers and the GitHub gateway for a command.
// Progress messages go to the command's output; debug logs go to stderr with --verbose.
func newAggregator(cmd *cobra.Command) (*usecase.Aggregator, *config.Config, *log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Get the verbose flag from the root command to set up the logger.
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
	if verbose {
		logger.SetOutput(cmd.ErrOrStderr()) // If verbose, log to standard error.
	}
	progress := log.New(cmd.OutOrStdout(), "", 0)

	flagToken, _ := cmd.Flags().GetString("token")
	useGraphQL, _ := cmd.Flags().GetBool("graphql")
	token := cfg.ResolveToken(flagToken)
	if token != "" {
		progress.Println("Authenticating with provided token...")
	} else {
		progress.Println("No token provided – using unauthenticated access (60 req/hr limit).")
	}

	githubGateway, err := gateway.NewGitHubGateway(gateway.Options{
		Token:      token,
		APIURL:     cfg.APIURL,
		GraphQLURL: cfg.GraphQLURL,
		UseGraphQL: useGraphQL,
		Timeout:    cfg.HTTPTimeout,
		Notices:    progress,
	}, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	return usecase.NewAggregator(githubGateway, progress), cfg, progress, nil
}
