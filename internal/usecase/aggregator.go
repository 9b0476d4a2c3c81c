// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/naka-gawa/github-profile-readme/internal/domain"
	"github.com/naka-gawa/github-profile-readme/internal/gateway"
)

// Aggregator is the use case for aggregating a GitHub profile.
// It orchestrates the fetching of a user's data and reduces it to a Summary.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewAggregator creates a new Aggregator instance.
// Progress messages are written to logger.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Collect fetches the profile, repositories and recent events of user, one after another.
// A failure to fetch events is not fatal unless ctx is done: the snapshot then holds no events.
func (a *Aggregator) Collect(ctx context.Context, user string) (*domain.Snapshot, error) {
	a.logger.Printf("Fetching profile for %s...", user)
	profile, err := a.fetcher.FetchProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	a.logger.Println("Fetching repositories...")
	repos, err := a.fetcher.FetchRepositories(ctx, user)
	if err != nil {
		return nil, err
	}

	a.logger.Println("Fetching recent activity...")
	events, err := a.fetcher.FetchEvents(ctx, user)
	if err != nil {
		// A cancelled run aborts instead of producing a README without activity.
		if ctx.Err() != nil {
			return nil, err
		}
		a.logger.Println("Warning: Could not fetch events, skipping activity section.")
		events = []*domain.Event{}
	}

	return &domain.Snapshot{
		Profile:      profile,
		Repositories: repos,
		Events:       events,
	}, nil
}

// Aggregate collects the data of user and summarizes it.
func (a *Aggregator) Aggregate(ctx context.Context, user string) (*domain.Summary, error) {
	snapshot, err := a.Collect(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to collect data for %s: %w", user, err)
	}
	return Summarize(snapshot), nil
}

// Summarize reduces a snapshot to the values the README is rendered from.
func Summarize(snapshot *domain.Snapshot) *domain.Summary {
	return &domain.Summary{
		Profile:         snapshot.Profile,
		TotalStars:      TotalStars(snapshot.Repositories),
		TopRepositories: TopRepositories(snapshot.Repositories, DefaultTopRepositories),
		Languages:       LanguageStats(snapshot.Repositories),
		Activity:        FormatEvents(snapshot.Events, DefaultActivityLimit),
	}
}
