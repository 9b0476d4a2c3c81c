// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/github-profile-readme/internal/domain"
)

const (
	// repoPageSize is the page size for the repository listing; a shorter page ends pagination.
	repoPageSize = 100
	// eventPageSize is the number of recent public events requested.
	eventPageSize = 30

	userAgent = "github-profile-readme"
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchProfile(ctx context.Context, user string) (*domain.Profile, error)
	FetchRepositories(ctx context.Context, user string) ([]*domain.Repository, error)
	FetchEvents(ctx context.Context, user string) ([]*domain.Event, error)
}

// Options configures the clients created by NewGitHubGateway.
type Options struct {
	// Token authenticates every request when set.
	Token string
	// APIURL overrides the REST base URL. It must end with a slash.
	APIURL string
	// GraphQLURL overrides the GraphQL endpoint.
	GraphQLURL string
	// UseGraphQL reads the profile and repositories from the GraphQL API. It requires a Token.
	UseGraphQL bool
	Timeout    time.Duration
	// Notices receives user-facing advisories such as secondary rate limit hits.
	// The gateway logger is used when nil.
	Notices *log.Logger
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client // nil unless the GraphQL source is enabled
	logger        *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(opts Options, logger *log.Logger) (Fetcher, error) {
	if opts.UseGraphQL && opts.Token == "" {
		return nil, errors.New("the GraphQL API requires a token")
	}
	notices := opts.Notices
	if notices == nil {
		notices = logger
	}

	// A zero sleep limit turns the waiter into a detector: it reports secondary
	// rate limits and hands the response back instead of sleeping.
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(singleAttempt{base: http.DefaultTransport}, github_ratelimit.WithSingleSleepLimit(0, func(cbCtx *github_ratelimit.CallbackContext) {
		if cbCtx.SleepUntil != nil {
			notices.Printf("Warning: GitHub secondary rate limit reached, it lifts at %s.", cbCtx.SleepUntil.UTC().Format("15:04:05 UTC"))
			return
		}
		notices.Println("Warning: GitHub secondary rate limit reached.")
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}

	var transport http.RoundTripper = attemptCounter{base: rateLimitWaiter}
	if opts.Token != "" {
		transport = &oauth2.Transport{
			Base:   transport,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}),
		}
	}
	httpClient := &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
	}

	restClient := github.NewClient(httpClient)
	restClient.UserAgent = userAgent
	if opts.APIURL != "" {
		baseURL, err := url.Parse(opts.APIURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse API URL: %w", err)
		}
		restClient.BaseURL = baseURL
	}

	gateway := &GitHubGateway{
		restClient: restClient,
		logger:     logger,
	}
	if opts.UseGraphQL {
		if opts.GraphQLURL != "" {
			gateway.graphqlClient = githubv4.NewEnterpriseClient(opts.GraphQLURL, withStatusErrors(httpClient))
		} else {
			gateway.graphqlClient = githubv4.NewClient(withStatusErrors(httpClient))
		}
	}
	return gateway, nil
}

// FetchProfile fetches the public profile of user.
func (g *GitHubGateway) FetchProfile(ctx context.Context, user string) (*domain.Profile, error) {
	if g.graphqlClient != nil {
		return g.fetchProfileGraphQL(ctx, user)
	}
	g.logger.Printf("GET users/%s", user)
	ghUser, _, err := g.restClient.Users.Get(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", classify(err))
	}
	return toDomainProfile(ghUser), nil
}

// FetchRepositories fetches every public repository owned by user, most starred first.
// Pagination stops at the first page holding fewer than repoPageSize entries.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, user string) ([]*domain.Repository, error) {
	if g.graphqlClient != nil {
		return g.fetchRepositoriesGraphQL(ctx, user)
	}
	repos := make([]*domain.Repository, 0)
	for page := 1; ; page++ {
		path := fmt.Sprintf("users/%s/repos?sort=stars&direction=desc&per_page=%d&page=%d", url.PathEscape(user), repoPageSize, page)
		g.logger.Printf("GET %s", path)
		var batch []*github.Repository
		if err := g.get(ctx, path, &batch); err != nil {
			return nil, fmt.Errorf("failed to list repositories: %w", err)
		}
		for _, repo := range batch {
			repos = append(repos, toDomainRepository(repo))
		}
		if len(batch) < repoPageSize {
			break
		}
		g.logger.Println("  Fetching next page of repositories...")
	}
	return repos, nil
}

// eventRecord is the wire shape of a public event. The payload is decoded per type
// and the timestamp is kept verbatim.
type eventRecord struct {
	Type string `json:"type"`
	Repo struct {
		Name string `json:"name"`
	} `json:"repo"`
	CreatedAt string          `json:"created_at"`
	Payload   json.RawMessage `json:"payload"`
}

// FetchEvents fetches the most recent public events performed by user, newest first.
func (g *GitHubGateway) FetchEvents(ctx context.Context, user string) ([]*domain.Event, error) {
	path := fmt.Sprintf("users/%s/events/public?per_page=%d", url.PathEscape(user), eventPageSize)
	g.logger.Printf("GET %s", path)
	var records []eventRecord
	if err := g.get(ctx, path, &records); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	events := make([]*domain.Event, 0, len(records))
	for _, rec := range records {
		payload, err := decodePayload(domain.EventType(rec.Type), rec.Payload)
		if err != nil {
			g.logger.Printf("  Skipping malformed %s payload: %v", rec.Type, err)
			payload = domain.UnknownPayload{}
		}
		events = append(events, &domain.Event{
			Type:      domain.EventType(rec.Type),
			Repo:      rec.Repo.Name,
			CreatedAt: rec.CreatedAt,
			Payload:   payload,
		})
	}
	return events, nil
}

// get performs a GET against the REST API and decodes the body into v.
func (g *GitHubGateway) get(ctx context.Context, path string, v interface{}) error {
	req, err := g.restClient.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if _, err := g.restClient.Do(ctx, req, v); err != nil {
		return classify(err)
	}
	return nil
}

// toDomainProfile translates a github.User object to our internal domain.Profile.
func toDomainProfile(u *github.User) *domain.Profile {
	return &domain.Profile{
		Login:           u.GetLogin(),
		Name:            u.GetName(),
		AvatarURL:       u.GetAvatarURL(),
		Bio:             u.GetBio(),
		Location:        u.GetLocation(),
		Company:         u.GetCompany(),
		Blog:            u.GetBlog(),
		Followers:       u.GetFollowers(),
		Following:       u.GetFollowing(),
		PublicRepos:     u.GetPublicRepos(),
		TwitterUsername: u.GetTwitterUsername(),
		Email:           u.GetEmail(),
	}
}

// toDomainRepository translates a github.Repository object to our internal domain.Repository.
func toDomainRepository(r *github.Repository) *domain.Repository {
	return &domain.Repository{
		Name:        r.GetName(),
		URL:         r.GetHTMLURL(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		Fork:        r.GetFork(),
	}
}
