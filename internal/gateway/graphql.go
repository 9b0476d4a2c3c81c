package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shurcooL/githubv4"

	"github.com/naka-gawa/github-profile-readme/internal/domain"
	apperrors "github.com/naka-gawa/github-profile-readme/internal/errors"
)

// profileQuery reads the same fields as the REST users endpoint.
type profileQuery struct {
	User *struct {
		Login           string
		Name            string
		AvatarURL       string `graphql:"avatarUrl"`
		Bio             string
		Location        string
		Company         string
		WebsiteURL      string `graphql:"websiteUrl"`
		TwitterUsername string `graphql:"twitterUsername"`
		Email           string
		Followers       struct {
			TotalCount int
		}
		Following struct {
			TotalCount int
		}
		Repositories struct {
			TotalCount int
		} `graphql:"repositories(privacy: PUBLIC, ownerAffiliations: OWNER)"`
	} `graphql:"user(login: $login)"`
}

// repositoriesQuery pages through the user's public repositories, most starred first.
type repositoriesQuery struct {
	User *struct {
		Repositories struct {
			PageInfo struct {
				HasNextPage bool
				EndCursor   githubv4.String
			}
			Nodes []struct {
				Name            string
				URL             string `graphql:"url"`
				Description     string
				PrimaryLanguage *struct {
					Name string
				}
				StargazerCount int  `graphql:"stargazerCount"`
				ForkCount      int  `graphql:"forkCount"`
				IsFork         bool `graphql:"isFork"`
			}
		} `graphql:"repositories(first: 100, after: $cursor, privacy: PUBLIC, ownerAffiliations: OWNER, orderBy: {field: STARGAZERS, direction: DESC})"`
	} `graphql:"user(login: $login)"`
}

func (g *GitHubGateway) fetchProfileGraphQL(ctx context.Context, user string) (*domain.Profile, error) {
	g.logger.Printf("GraphQL user(login: %q)", user)
	var q profileQuery
	variables := map[string]interface{}{"login": githubv4.String(user)}
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL query for profile: %w", classifyGraphQL(user, err))
	}
	if q.User == nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", apperrors.NewNotFoundError("user "+user, nil))
	}
	u := q.User
	return &domain.Profile{
		Login:           u.Login,
		Name:            u.Name,
		AvatarURL:       u.AvatarURL,
		Bio:             u.Bio,
		Location:        u.Location,
		Company:         u.Company,
		Blog:            u.WebsiteURL,
		Followers:       u.Followers.TotalCount,
		Following:       u.Following.TotalCount,
		PublicRepos:     u.Repositories.TotalCount,
		TwitterUsername: u.TwitterUsername,
		Email:           u.Email,
	}, nil
}

func (g *GitHubGateway) fetchRepositoriesGraphQL(ctx context.Context, user string) ([]*domain.Repository, error) {
	variables := map[string]interface{}{
		"login":  githubv4.String(user),
		"cursor": (*githubv4.String)(nil),
	}
	repos := make([]*domain.Repository, 0)
	for {
		var q repositoriesQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to execute GraphQL query for repositories: %w", classifyGraphQL(user, err))
		}
		if q.User == nil {
			return nil, fmt.Errorf("failed to list repositories: %w", apperrors.NewNotFoundError("user "+user, nil))
		}
		for _, node := range q.User.Repositories.Nodes {
			repo := &domain.Repository{
				Name:        node.Name,
				URL:         node.URL,
				Description: node.Description,
				Stars:       node.StargazerCount,
				Forks:       node.ForkCount,
				Fork:        node.IsFork,
			}
			if node.PrimaryLanguage != nil {
				repo.Language = node.PrimaryLanguage.Name
			}
			repos = append(repos, repo)
		}
		if !q.User.Repositories.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.User.Repositories.PageInfo.EndCursor)
		g.logger.Println("  Fetching next page of repositories...")
	}
	return repos, nil
}

// classifyGraphQL maps GraphQL client errors onto the application error taxonomy.
// GitHub reports an unknown login as a query error rather than an HTTP status.
func classifyGraphQL(user string, err error) error {
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return classifyStatus(statusErr.resp, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return apperrors.NewNetworkError(urlErr.Err.Error(), err)
	}
	if strings.Contains(err.Error(), "Could not resolve to a User") {
		return apperrors.NewNotFoundError("user "+user, err)
	}
	return err
}
