package usecase

import (
	"fmt"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/github-profile-readme/internal/domain"
)

func repo(name, lang string, stars int, fork bool) *domain.Repository {
	return &domain.Repository{Name: name, Language: lang, Stars: stars, Fork: fork}
}

func TestLanguageStats(t *testing.T) {
	testCases := []struct {
		name     string
		repos    []*domain.Repository
		expected []domain.LanguageStat
	}{
		{
			name:     "no repositories",
			repos:    nil,
			expected: []domain.LanguageStat{},
		},
		{
			name:     "no repository has a language",
			repos:    []*domain.Repository{repo("a", "", 1, false), repo("b", "", 2, true)},
			expected: []domain.LanguageStat{},
		},
		{
			name: "ordered by count, ties keep first-seen order",
			repos: []*domain.Repository{
				repo("a", "Python", 0, false),
				repo("b", "Go", 0, false),
				repo("c", "", 0, false),
				repo("d", "Go", 0, true),
				repo("e", "Rust", 0, false),
				repo("f", "Python", 0, false),
				repo("g", "Go", 0, false),
			},
			expected: []domain.LanguageStat{
				{Language: "Go", Percent: 50},
				{Language: "Python", Percent: float64(2) / float64(6) * 100},
				{Language: "Rust", Percent: float64(1) / float64(6) * 100},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, LanguageStats(tc.repos))
		})
	}
}

func TestLanguageStats_PercentagesSumTo100(t *testing.T) {
	languages := []string{"Go", "Python", "", "Rust", "Go", "C", "", "Zig", "Go"}
	for n := 1; n <= len(languages); n++ {
		t.Run(fmt.Sprintf("%d repositories", n), func(t *testing.T) {
			repos := make([]*domain.Repository, 0, n)
			for i := 0; i < n; i++ {
				repos = append(repos, repo(fmt.Sprint(i), languages[i], 0, false))
			}
			result := LanguageStats(repos)
			require.NotEmpty(t, result)

			percents := make(stats.Float64Data, 0, len(result))
			for _, stat := range result {
				percents = append(percents, stat.Percent)
			}
			sum, err := percents.Sum()
			require.NoError(t, err)
			assert.InDelta(t, 100, sum, 1e-9)
		})
	}
}

func TestTopRepositories(t *testing.T) {
	repos := []*domain.Repository{
		repo("small", "", 1, false),
		repo("forked-giant", "", 1000, true),
		repo("tie-first", "", 10, false),
		repo("big", "", 50, false),
		repo("tie-second", "", 10, false),
		repo("zero", "", 0, false),
	}

	testCases := []struct {
		name     string
		n        int
		expected []string
	}{
		{name: "default size", n: DefaultTopRepositories, expected: []string{"big", "tie-first", "tie-second", "small", "zero"}},
		{name: "truncated", n: 2, expected: []string{"big", "tie-first"}},
		{name: "zero", n: 0, expected: []string{}},
		{name: "negative", n: -1, expected: []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			top := TopRepositories(repos, tc.n)

			names := make([]string, 0, len(top))
			for i, r := range top {
				names = append(names, r.Name)
				assert.False(t, r.Fork)
				if i > 0 {
					assert.LessOrEqual(t, r.Stars, top[i-1].Stars)
				}
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestTopRepositories_DoesNotReorderInput(t *testing.T) {
	repos := []*domain.Repository{repo("a", "", 1, false), repo("b", "", 2, false)}

	TopRepositories(repos, 6)

	assert.Equal(t, "a", repos[0].Name)
}

func TestTotalStars(t *testing.T) {
	assert.Equal(t, 0, TotalStars(nil))
	assert.Equal(t, 1011, TotalStars([]*domain.Repository{
		repo("a", "", 1, false),
		repo("b", "", 1000, true),
		repo("c", "", 10, false),
	}))
}
