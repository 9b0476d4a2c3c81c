package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/github-profile-readme/internal/domain"
)

// DefaultTopRepositories is the number of repositories shown in the top repositories table.
const DefaultTopRepositories = 6

// LanguageStats returns the share of repositories per primary language, most common first.
// Repositories without a language are not counted. Languages with the same count keep the
// order in which they were first seen.
func LanguageStats(repos []*domain.Repository) []domain.LanguageStat {
	counts := make(map[string]int)
	var order []string
	total := 0
	for _, repo := range repos {
		if repo.Language == "" {
			continue
		}
		if _, ok := counts[repo.Language]; !ok {
			order = append(order, repo.Language)
		}
		counts[repo.Language]++
		total++
	}
	if total == 0 {
		return []domain.LanguageStat{}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	result := make([]domain.LanguageStat, 0, len(order))
	for _, lang := range order {
		result = append(result, domain.LanguageStat{
			Language: lang,
			Percent:  float64(counts[lang]) / float64(total) * 100,
		})
	}
	return result
}

// TopRepositories returns at most n non-fork repositories ordered by stars, highest first.
// Repositories with equal stars keep their input order.
func TopRepositories(repos []*domain.Repository, n int) []*domain.Repository {
	original := make([]*domain.Repository, 0, len(repos))
	for _, repo := range repos {
		if !repo.Fork {
			original = append(original, repo)
		}
	}
	sort.SliceStable(original, func(i, j int) bool {
		return original[i].Stars > original[j].Stars
	})
	if n < 0 {
		n = 0
	}
	if len(original) > n {
		original = original[:n]
	}
	return original
}

// TotalStars sums the stars of every repository, forks included.
func TotalStars(repos []*domain.Repository) int {
	counts := make([]int, 0, len(repos))
	for _, repo := range repos {
		counts = append(counts, repo.Stars)
	}
	// Sum only fails on empty input.
	total, err := stats.LoadRawData(counts).Sum()
	if err != nil {
		return 0
	}
	return int(total)
}
