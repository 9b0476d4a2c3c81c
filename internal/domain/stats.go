// Package domain contains the core data structures and domain logic for the application.
package domain

// LanguageStat is the share of repositories whose primary language is Language.
// It is derived from the repository list, never fetched.
type LanguageStat struct {
	Language string  `json:"language"`
	Percent  float64 `json:"percent"`
}

// Snapshot is everything fetched for a single user during one run.
type Snapshot struct {
	Profile      *Profile
	Repositories []*Repository
	Events       []*Event
}

// Summary is the aggregated view of a Snapshot that the README is rendered from.
type Summary struct {
	Profile         *Profile
	TotalStars      int
	TopRepositories []*Repository
	Languages       []LanguageStat
	Activity        []string
}
