// Package render turns a domain.Summary into the Markdown profile README.
//
// Every section builder is a pure function of its input and returns an empty
// string when it has nothing to show, in which case the section is dropped.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/naka-gawa/github-profile-readme/internal/domain"
)

const (
	sectionSeparator = "\n---\n\n"
	footer           = `<p align="center"><i>Generated with <a href="https://github.com">GitHub Profile README Generator</a></i></p>` + "\n"

	// Descriptions longer than maxDescription runes are cut to truncatedDescription runes plus an ellipsis.
	maxDescription       = 80
	truncatedDescription = 77

	missingLanguage = "—"
	barBlock        = "█"
	// percentPerBlock is the share of repositories represented by one bar block.
	percentPerBlock = 5
)

// Document renders the whole README for summary.
func Document(summary *domain.Summary) string {
	sections := []string{
		Header(summary.Profile),
		Stats(summary.Profile, summary.TotalStars),
		TopRepositories(summary.TopRepositories),
		Languages(summary.Languages),
		Activity(summary.Activity),
		Connect(summary.Profile),
	}
	parts := make([]string, 0, len(sections))
	for _, section := range sections {
		if strings.TrimSpace(section) != "" {
			parts = append(parts, section)
		}
	}
	return strings.Join(parts, sectionSeparator) + sectionSeparator + footer
}

// Header renders the greeting, avatar, bio and the location/company/blog line.
func Header(p *domain.Profile) string {
	lines := []string{fmt.Sprintf("# Hi there! I'm %s 👋\n", p.DisplayName())}
	if p.AvatarURL != "" {
		lines = append(lines, fmt.Sprintf(`<img src="%s" width="200" align="right" />`+"\n", p.AvatarURL))
	}
	if p.Bio != "" {
		lines = append(lines, fmt.Sprintf("**%s**\n", p.Bio))
	}

	var meta []string
	if p.Location != "" {
		meta = append(meta, "📍 "+p.Location)
	}
	if p.Company != "" {
		meta = append(meta, "🏢 "+p.Company)
	}
	if p.Blog != "" {
		meta = append(meta, fmt.Sprintf("🔗 [%s](%s)", p.Blog, blogURL(p.Blog)))
	}
	if len(meta) > 0 {
		lines = append(lines, strings.Join(meta, " | ")+"\n")
	}
	return strings.Join(lines, "\n")
}

// Stats renders the followers/following/repositories/stars table.
func Stats(p *domain.Profile, totalStars int) string {
	return strings.Join([]string{
		"## 📊 GitHub Stats\n",
		"| Followers | Following | Public Repos | Total Stars |",
		"|-----------|-----------|--------------|-------------|",
		fmt.Sprintf("| %d | %d | %d | %d |\n", p.Followers, p.Following, p.PublicRepos, totalStars),
	}, "\n")
}

// TopRepositories renders the repositories table.
func TopRepositories(repos []*domain.Repository) string {
	if len(repos) == 0 {
		return ""
	}
	lines := []string{
		"## 🏆 Top Repositories\n",
		"| Repository | Description | Language | ⭐ | 🍴 |",
		"|------------|-------------|----------|---:|---:|",
	}
	for _, repo := range repos {
		lang := repo.Language
		if lang == "" {
			lang = missingLanguage
		}
		lines = append(lines, fmt.Sprintf("| [%s](%s) | %s | %s | %d | %d |",
			repo.Name, repo.URL, tableDescription(repo.Description), lang, repo.Stars, repo.Forks))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// Languages renders one bar per language.
func Languages(langs []domain.LanguageStat) string {
	if len(langs) == 0 {
		return ""
	}
	lines := []string{"## 💻 Language Breakdown\n"}
	for _, stat := range langs {
		lines = append(lines, fmt.Sprintf("- **%s** %s %.1f%%", stat.Language, bar(stat.Percent), stat.Percent))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// Activity renders the formatted event lines as a bullet list.
func Activity(entries []string) string {
	if len(entries) == 0 {
		return ""
	}
	lines := []string{"## ⚡ Recent Activity\n"}
	for _, entry := range entries {
		lines = append(lines, "- "+entry)
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// Connect renders the contact links. The GitHub profile link is always present.
func Connect(p *domain.Profile) string {
	var links []string
	if p.Blog != "" {
		links = append(links, fmt.Sprintf("- 🌐 [%s](%s)", p.Blog, blogURL(p.Blog)))
	}
	if p.TwitterUsername != "" {
		links = append(links, fmt.Sprintf("- 🐦 [@%s](https://twitter.com/%s)", p.TwitterUsername, p.TwitterUsername))
	}
	if p.Email != "" {
		links = append(links, fmt.Sprintf("- 📧 [%s](mailto:%s)", p.Email, p.Email))
	}
	links = append(links, fmt.Sprintf("- 🐙 [%s](https://github.com/%s)", p.Login, p.Login))

	return "## 🤝 Connect With Me\n\n" + strings.Join(links, "\n") + "\n"
}

// blogURL links a blog address, assuming https when it has no scheme.
func blogURL(blog string) string {
	if strings.HasPrefix(blog, "http") {
		return blog
	}
	return "https://" + blog
}

// tableDescription shortens a description and escapes pipes so it fits in one table cell.
func tableDescription(desc string) string {
	if runes := []rune(desc); len(runes) > maxDescription {
		desc = string(runes[:truncatedDescription]) + "..."
	}
	return strings.ReplaceAll(desc, "|", `\|`)
}

// bar returns one block per percentPerBlock percent, rounding half to even.
func bar(percent float64) string {
	return strings.Repeat(barBlock, int(math.RoundToEven(percent/percentPerBlock)))
}
