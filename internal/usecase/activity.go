package usecase

import (
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/naka-gawa/github-profile-readme/internal/domain"
)

// DefaultActivityLimit is the number of lines shown in the recent activity section.
const DefaultActivityLimit = 10

const (
	eventTimeLayout = "2006-01-02T15:04:05Z"
	eventDateLayout = "Jan 02"
)

// FormatEvent renders a single event as one line of text.
// It reports false for events that have nothing to show.
func FormatEvent(event *domain.Event) (string, bool) {
	repo := event.Repo
	date := eventDate(event.CreatedAt)

	switch p := event.Payload.(type) {
	case domain.PushPayload:
		count := p.CommitCount()
		unit := "commits"
		if count == 1 {
			unit = "commit"
		}
		return fmt.Sprintf("Pushed %d %s to `%s` (%s)", count, unit, repo, date), true
	case domain.PullRequestPayload:
		return fmt.Sprintf("%s PR \"%s\" in `%s` (%s)", capitalize(p.Action), p.Title, repo, date), true
	case domain.IssuesPayload:
		return fmt.Sprintf("%s issue \"%s\" in `%s` (%s)", capitalize(p.Action), p.Title, repo, date), true
	case domain.WatchPayload:
		return fmt.Sprintf("Starred `%s` (%s)", repo, date), true
	case domain.CreatePayload:
		if p.RefType == "repository" {
			return fmt.Sprintf("Created repository `%s` (%s)", repo, date), true
		}
		if p.Ref != "" {
			return fmt.Sprintf("Created %s `%s` in `%s` (%s)", p.RefType, p.Ref, repo, date), true
		}
		return "", false
	case domain.ForkPayload:
		return fmt.Sprintf("Forked `%s` to `%s` (%s)", repo, p.Forkee, date), true
	case domain.IssueCommentPayload:
		return fmt.Sprintf("Commented on \"%s\" in `%s` (%s)", p.IssueTitle, repo, date), true
	default:
		return "", false
	}
}

// FormatEvents formats events in order, skipping those without output, and returns at most limit lines.
func FormatEvents(events []*domain.Event, limit int) []string {
	lines := make([]string, 0, max(limit, 0))
	for _, event := range events {
		if len(lines) >= limit {
			break
		}
		if line, ok := FormatEvent(event); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// eventDate renders an API timestamp as "Jan 02", or "" when it does not match eventTimeLayout exactly.
func eventDate(created string) string {
	if len(created) != len(eventTimeLayout) {
		return ""
	}
	t, err := time.Parse(eventTimeLayout, created)
	if err != nil {
		return ""
	}
	return t.Format(eventDateLayout)
}

// capitalize upper-cases the first letter of s and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}
