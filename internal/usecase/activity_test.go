package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naka-gawa/github-profile-readme/internal/domain"
)

const created = "2024-03-05T10:00:00Z"

func TestFormatEvent(t *testing.T) {
	testCases := []struct {
		name     string
		event    *domain.Event
		expected string
		ok       bool
	}{
		{
			name:     "push counts the commit list",
			event:    &domain.Event{Repo: "alice/tool", CreatedAt: created, Payload: domain.PushPayload{Commits: 3, Size: 5, DistinctSize: 1}},
			expected: "Pushed 3 commits to `alice/tool` (Mar 05)",
			ok:       true,
		},
		{
			name:     "push falls back to size",
			event:    &domain.Event{Repo: "alice/tool", CreatedAt: created, Payload: domain.PushPayload{Size: 2, DistinctSize: 1}},
			expected: "Pushed 2 commits to `alice/tool` (Mar 05)",
			ok:       true,
		},
		{
			name:     "push falls back to distinct size, singular",
			event:    &domain.Event{Repo: "alice/tool", CreatedAt: created, Payload: domain.PushPayload{DistinctSize: 1}},
			expected: "Pushed 1 commit to `alice/tool` (Mar 05)",
			ok:       true,
		},
		{
			name:     "pull request",
			event:    &domain.Event{Repo: "bob/lib", CreatedAt: created, Payload: domain.PullRequestPayload{Action: "opened", Title: "Add cache"}},
			expected: "Opened PR \"Add cache\" in `bob/lib` (Mar 05)",
			ok:       true,
		},
		{
			name:     "issue action is capitalized",
			event:    &domain.Event{Repo: "bob/lib", CreatedAt: created, Payload: domain.IssuesPayload{Action: "REOPENED", Title: "Crash"}},
			expected: "Reopened issue \"Crash\" in `bob/lib` (Mar 05)",
			ok:       true,
		},
		{
			name:     "watch",
			event:    &domain.Event{Repo: "bob/lib", CreatedAt: created, Payload: domain.WatchPayload{}},
			expected: "Starred `bob/lib` (Mar 05)",
			ok:       true,
		},
		{
			name:     "create repository",
			event:    &domain.Event{Repo: "alice/new", CreatedAt: created, Payload: domain.CreatePayload{RefType: "repository"}},
			expected: "Created repository `alice/new` (Mar 05)",
			ok:       true,
		},
		{
			name:     "create branch",
			event:    &domain.Event{Repo: "alice/tool", CreatedAt: created, Payload: domain.CreatePayload{RefType: "branch", Ref: "feature"}},
			expected: "Created branch `feature` in `alice/tool` (Mar 05)",
			ok:       true,
		},
		{
			name:  "create without ref type or ref",
			event: &domain.Event{Repo: "alice/tool", CreatedAt: created, Payload: domain.CreatePayload{}},
		},
		{
			name:  "create branch without ref",
			event: &domain.Event{Repo: "alice/tool", CreatedAt: created, Payload: domain.CreatePayload{RefType: "branch"}},
		},
		{
			name:     "fork",
			event:    &domain.Event{Repo: "bob/lib", CreatedAt: created, Payload: domain.ForkPayload{Forkee: "alice/lib"}},
			expected: "Forked `bob/lib` to `alice/lib` (Mar 05)",
			ok:       true,
		},
		{
			name:     "issue comment",
			event:    &domain.Event{Repo: "bob/lib", CreatedAt: created, Payload: domain.IssueCommentPayload{IssueTitle: "Docs typo"}},
			expected: "Commented on \"Docs typo\" in `bob/lib` (Mar 05)",
			ok:       true,
		},
		{
			name:  "unknown type",
			event: &domain.Event{Type: "GollumEvent", Repo: "alice/wiki", CreatedAt: created, Payload: domain.UnknownPayload{}},
		},
		{
			name:     "malformed date keeps the line",
			event:    &domain.Event{Repo: "bob/lib", CreatedAt: "05/03/2024", Payload: domain.WatchPayload{}},
			expected: "Starred `bob/lib` ()",
			ok:       true,
		},
		{
			name:     "fractional seconds are not the expected layout",
			event:    &domain.Event{Repo: "bob/lib", CreatedAt: "2024-03-05T10:00:00.123Z", Payload: domain.WatchPayload{}},
			expected: "Starred `bob/lib` ()",
			ok:       true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, ok := FormatEvent(tc.event)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, line)
		})
	}
}

func TestFormatEvents(t *testing.T) {
	watch := &domain.Event{Repo: "bob/lib", CreatedAt: created, Payload: domain.WatchPayload{}}
	unknown := &domain.Event{Repo: "bob/lib", CreatedAt: created, Payload: domain.UnknownPayload{}}
	fork := &domain.Event{Repo: "bob/lib", CreatedAt: created, Payload: domain.ForkPayload{Forkee: "alice/lib"}}

	t.Run("keeps order and skips empty lines", func(t *testing.T) {
		lines := FormatEvents([]*domain.Event{fork, unknown, watch}, DefaultActivityLimit)
		assert.Equal(t, []string{
			"Forked `bob/lib` to `alice/lib` (Mar 05)",
			"Starred `bob/lib` (Mar 05)",
		}, lines)
	})

	t.Run("truncates to the limit", func(t *testing.T) {
		events := make([]*domain.Event, 0, 30)
		for i := 0; i < 30; i++ {
			events = append(events, unknown, watch)
		}
		assert.Len(t, FormatEvents(events, DefaultActivityLimit), DefaultActivityLimit)
		assert.Len(t, FormatEvents(events, 3), 3)
		assert.Empty(t, FormatEvents(events, 0))
	})

	t.Run("no events", func(t *testing.T) {
		assert.Empty(t, FormatEvents(nil, DefaultActivityLimit))
	})
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Closed", capitalize("closed"))
	assert.Equal(t, "Ready_for_review", capitalize("ready_for_REVIEW"))
	assert.Equal(t, "Équipe", capitalize("éQUIPE"))
}
