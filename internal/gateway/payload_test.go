package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/github-profile-readme/internal/domain"
)

func TestDecodePayload(t *testing.T) {
	testCases := []struct {
		name      string
		eventType domain.EventType
		raw       string
		expected  domain.Payload
	}{
		{
			name:      "push with commit list",
			eventType: domain.EventTypePush,
			raw:       `{"size":5,"distinct_size":4,"commits":[{"sha":"a"},{"sha":"b"},{"sha":"c"}]}`,
			expected:  domain.PushPayload{Commits: 3, Size: 5, DistinctSize: 4},
		},
		{
			name:      "push without distinct size",
			eventType: domain.EventTypePush,
			raw:       `{"size":0}`,
			expected:  domain.PushPayload{DistinctSize: 1},
		},
		{
			name:      "push with explicit zero distinct size",
			eventType: domain.EventTypePush,
			raw:       `{"distinct_size":0}`,
			expected:  domain.PushPayload{},
		},
		{
			name:      "pull request",
			eventType: domain.EventTypePullRequest,
			raw:       `{"action":"opened","pull_request":{"title":"Add cache"}}`,
			expected:  domain.PullRequestPayload{Action: "opened", Title: "Add cache"},
		},
		{
			name:      "issues",
			eventType: domain.EventTypeIssues,
			raw:       `{"action":"closed","issue":{"title":"Crash on start"}}`,
			expected:  domain.IssuesPayload{Action: "closed", Title: "Crash on start"},
		},
		{
			name:      "watch",
			eventType: domain.EventTypeWatch,
			raw:       `{"action":"started"}`,
			expected:  domain.WatchPayload{},
		},
		{
			name:      "create with null ref",
			eventType: domain.EventTypeCreate,
			raw:       `{"ref":null,"ref_type":"repository"}`,
			expected:  domain.CreatePayload{RefType: "repository"},
		},
		{
			name:      "fork",
			eventType: domain.EventTypeFork,
			raw:       `{"forkee":{"full_name":"alice/lib"}}`,
			expected:  domain.ForkPayload{Forkee: "alice/lib"},
		},
		{
			name:      "issue comment",
			eventType: domain.EventTypeIssueComment,
			raw:       `{"action":"created","issue":{"title":"Docs typo"}}`,
			expected:  domain.IssueCommentPayload{IssueTitle: "Docs typo"},
		},
		{
			name:      "missing payload",
			eventType: domain.EventTypeFork,
			raw:       ``,
			expected:  domain.ForkPayload{},
		},
		{
			name:      "null payload",
			eventType: domain.EventTypeIssues,
			raw:       `null`,
			expected:  domain.IssuesPayload{},
		},
		{
			name:      "unsupported type",
			eventType: "MemberEvent",
			raw:       `{"action":"added"}`,
			expected:  domain.UnknownPayload{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := decodePayload(tc.eventType, json.RawMessage(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, payload)
		})
	}
}

func TestDecodePayload_Malformed(t *testing.T) {
	_, err := decodePayload(domain.EventTypePush, json.RawMessage(`[1,2]`))

	assert.ErrorContains(t, err, "decode push payload")
}
