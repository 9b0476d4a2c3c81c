package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/go-github/v62/github"

	"github.com/naka-gawa/github-profile-readme/internal/domain"
)

// decodePayload decodes the raw payload of an event of type t into its domain variant.
// Unsupported types yield domain.UnknownPayload without inspecting the payload.
func decodePayload(t domain.EventType, raw json.RawMessage) (domain.Payload, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		raw = json.RawMessage("{}")
	}

	switch t {
	case domain.EventTypePush:
		var p github.PushEvent
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode push payload: %w", err)
		}
		distinct := 1
		if p.DistinctSize != nil {
			distinct = *p.DistinctSize
		}
		return domain.PushPayload{
			Commits:      len(p.Commits),
			Size:         p.GetSize(),
			DistinctSize: distinct,
		}, nil
	case domain.EventTypePullRequest:
		var p github.PullRequestEvent
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode pull request payload: %w", err)
		}
		return domain.PullRequestPayload{Action: p.GetAction(), Title: p.GetPullRequest().GetTitle()}, nil
	case domain.EventTypeIssues:
		var p github.IssuesEvent
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode issues payload: %w", err)
		}
		return domain.IssuesPayload{Action: p.GetAction(), Title: p.GetIssue().GetTitle()}, nil
	case domain.EventTypeWatch:
		return domain.WatchPayload{}, nil
	case domain.EventTypeCreate:
		var p github.CreateEvent
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode create payload: %w", err)
		}
		return domain.CreatePayload{RefType: p.GetRefType(), Ref: p.GetRef()}, nil
	case domain.EventTypeFork:
		var p github.ForkEvent
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode fork payload: %w", err)
		}
		return domain.ForkPayload{Forkee: p.GetForkee().GetFullName()}, nil
	case domain.EventTypeIssueComment:
		var p github.IssueCommentEvent
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode issue comment payload: %w", err)
		}
		return domain.IssueCommentPayload{IssueTitle: p.GetIssue().GetTitle()}, nil
	default:
		return domain.UnknownPayload{}, nil
	}
}
