package domain

// EventType is the GitHub event type name, e.g. "PushEvent".
type EventType string

const (
	EventTypePush         EventType = "PushEvent"
	EventTypePullRequest  EventType = "PullRequestEvent"
	EventTypeIssues       EventType = "IssuesEvent"
	EventTypeWatch        EventType = "WatchEvent"
	EventTypeCreate       EventType = "CreateEvent"
	EventTypeFork         EventType = "ForkEvent"
	EventTypeIssueComment EventType = "IssueCommentEvent"
)

// Event is a single entry of a user's public event feed.
type Event struct {
	Type EventType
	Repo string
	// CreatedAt is kept as received so a malformed timestamp only affects the rendered date.
	CreatedAt string
	Payload   Payload
}

// Payload is the type-specific part of an Event.
// The set of implementations is closed; unsupported types decode to UnknownPayload.
type Payload interface {
	isPayload()
}

// PushPayload describes a PushEvent.
type PushPayload struct {
	Commits      int // number of entries in the commit list
	Size         int
	DistinctSize int // 1 when the API omitted it
}

// CommitCount returns the number of pushed commits, preferring the commit list,
// then the size, then the distinct size.
func (p PushPayload) CommitCount() int {
	count := p.Commits
	if count == 0 {
		count = p.Size
	}
	if count == 0 {
		count = p.DistinctSize
	}
	return count
}

// PullRequestPayload describes a PullRequestEvent.
type PullRequestPayload struct {
	Action string
	Title  string
}

// IssuesPayload describes an IssuesEvent.
type IssuesPayload struct {
	Action string
	Title  string
}

// WatchPayload describes a WatchEvent (a star).
type WatchPayload struct{}

// CreatePayload describes a CreateEvent.
type CreatePayload struct {
	RefType string // "repository", "branch" or "tag"
	Ref     string
}

// ForkPayload describes a ForkEvent.
type ForkPayload struct {
	Forkee string // full name of the new fork
}

// IssueCommentPayload describes an IssueCommentEvent.
type IssueCommentPayload struct {
	IssueTitle string
}

// UnknownPayload is used for every event type without a dedicated payload.
type UnknownPayload struct{}

func (PushPayload) isPayload()         {}
func (PullRequestPayload) isPayload()  {}
func (IssuesPayload) isPayload()       {}
func (WatchPayload) isPayload()        {}
func (CreatePayload) isPayload()       {}
func (ForkPayload) isPayload()         {}
func (IssueCommentPayload) isPayload() {}
func (UnknownPayload) isPayload()      {}
