package domain

import "time"

// Checkpoint is the persisted resume position of one named job. Position is
// empty when the job has never saved one.
type Checkpoint struct {
	JobName   string    `db:"job_name"`
	Position  string    `db:"position"`
	UpdatedAt time.Time `db:"updated_at"`
}

type DiscoveryResult struct {
	PagesScanned       int      `json:"pagesScanned"`
	FeedItemsProcessed int      `json:"feedItemsProcessed"`
	MatchesFound       int      `json:"matchesFound"`
	Errors             []string `json:"errors"`
	LastPosition       string   `json:"lastPosition,omitempty"`
}

type PollResult struct {
	TendersPolled int      `json:"tendersPolled"`
	StatusChanges int      `json:"statusChanges"`
	Errors        []string `json:"errors"`
}

// SyncReport is the combined outcome of one discovery plus polling run.
type SyncReport struct {
	RunID     string           `json:"runId"`
	Discovery *DiscoveryResult `json:"discovery"`
	Polling   *PollResult      `json:"polling"`
	Duration  time.Duration    `json:"duration"`
	StartedAt time.Time        `json:"startedAt"`
}

func (r *SyncReport) ErrorCount() int {
	n := 0
	if r.Discovery != nil {
		n += len(r.Discovery.Errors)
	}
	if r.Polling != nil {
		n += len(r.Polling.Errors)
	}
	return n
}
