package domain

import "time"

type ReviewKind string

const (
	ReviewKindDiscovery    ReviewKind = "PROZORRO_DISCOVERY"
	ReviewKindStatusChange ReviewKind = "PROZORRO_STATUS"
)

// DiscoveryCandidate is the payload of an internal record raised when a feed
// tender matches a watched project.
type DiscoveryCandidate struct {
	RecordID   string `json:"tenderUuid"`
	DisplayID  string `json:"tenderID"`
	EntityName string `json:"entityName"`
	Status     string `json:"status"`
	URL        string `json:"prozorroUrl"`
}

// StatusChange is the payload of a donor-visible record raised when a linked
// tender moves to a new status.
type StatusChange struct {
	RecordID  string `json:"tenderUuid"`
	DisplayID string `json:"tenderID"`
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
	URL       string `json:"prozorroUrl"`
}

// ReviewRecord is an append-only note attached to a project. Exactly one of
// Discovery or StatusChange is set, matching Kind.
type ReviewRecord struct {
	ID           string
	ProjectID    string
	Kind         ReviewKind
	Public       bool
	Title        string
	Message      string
	Discovery    *DiscoveryCandidate
	StatusChange *StatusChange
	CreatedAt    time.Time
}

// ExternalRecordID returns the tender uuid carried by the payload.
func (r *ReviewRecord) ExternalRecordID() string {
	switch {
	case r.Discovery != nil:
		return r.Discovery.RecordID
	case r.StatusChange != nil:
		return r.StatusChange.RecordID
	}
	return ""
}

// Payload returns the variant that belongs in the metadata column.
func (r *ReviewRecord) Payload() any {
	if r.Discovery != nil {
		return r.Discovery
	}
	return r.StatusChange
}

func NewDiscoveryRecord(projectID string, c DiscoveryCandidate) ReviewRecord {
	return ReviewRecord{
		ProjectID: projectID,
		Kind:      ReviewKindDiscovery,
		Public:    false,
		Title:     "Potential Prozorro match",
		Message:   "Tender " + c.DisplayID + " from " + c.EntityName + " may be related to this project. Admin review required.",
		Discovery: &c,
	}
}

func NewStatusChangeRecord(projectID string, c StatusChange) ReviewRecord {
	return ReviewRecord{
		ProjectID:    projectID,
		Kind:         ReviewKindStatusChange,
		Public:       true,
		Title:        StatusTitle(c.NewStatus),
		Message:      StatusMessage(c.NewStatus),
		StatusChange: &c,
	}
}
