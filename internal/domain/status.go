package domain

import (
	"maps"
	"slices"
)

const (
	StatusActiveEnquiries     = "active.enquiries"
	StatusActiveTendering     = "active.tendering"
	StatusActiveAuction       = "active.auction"
	StatusActiveQualification = "active.qualification"
	StatusActiveAwarded       = "active.awarded"
	StatusComplete            = "complete"
	StatusUnsuccessful        = "unsuccessful"
	StatusCancelled           = "cancelled"
)

var statusMessages = map[string]string{
	StatusActiveEnquiries:     "The municipality has posted the procurement. Contractors can ask questions.",
	StatusActiveTendering:     "Contractors are now submitting bids.",
	StatusActiveAuction:       "The auction is underway, contractors are competing on price.",
	StatusActiveQualification: "A winning bid is being verified.",
	StatusActiveAwarded:       "A contractor has been selected. Contract is being finalized.",
	StatusComplete:            "The procurement is complete. The contractor has been hired and work can begin.",
	StatusUnsuccessful:        "No qualified bids were received. The municipality may re-post.",
	StatusCancelled:           "The procurement was cancelled by the municipality.",
}

// StatusMessage returns a donor-friendly description of a tender status.
func StatusMessage(status string) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return "Procurement status: " + status
}

func StatusTitle(status string) string {
	return "Procurement update: " + status
}

// TenderURL returns the public Prozorro page for a tender display id.
func TenderURL(displayID string) string {
	return "https://prozorro.gov.ua/tender/" + displayID
}

// StatusSet is a lookup set of tender statuses.
type StatusSet map[string]struct{}

func NewStatusSet(statuses ...string) StatusSet {
	s := make(StatusSet, len(statuses))
	for _, st := range statuses {
		s[st] = struct{}{}
	}
	return s
}

func (s StatusSet) Has(status string) bool {
	_, ok := s[status]
	return ok
}

// Slice returns the statuses in sorted order.
func (s StatusSet) Slice() []string {
	return slices.Sorted(maps.Keys(s))
}
