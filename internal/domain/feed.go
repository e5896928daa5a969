package domain

// FeedQuery describes one page request against the tender feed.
type FeedQuery struct {
	Offset     string
	Limit      int
	Descending bool
	Fields     []string
}

type ProcuringEntity struct {
	Name       string
	Identifier string
}

type FeedItem struct {
	ID              string
	TenderID        string
	Status          string
	DateModified    string
	ProcuringEntity ProcuringEntity
}

// DisplayID falls back to the stable id when the feed omitted tenderID.
func (i FeedItem) DisplayID() string {
	if i.TenderID != "" {
		return i.TenderID
	}
	return i.ID
}

type FeedPage struct {
	Items []FeedItem
	// NextOffset is empty when the feed returned no continuation.
	NextOffset string
}

type Tender struct {
	ID              string
	TenderID        string
	Status          string
	Title           string
	DateModified    string
	ProcuringEntity ProcuringEntity
}
