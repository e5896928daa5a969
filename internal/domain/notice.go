package domain

import "time"

type AdminMatchNotice struct {
	FacilityName string `json:"facilityName"`
	EDRPOU       string `json:"edrpou"`
	TenderID     string `json:"tenderID"`
	EntityName   string `json:"entityName"`
	TenderStatus string `json:"tenderStatus"`
	URL          string `json:"prozorroUrl"`
}

type DonorUpdateNotice struct {
	DonorName     string `json:"donorName"`
	DonorEmail    string `json:"donorEmail"`
	ProjectName   string `json:"projectName"`
	UpdateTitle   string `json:"updateTitle"`
	UpdateMessage string `json:"updateMessage"`
	TenderID      string `json:"tenderID"`
	URL           string `json:"prozorroUrl"`
}

type SyncFailureNotice struct {
	Error      string        `json:"error"`
	OccurredAt time.Time     `json:"occurredAt"`
	Duration   time.Duration `json:"duration"`
	RunID      string        `json:"runId"`
}
