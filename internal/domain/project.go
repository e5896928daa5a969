package domain

import "time"

type Project struct {
	ID                 string     `db:"id"`
	FacilityName       string     `db:"facility_name"`
	EDRPOU             *string    `db:"edrpou"`
	ProzorroTenderUUID *string    `db:"prozorro_tender_uuid"`
	ProzorroTenderID   *string    `db:"prozorro_tender_id"`
	ProzorroStatus     *string    `db:"prozorro_status"`
	ProzorroLastSync   *time.Time `db:"prozorro_last_sync"`
}

// Linked reports whether a human has confirmed a tender for the project.
func (p *Project) Linked() bool {
	return p.ProzorroTenderUUID != nil && *p.ProzorroTenderUUID != ""
}

// Unlinked reports whether neither tender column is set. Only unlinked
// projects are discovery candidates.
func (p *Project) Unlinked() bool {
	return blank(p.ProzorroTenderUUID) && blank(p.ProzorroTenderID)
}

func blank(s *string) bool {
	return s == nil || *s == ""
}

// Status returns the last known tender status, or "" if none was recorded yet.
func (p *Project) Status() string {
	if p.ProzorroStatus == nil {
		return ""
	}
	return *p.ProzorroStatus
}

type Donor struct {
	Name  string `db:"donor_name"`
	Email string `db:"donor_email"`
}

// Watchlist maps an EDRPOU to every funded, unlinked project that carries it.
type Watchlist map[string][]Project

// ProjectCount returns the number of projects across all identifiers.
func (w Watchlist) ProjectCount() int {
	n := 0
	for _, projects := range w {
		n += len(projects)
	}
	return n
}
