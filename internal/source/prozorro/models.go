package prozorro

import (
	"bytes"
	"encoding/json"
	"fmt"

	"procurement_sync/internal/domain"
)

type feedResponse struct {
	Data     []tenderData `json:"data"`
	NextPage *nextPage    `json:"next_page"`
}

type nextPage struct {
	Offset offset `json:"offset"`
	Path   string `json:"path"`
	URI    string `json:"uri"`
}

type tenderResponse struct {
	Data tenderData `json:"data"`
}

type tenderData struct {
	ID              string           `json:"id"`
	TenderID        string           `json:"tenderID"`
	Status          string           `json:"status"`
	Title           string           `json:"title"`
	DateModified    string           `json:"dateModified"`
	ProcuringEntity *procuringEntity `json:"procuringEntity"`
}

type procuringEntity struct {
	Name       string     `json:"name"`
	Identifier identifier `json:"identifier"`
}

type identifier struct {
	Scheme    string `json:"scheme"`
	ID        string `json:"id"`
	LegalName string `json:"legalName"`
}

// offset is the feed continuation token. The API has served it both as a
// string and as a bare number, so both decode to the same text.
type offset string

func (o *offset) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*o = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = offset(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode offset %s: %w", data, err)
	}
	*o = offset(n.String())
	return nil
}

func (t tenderData) entity() domain.ProcuringEntity {
	if t.ProcuringEntity == nil {
		return domain.ProcuringEntity{}
	}
	return domain.ProcuringEntity{
		Name:       t.ProcuringEntity.Name,
		Identifier: t.ProcuringEntity.Identifier.ID,
	}
}

func (r *feedResponse) toDomain() *domain.FeedPage {
	page := &domain.FeedPage{Items: make([]domain.FeedItem, 0, len(r.Data))}
	for _, d := range r.Data {
		page.Items = append(page.Items, domain.FeedItem{
			ID:              d.ID,
			TenderID:        d.TenderID,
			Status:          d.Status,
			DateModified:    d.DateModified,
			ProcuringEntity: d.entity(),
		})
	}
	if r.NextPage != nil {
		page.NextOffset = string(r.NextPage.Offset)
	}
	return page
}

func (t tenderData) toDomain() *domain.Tender {
	return &domain.Tender{
		ID:              t.ID,
		TenderID:        t.TenderID,
		Status:          t.Status,
		Title:           t.Title,
		DateModified:    t.DateModified,
		ProcuringEntity: t.entity(),
	}
}
