package proposals

import (
	"time"

	"quotedrop/internal/domain/entity"
	"quotedrop/internal/domain/proposals"
)

type ListResponse struct {
	Fields []entity.Field   `json:"fields"`
	Items  []map[string]any `json:"items"`
	Usage  UsageDTO         `json:"usage"`
}

type UsageDTO struct {
	Tier      string `json:"tier"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`     // -1 = unlimited
	Remaining int    `json:"remaining"` // -1 = unlimited
}

type ProposalDTO struct {
	ID        string         `json:"id"`
	Values    map[string]any `json:"values"`
	ShareURL  string         `json:"share_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// SharedProposalDTO is what a client sees behind a share link.
type SharedProposalDTO struct {
	Title          string     `json:"title"`
	ClientName     string     `json:"client_name"`
	TotalAmount    string     `json:"total_amount"`
	Status         string     `json:"status"`
	DateSent       *time.Time `json:"date_sent,omitempty"`
	AcceptanceDate *time.Time `json:"acceptance_date,omitempty"`
	ShowBranding   bool       `json:"show_branding"`
}

func toListItem(p proposals.Proposal) map[string]any {
	values := p.Values()
	item := map[string]any{"id": p.ID, "created_at": p.CreatedAt}
	for _, f := range entity.ListFields() {
		item[f.Name] = values[f.Name]
	}
	return item
}

func toProposalDTO(p proposals.Proposal, appURL string) ProposalDTO {
	return ProposalDTO{
		ID:        p.ID,
		Values:    p.Values(),
		ShareURL:  proposals.BuildShareURL(appURL, p.ShareSlug),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
