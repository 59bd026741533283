package proposals

import (
	"time"

	"quotedrop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusDraft    = "draft"
	StatusSent     = "sent"
	StatusViewed   = "viewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
	StatusArchived = "archived"
)

// Proposal is the stored form of the entity.Proposal record type.
type Proposal struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`

	Title          string          `gorm:"not null" json:"title"`
	ClientName     string          `gorm:"not null" json:"client_name"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	Status         string          `gorm:"not null;default:'draft';index" json:"status"`
	DateSent       *time.Time      `gorm:"type:date" json:"date_sent"`
	AcceptanceDate *time.Time      `gorm:"type:date" json:"acceptance_date"`
	ShareableLink  *string         `json:"shareable_link"`

	ShareSlug string `gorm:"not null;uniqueIndex" json:"share_slug"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Proposal) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	return nil
}

// Apply copies the values of a parsed form record onto the proposal. Keys
// absent from the record are left untouched; nil values clear optional
// fields.
func (p *Proposal) Apply(rec entity.Record) {
	for name, v := range rec {
		switch name {
		case entity.FieldNameTitle:
			p.Title, _ = v.(string)
		case entity.FieldNameClientName:
			p.ClientName, _ = v.(string)
		case entity.FieldNameTotalAmount:
			if d, ok := v.(decimal.Decimal); ok {
				p.TotalAmount = d
			}
		case entity.FieldNameStatus:
			if s, ok := v.(string); ok {
				p.Status = s
			}
		case entity.FieldNameDateSent:
			p.DateSent = timePtr(v)
		case entity.FieldNameAcceptanceDate:
			p.AcceptanceDate = timePtr(v)
		case entity.FieldNameShareableLink:
			if s, ok := v.(string); ok {
				p.ShareableLink = &s
			} else {
				p.ShareableLink = nil
			}
		}
	}
}

// Values returns the proposal as a field-name keyed map, in the shape the
// entity config describes.
func (p Proposal) Values() map[string]any {
	return map[string]any{
		entity.FieldNameTitle:          p.Title,
		entity.FieldNameClientName:     p.ClientName,
		entity.FieldNameTotalAmount:    p.TotalAmount,
		entity.FieldNameStatus:         p.Status,
		entity.FieldNameDateSent:       p.DateSent,
		entity.FieldNameAcceptanceDate: p.AcceptanceDate,
		entity.FieldNameShareableLink:  p.ShareableLink,
	}
}

func timePtr(v any) *time.Time {
	t, ok := v.(time.Time)
	if !ok {
		return nil
	}
	return &t
}
