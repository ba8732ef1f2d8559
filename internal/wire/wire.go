// Package wire normalizes loose request payloads into canonical records.
// Optional fields can arrive as missing, null or empty interchangeably;
// pointer fields collapse missing and null into one absent state so the rest
// of the system never has to care which one the client sent.
package wire

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iowah/garagelog/internal/model"
)

// ModPayload is the wire form of a mod. The id is assigned by the store and
// ignored on input.
type ModPayload struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	Cost          *decimal.Decimal `json:"cost"`
	Status        *string          `json:"status"`
	Notes         *string          `json:"notes"`
	Link          *string          `json:"link"`
	CreatedDate   *time.Time       `json:"createdDate"`
	CompletedDate *time.Time       `json:"completedDate"`
	CarID         *int64           `json:"carId"`
	PhotoPath     *string          `json:"photoPath"`
	ReceiptPath   *string          `json:"receiptPath"`
}

// Normalize converts the payload into a canonical mod: absent cost becomes 0,
// absent or empty status becomes Planned, absent text fields become empty
// strings. A zero created date is left for the store to default.
func (p ModPayload) Normalize() model.Mod {
	mod := model.Mod{
		Name:          strOr(p.Name),
		Category:      strOr(p.Category),
		Cost:          decimal.Zero,
		Status:        statusOr(p.Status),
		Notes:         strOr(p.Notes),
		Link:          strOr(p.Link),
		CompletedDate: p.CompletedDate,
		CarID:         p.CarID,
		PhotoPath:     strOr(p.PhotoPath),
		ReceiptPath:   strOr(p.ReceiptPath),
	}
	if p.Cost != nil {
		mod.Cost = *p.Cost
	}
	if p.CreatedDate != nil {
		mod.CreatedDate = *p.CreatedDate
	}
	return mod
}

// Update extracts the seven fields an update overwrites, normalized the same
// way. Fields the client left out still overwrite, with their defaults: this
// is the original full-replace PATCH contract, preserved deliberately.
func (p ModPayload) Update() model.ModUpdate {
	upd := model.ModUpdate{
		Name:          strOr(p.Name),
		Category:      strOr(p.Category),
		Cost:          decimal.Zero,
		Status:        statusOr(p.Status),
		Notes:         strOr(p.Notes),
		Link:          strOr(p.Link),
		CompletedDate: p.CompletedDate,
	}
	if p.Cost != nil {
		upd.Cost = *p.Cost
	}
	return upd
}

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func statusOr(p *string) string {
	if p == nil || *p == "" {
		return model.StatusPlanned
	}
	return *p
}
