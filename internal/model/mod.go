package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Costs go over the wire as plain decimal numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Mod represents a tracked vehicle modification or maintenance item.
type Mod struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category,omitempty"`
	Cost          decimal.Decimal `json:"cost"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	Link          string          `json:"link,omitempty"`
	CreatedDate   time.Time       `json:"createdDate"`
	CompletedDate *time.Time      `json:"completedDate,omitempty"`
	CarID         *int64          `json:"carId,omitempty"`
	Car           *Car            `json:"car,omitempty"`
	PhotoPath     string          `json:"photoPath,omitempty"`
	ReceiptPath   string          `json:"receiptPath,omitempty"`
}

// Mod statuses.
const (
	StatusPlanned    = "Planned"
	StatusInProgress = "In Progress"
	StatusComplete   = "Complete"
)

// ValidStatus reports whether status is one of the recognized values.
func ValidStatus(status string) bool {
	return status == StatusPlanned || status == StatusInProgress || status == StatusComplete
}

// ModUpdate carries the fields an update overwrites. An update always writes
// all seven fields; everything else on a stored mod is left untouched.
type ModUpdate struct {
	Name          string
	Category      string
	Cost          decimal.Decimal
	Status        string
	Notes         string
	Link          string
	CompletedDate *time.Time
}
