// Package dashboard derives the numbers and filtered views shown on the
// dashboard from an in-memory mod collection. All functions are pure.
//
// Totals are always computed from the full collection; Filter feeds only the
// table view. The two derivations share a source but must stay independent,
// so changing a filter never moves the summary numbers.
package dashboard

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/iowah/garagelog/internal/model"
)

// All is the status and category filter value meaning "no constraint".
const All = "All"

// AllCars is the sentinel car id meaning "no car constraint".
const AllCars int64 = -1

// Uncategorized is the grouping label for mods without a category.
const Uncategorized = "Uncategorized"

// Totals holds the dashboard summary numbers.
type Totals struct {
	TotalCount     int             `json:"totalCount"`
	CompletedCount int             `json:"completedCount"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
	TotalPlanned   decimal.Decimal `json:"totalPlanned"`
}

// Filter returns the mods matching the given selections. Status and category
// match exactly unless set to All; carID matches an assigned car exactly
// unless set to AllCars.
func Filter(mods []model.Mod, status, category string, carID int64) []model.Mod {
	out := make([]model.Mod, 0, len(mods))
	for _, m := range mods {
		if status != All && m.Status != status {
			continue
		}
		if category != All && m.Category != category {
			continue
		}
		if carID != AllCars && (m.CarID == nil || *m.CarID != carID) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Summarize computes the totals over the full (unfiltered) collection:
// spent sums Complete costs, planned sums Planned costs.
func Summarize(mods []model.Mod) Totals {
	t := Totals{
		TotalCount:   len(mods),
		TotalSpent:   decimal.Zero,
		TotalPlanned: decimal.Zero,
	}
	for _, m := range mods {
		switch m.Status {
		case model.StatusComplete:
			t.CompletedCount++
			t.TotalSpent = t.TotalSpent.Add(m.Cost)
		case model.StatusPlanned:
			t.TotalPlanned = t.TotalPlanned.Add(m.Cost)
		}
	}
	return t
}

// PercentComplete returns the completion percentage, rounded to the nearest
// integer, and 0 for an empty collection.
func PercentComplete(t Totals) int {
	if t.TotalCount == 0 {
		return 0
	}
	return int(math.Round(float64(t.CompletedCount) / float64(t.TotalCount) * 100))
}

// Categories returns the distinct categories in first-seen order, with All
// prepended and Uncategorized substituted for empty categories.
func Categories(mods []model.Mod) []string {
	seen := make(map[string]bool)
	out := []string{All}
	for _, m := range mods {
		c := m.Category
		if c == "" {
			c = Uncategorized
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Cars returns the cars referenced by at least one mod, in first-seen order,
// with an "All Cars" sentinel prepended.
func Cars(mods []model.Mod) []model.Car {
	seen := make(map[int64]bool)
	out := []model.Car{{ID: AllCars, Nickname: "All Cars"}}
	for _, m := range mods {
		if m.Car != nil && !seen[m.Car.ID] {
			seen[m.Car.ID] = true
			out = append(out, *m.Car)
		}
	}
	return out
}
