package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iowah/garagelog/internal/model"
)

func ptr(id int64) *int64 { return &id }

func sampleMods() []model.Mod {
	civic := &model.Car{ID: 1, Make: "Honda", Model: "Civic", Nickname: "Civic"}
	van := &model.Car{ID: 2, Make: "Toyota", Model: "Sienna", Nickname: "Van"}
	return []model.Mod{
		{ID: 1, Name: "Cold Air Intake", Category: "Intake", Cost: decimal.RequireFromString("299.99"), Status: model.StatusComplete, CarID: ptr(1), Car: civic},
		{ID: 2, Name: "Coilover Kit", Category: "Suspension", Cost: decimal.NewFromInt(1200), Status: model.StatusPlanned, CarID: ptr(1), Car: civic},
		{ID: 3, Name: "Oil Change", Category: "", Cost: decimal.RequireFromString("39.99"), Status: model.StatusComplete, CarID: ptr(2), Car: van},
	}
}

func TestSummarizeExample(t *testing.T) {
	totals := Summarize(sampleMods())

	if totals.TotalCount != 3 {
		t.Errorf("expected total count 3, got %d", totals.TotalCount)
	}
	if totals.CompletedCount != 2 {
		t.Errorf("expected completed count 2, got %d", totals.CompletedCount)
	}
	if !totals.TotalSpent.Equal(decimal.RequireFromString("339.98")) {
		t.Errorf("expected total spent 339.98, got %s", totals.TotalSpent)
	}
	if !totals.TotalPlanned.Equal(decimal.RequireFromString("1200.00")) {
		t.Errorf("expected total planned 1200.00, got %s", totals.TotalPlanned)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	totals := Summarize(nil)
	if totals.TotalCount != 0 || totals.CompletedCount != 0 {
		t.Errorf("expected zero counts, got %+v", totals)
	}
	if !totals.TotalSpent.IsZero() || !totals.TotalPlanned.IsZero() {
		t.Errorf("expected zero sums, got %+v", totals)
	}
}

func TestPercentComplete(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{2, 3, 67},
		{1, 3, 33},
		{3, 3, 100},
		{1, 2, 50},
	}
	for _, tt := range tests {
		got := PercentComplete(Totals{TotalCount: tt.total, CompletedCount: tt.completed})
		if got != tt.want {
			t.Errorf("PercentComplete(%d/%d) = %d, want %d", tt.completed, tt.total, got, tt.want)
		}
	}
}

func TestTotalsIndependentOfFilter(t *testing.T) {
	mods := sampleMods()
	before := Summarize(mods)

	// Any filter selection changes only the table subset, never the totals.
	filtered := Filter(mods, model.StatusComplete, All, AllCars)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 filtered mods, got %d", len(filtered))
	}

	after := Summarize(mods)
	if after.TotalCount != before.TotalCount ||
		after.CompletedCount != before.CompletedCount ||
		!after.TotalSpent.Equal(before.TotalSpent) ||
		!after.TotalPlanned.Equal(before.TotalPlanned) {
		t.Errorf("totals changed after filtering: %+v != %+v", after, before)
	}
}

func TestFilterByStatus(t *testing.T) {
	filtered := Filter(sampleMods(), model.StatusPlanned, All, AllCars)
	if len(filtered) != 1 || filtered[0].Name != "Coilover Kit" {
		t.Errorf("unexpected result: %+v", filtered)
	}
}

func TestFilterByCategory(t *testing.T) {
	filtered := Filter(sampleMods(), All, "Intake", AllCars)
	if len(filtered) != 1 || filtered[0].Name != "Cold Air Intake" {
		t.Errorf("unexpected result: %+v", filtered)
	}
}

func TestFilterByCar(t *testing.T) {
	filtered := Filter(sampleMods(), All, All, 2)
	if len(filtered) != 1 || filtered[0].Name != "Oil Change" {
		t.Errorf("unexpected result: %+v", filtered)
	}
}

func TestFilterByCarNoMatches(t *testing.T) {
	filtered := Filter(sampleMods(), All, All, 99)
	if len(filtered) != 0 {
		t.Errorf("expected empty result, got %+v", filtered)
	}
}

func TestFilterUnconstrained(t *testing.T) {
	filtered := Filter(sampleMods(), All, All, AllCars)
	if len(filtered) != 3 {
		t.Errorf("expected all 3 mods, got %d", len(filtered))
	}
}

func TestCategoriesUncategorized(t *testing.T) {
	categories := Categories(sampleMods())
	want := []string{All, "Intake", "Suspension", Uncategorized}
	if len(categories) != len(want) {
		t.Fatalf("expected %v, got %v", want, categories)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Errorf("expected categories[%d] = %q, got %q", i, want[i], categories[i])
		}
	}
}

func TestCarsSentinelAndDedupe(t *testing.T) {
	cars := Cars(sampleMods())
	if len(cars) != 3 {
		t.Fatalf("expected sentinel + 2 cars, got %d", len(cars))
	}
	if cars[0].ID != AllCars || cars[0].Nickname != "All Cars" {
		t.Errorf("expected All Cars sentinel first, got %+v", cars[0])
	}
	if cars[1].Nickname != "Civic" || cars[2].Nickname != "Van" {
		t.Errorf("expected first-seen order, got %+v", cars)
	}
}

func TestCarsIgnoresUnassigned(t *testing.T) {
	mods := []model.Mod{{ID: 1, Name: "Unassigned", Status: model.StatusPlanned}}
	cars := Cars(mods)
	if len(cars) != 1 {
		t.Errorf("expected only the sentinel, got %+v", cars)
	}
}
