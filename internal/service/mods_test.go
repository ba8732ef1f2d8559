package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iowah/garagelog/internal/db"
	"github.com/iowah/garagelog/internal/model"
	"github.com/iowah/garagelog/internal/store"
)

func newService(t *testing.T) *ModService {
	t.Helper()
	return &ModService{DB: db.NewTestDB(t)}
}

func TestAddAndGetByID(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	added, err := s.Add(ctx, model.Mod{Name: "Exhaust", Cost: decimal.NewFromInt(450)})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := s.GetByID(ctx, added.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Name != "Exhaust" {
		t.Errorf("unexpected mod: %+v", got)
	}
}

func TestAddRejectsDanglingCar(t *testing.T) {
	s := newService(t)

	carID := int64(42)
	_, err := s.Add(context.Background(), model.Mod{Name: "Exhaust", CarID: &carID})
	if !errors.Is(err, ErrCarNotFound) {
		t.Errorf("expected ErrCarNotFound, got %v", err)
	}
}

func TestAddAcceptsExistingCar(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	car, _ := store.CreateCar(ctx, s.DB, model.Car{Make: "Honda", Model: "Civic"})
	mod, err := s.Add(ctx, model.Mod{Name: "Exhaust", CarID: &car.ID})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if mod.Car == nil || mod.Car.ID != car.ID {
		t.Errorf("expected joined car, got %+v", mod.Car)
	}
}

func TestAddRejectsInvalidStatus(t *testing.T) {
	s := newService(t)

	_, err := s.Add(context.Background(), model.Mod{Name: "Exhaust", Status: "Done"})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestAddRejectsNegativeCost(t *testing.T) {
	s := newService(t)

	_, err := s.Add(context.Background(), model.Mod{Name: "Exhaust", Cost: decimal.NewFromInt(-1)})
	if !errors.Is(err, ErrNegativeCost) {
		t.Errorf("expected ErrNegativeCost, got %v", err)
	}
}

func TestUpdateMissingReturnsNil(t *testing.T) {
	s := newService(t)

	mod, err := s.Update(context.Background(), 42, model.ModUpdate{Name: "Nope", Status: model.StatusPlanned})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if mod != nil {
		t.Errorf("expected nil for missing mod, got %+v", mod)
	}
}

func TestUpdateRejectsInvalidStatus(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	added, _ := s.Add(ctx, model.Mod{Name: "Exhaust"})
	_, err := s.Update(ctx, added.ID, model.ModUpdate{Name: "Exhaust", Status: "Finished"})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdatePreservesCarAssignment(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	car, _ := store.CreateCar(ctx, s.DB, model.Car{Make: "Honda", Model: "Civic"})
	added, _ := s.Add(ctx, model.Mod{Name: "Exhaust", CarID: &car.ID})

	updated, err := s.Update(ctx, added.ID, model.ModUpdate{
		Name:   "Cat-back Exhaust",
		Status: model.StatusComplete,
		Cost:   decimal.NewFromInt(500),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Cat-back Exhaust" || updated.Status != model.StatusComplete {
		t.Errorf("expected overwritten fields, got %+v", updated)
	}
	if updated.CarID == nil || *updated.CarID != car.ID {
		t.Errorf("expected car assignment preserved, got %v", updated.CarID)
	}
}

func TestDeleteMissing(t *testing.T) {
	s := newService(t)

	ok, err := s.Delete(context.Background(), 42)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if ok {
		t.Error("expected false for missing mod")
	}
}
