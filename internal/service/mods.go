// Package service is the sanctioned entry point for reading and writing mods.
// It wraps the store with the field-level rules the product requires:
// car references must exist, statuses come from the recognized set, and
// updates overwrite a fixed subset of fields.
package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iowah/garagelog/internal/model"
	"github.com/iowah/garagelog/internal/store"
)

// Validation failures. Not-found is not an error: reads return nil and
// deletes return false for missing ids.
var (
	ErrCarNotFound   = errors.New("referenced car does not exist")
	ErrInvalidStatus = errors.New("status must be Planned, In Progress or Complete")
	ErrNegativeCost  = errors.New("cost must not be negative")
)

// ModService owns the database handle for all mod operations.
type ModService struct {
	DB *sql.DB
}

// GetAll returns every mod with its car joined, in insertion order.
func (s *ModService) GetAll(ctx context.Context) ([]model.Mod, error) {
	return store.ListMods(ctx, s.DB)
}

// GetByID returns a mod with its car joined, or nil if the id doesn't exist.
func (s *ModService) GetByID(ctx context.Context, id int64) (*model.Mod, error) {
	return store.GetMod(ctx, s.DB, id)
}

// Add validates and persists a new mod, returning the stored record with its
// assigned id. An empty status is allowed and defaults to Planned.
func (s *ModService) Add(ctx context.Context, mod model.Mod) (*model.Mod, error) {
	if mod.Status != "" && !model.ValidStatus(mod.Status) {
		return nil, ErrInvalidStatus
	}
	if mod.Cost.IsNegative() {
		return nil, ErrNegativeCost
	}
	if err := s.checkCar(ctx, mod.CarID); err != nil {
		return nil, err
	}
	return store.CreateMod(ctx, s.DB, mod)
}

// Update overwrites the update fields of an existing mod and returns the
// updated record, or nil if the id doesn't exist. The car assignment, file
// references, created date and id are never changed by an update.
func (s *ModService) Update(ctx context.Context, id int64, upd model.ModUpdate) (*model.Mod, error) {
	if !model.ValidStatus(upd.Status) {
		return nil, ErrInvalidStatus
	}
	if upd.Cost.IsNegative() {
		return nil, ErrNegativeCost
	}

	ok, err := store.UpdateMod(ctx, s.DB, id, upd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return store.GetMod(ctx, s.DB, id)
}

// Delete removes a mod. Returns false if the id doesn't exist.
func (s *ModService) Delete(ctx context.Context, id int64) (bool, error) {
	return store.DeleteMod(ctx, s.DB, id)
}

func (s *ModService) checkCar(ctx context.Context, carID *int64) error {
	if carID == nil {
		return nil
	}
	car, err := store.GetCar(ctx, s.DB, *carID)
	if err != nil {
		return err
	}
	if car == nil {
		return ErrCarNotFound
	}
	return nil
}
