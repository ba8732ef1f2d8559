package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iowah/garagelog/internal/model"
)

// modColumns selects a mod with its car joined (all car columns nullable).
const modColumns = `m.id, m.name, m.category, m.cost, m.status, m.notes, m.link,
	m.created_date, m.completed_date, m.car_id, m.photo_path, m.receipt_path,
	c.id, c.make, c.model, c.nickname, c.year`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMod(row rowScanner) (*model.Mod, error) {
	mod := &model.Mod{}
	var category, cost, notes, link, photoPath, receiptPath sql.NullString
	var carID sql.NullInt64
	var carRowID sql.NullInt64
	var carMake, carModel, carNickname, carYear sql.NullString

	err := row.Scan(
		&mod.ID, &mod.Name, &category, &cost, &mod.Status, &notes, &link,
		&mod.CreatedDate, &mod.CompletedDate, &carID, &photoPath, &receiptPath,
		&carRowID, &carMake, &carModel, &carNickname, &carYear,
	)
	if err != nil {
		return nil, err
	}

	mod.Category = category.String
	mod.Notes = notes.String
	mod.Link = link.String
	mod.PhotoPath = photoPath.String
	mod.ReceiptPath = receiptPath.String

	if cost.Valid && cost.String != "" {
		mod.Cost, err = decimal.NewFromString(cost.String)
		if err != nil {
			return nil, fmt.Errorf("parsing cost %q: %w", cost.String, err)
		}
	}

	if carID.Valid {
		mod.CarID = &carID.Int64
	}
	if carRowID.Valid {
		mod.Car = &model.Car{
			ID:       carRowID.Int64,
			Make:     carMake.String,
			Model:    carModel.String,
			Nickname: carNickname.String,
			Year:     carYear.String,
		}
	}

	return mod, nil
}

// CreateMod creates a new mod and returns the persisted record, including its
// assigned id and joined car. A zero created date defaults to now; an empty
// status defaults to Planned.
func CreateMod(ctx context.Context, db *sql.DB, mod model.Mod) (*model.Mod, error) {
	created := mod.CreatedDate
	if created.IsZero() {
		created = time.Now()
	}
	status := mod.Status
	if status == "" {
		status = model.StatusPlanned
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO mod_items (name, category, cost, status, notes, link,
		                        created_date, completed_date, car_id, photo_path, receipt_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		mod.Name, mod.Category, mod.Cost.String(), status, mod.Notes, mod.Link,
		created, mod.CompletedDate, mod.CarID, mod.PhotoPath, mod.ReceiptPath,
	)
	if err != nil {
		return nil, fmt.Errorf("creating mod: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting mod id: %w", err)
	}

	return GetMod(ctx, db, id)
}

// GetMod returns a mod by ID with its car joined, or nil if it doesn't exist.
func GetMod(ctx context.Context, db *sql.DB, id int64) (*model.Mod, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+modColumns+`
		 FROM mod_items m LEFT JOIN cars c ON c.id = m.car_id
		 WHERE m.id = ?`, id,
	)
	mod, err := scanMod(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting mod: %w", err)
	}
	return mod, nil
}

// ListMods returns all mods in insertion order, each with its car joined.
func ListMods(ctx context.Context, db *sql.DB) ([]model.Mod, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+modColumns+`
		 FROM mod_items m LEFT JOIN cars c ON c.id = m.car_id
		 ORDER BY m.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing mods: %w", err)
	}
	defer rows.Close()

	var mods []model.Mod
	for rows.Next() {
		mod, err := scanMod(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning mod: %w", err)
		}
		mods = append(mods, *mod)
	}
	return mods, rows.Err()
}

// UpdateMod overwrites exactly the update fields of a mod: name, category,
// cost, status, notes, link and completed date. Everything else (car, file
// references, created date) is left as stored. Returns false if the id
// doesn't exist.
func UpdateMod(ctx context.Context, db *sql.DB, id int64, upd model.ModUpdate) (bool, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE mod_items
		 SET name = ?, category = ?, cost = ?, status = ?, notes = ?, link = ?, completed_date = ?
		 WHERE id = ?`,
		upd.Name, upd.Category, upd.Cost.String(), upd.Status, upd.Notes, upd.Link, upd.CompletedDate, id,
	)
	if err != nil {
		return false, fmt.Errorf("updating mod: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("updating mod: %w", err)
	}
	return n > 0, nil
}

// DeleteMod removes a mod. Returns false if the id doesn't exist.
func DeleteMod(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM mod_items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting mod: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting mod: %w", err)
	}
	return n > 0, nil
}
