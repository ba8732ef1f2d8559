package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iowah/garagelog/internal/model"
)

// CreateCar creates a new car and returns it with its assigned id.
func CreateCar(ctx context.Context, db *sql.DB, car model.Car) (*model.Car, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO cars (make, model, nickname, year) VALUES (?, ?, ?, ?)`,
		car.Make, car.Model, car.Nickname, car.Year,
	)
	if err != nil {
		return nil, fmt.Errorf("creating car: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting car id: %w", err)
	}

	return GetCar(ctx, db, id)
}

// GetCar returns a car by ID, or nil if it doesn't exist.
func GetCar(ctx context.Context, db *sql.DB, id int64) (*model.Car, error) {
	car := &model.Car{}
	var nickname, year sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, make, model, nickname, year FROM cars WHERE id = ?`, id,
	).Scan(&car.ID, &car.Make, &car.Model, &nickname, &year)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting car: %w", err)
	}
	car.Nickname = nickname.String
	car.Year = year.String
	return car, nil
}

// ListCars returns all cars in insertion order.
func ListCars(ctx context.Context, db *sql.DB) ([]model.Car, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, make, model, nickname, year FROM cars ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing cars: %w", err)
	}
	defer rows.Close()

	var cars []model.Car
	for rows.Next() {
		var car model.Car
		var nickname, year sql.NullString
		if err := rows.Scan(&car.ID, &car.Make, &car.Model, &nickname, &year); err != nil {
			return nil, fmt.Errorf("scanning car: %w", err)
		}
		car.Nickname = nickname.String
		car.Year = year.String
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

// DeleteCar removes a car. Mods referencing it keep existing but become
// unassigned (the foreign key clears car_id). Returns false if the id
// doesn't exist.
func DeleteCar(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM cars WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting car: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting car: %w", err)
	}
	return n > 0, nil
}
