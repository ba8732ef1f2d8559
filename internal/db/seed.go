package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type seedMod struct {
	name      string
	category  string
	cost      string
	status    string
	notes     string
	carIdx    int // index into the seeded cars
	created   time.Time
	completed *time.Time
}

// Seed inserts illustrative sample rows on first run: two cars and ten mods
// spanning all three statuses and several categories. Rows are only inserted
// when the mod_items table is empty, so an existing database is left alone.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mod_items`).Scan(&count); err != nil {
		return fmt.Errorf("counting mods: %w", err)
	}
	if count > 0 {
		return nil
	}

	cars := []struct {
		make, model, nickname, year string
	}{
		{"Honda", "Civic", "Civic", "2006"},
		{"Toyota", "Sienna", "Van", "2012"},
	}

	carIDs := make([]int64, len(cars))
	for i, c := range cars {
		result, err := db.ExecContext(ctx,
			`INSERT INTO cars (make, model, nickname, year) VALUES (?, ?, ?, ?)`,
			c.make, c.model, c.nickname, c.year,
		)
		if err != nil {
			return fmt.Errorf("seeding car %s: %w", c.nickname, err)
		}
		carIDs[i], err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting seeded car id: %w", err)
		}
	}

	now := time.Now()
	months := func(n int) time.Time { return now.AddDate(0, n, 0) }
	days := func(n int) time.Time { return now.AddDate(0, 0, n) }
	done := func(t time.Time) *time.Time { return &t }

	mods := []seedMod{
		{"Cold Air Intake", "Intake", "299.99", "Complete", "Installed with heat shield and filter", 0, months(-8), done(months(-7))},
		{"Coilover Kit", "Suspension", "1200", "Planned", "Waiting for funds; researching brands", 0, days(-12), nil},
		{"Exhaust", "Exhaust", "450", "In Progress", "Welding muffler; shop appointment next week", 1, months(-2), nil},
		{"Oil Change", "Maintenance", "39.99", "Complete", "Synthetic oil, filter replaced", 0, months(-1), done(months(-1))},
		{"Brake Pads (Rear)", "Maintenance", "180", "Complete", "OEM pads installed", 1, months(-4), done(months(-3))},
		{"Turbo Install", "Engine", "3500", "Planned", "Major project; timeline TBD", 0, months(-2), nil},
		{"Full Respray", "Exterior", "4000", "Planned", "Color change to deep blue", 1, months(-6), nil},
		{`18" Wheels`, "Wheels", "1200", "In Progress", "Staggered fitment arriving", 0, days(-20), nil},
		{"Head Unit + Speakers", "Audio", "600", "Complete", "Bluetooth unit installed with amp", 1, months(-9), done(months(-9))},
		{"Four-Wheel Alignment", "Maintenance", "120", "Planned", "Schedule after wheel install", 0, days(-3), nil},
	}

	for _, m := range mods {
		_, err := db.ExecContext(ctx,
			`INSERT INTO mod_items (name, category, cost, status, notes, link, created_date, completed_date, car_id)
			 VALUES (?, ?, ?, ?, ?, '', ?, ?, ?)`,
			m.name, m.category, m.cost, m.status, m.notes, m.created, m.completed, carIDs[m.carIdx],
		)
		if err != nil {
			return fmt.Errorf("seeding mod %s: %w", m.name, err)
		}
	}

	return nil
}
