// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/nourish-hub/models"
)

// SeedDemo inserts demo data so a fresh database renders a usable
// dashboard: three sample students, today's menus, a default weekly
// option set, and randomized preferences for today. Safe to call
// repeatedly - every insert is keyed and conflict-ignored, and the
// random preferences are only generated when today has none.
func SeedDemo(db *sql.DB) error {
	if err := seedStudents(db); err != nil {
		return err
	}
	if err := seedTodayMenu(db); err != nil {
		return err
	}
	if err := seedWeeklyOptions(db); err != nil {
		return err
	}
	return seedSamplePreferences(db)
}

func seedStudents(db *sql.DB) error {
	students := []struct {
		studentID, name, email string
	}{
		{"STU001", "Rahul Kumar", "rahul@example.com"},
		{"STU002", "Priya Sharma", "priya@example.com"},
		{"STU003", "Amit Patel", "amit@example.com"},
	}

	for _, s := range students {
		_, err := db.Exec(`
			INSERT INTO students (id, student_id, name, email, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (student_id) DO NOTHING
		`, uuid.NewString(), s.studentID, s.name, s.email, time.Now())
		if err != nil {
			return fmt.Errorf("failed to seed student %s: %w", s.studentID, err)
		}
	}

	return nil
}

func seedTodayMenu(db *sql.DB) error {
	today := time.Now().Format("2006-01-02")

	menus := map[string][]string{
		models.MealLunch: {
			"Dal Tadka + Jeera Rice",
			"Mixed Veg Curry + Raita + Papad",
			"Gulab Jamun",
		},
		models.MealDinner: {
			"Paneer Butter Masala + Roti",
			"Dal Fry + Aloo Sabzi + Salad",
			"Ice Cream",
		},
	}

	for mealType, items := range menus {
		itemsJSON, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("failed to marshal menu items: %w", err)
		}

		_, err = db.Exec(`
			INSERT INTO menu (id, date, meal_type, items, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (date, meal_type) DO NOTHING
		`, uuid.NewString(), today, mealType, string(itemsJSON), time.Now())
		if err != nil {
			return fmt.Errorf("failed to seed %s menu: %w", mealType, err)
		}
	}

	return nil
}

func seedWeeklyOptions(db *sql.DB) error {
	defaults := map[string][]string{
		models.MealLunch: {
			"Rajma Chawal",
			"Veg Biryani",
			"Chole Bhature",
			"South Indian Meals",
		},
		models.MealDinner: {
			"Paneer Tikka + Roti",
			"Veg Fried Rice + Manchurian",
			"Dal Makhani + Naan",
			"Pav Bhaji",
		},
	}

	for _, day := range models.Weekdays {
		for mealType, options := range defaults {
			for pos, text := range options {
				_, err := db.Exec(`
					INSERT INTO weekly_menu_options (id, day, meal_type, option_text, position, created_at)
					VALUES ($1, $2, $3, $4, $5, $6)
					ON CONFLICT (day, meal_type, option_text) DO NOTHING
				`, uuid.NewString(), day, mealType, text, pos, time.Now())
				if err != nil {
					return fmt.Errorf("failed to seed option %q for %s %s: %w", text, day, mealType, err)
				}
			}
		}
	}

	return nil
}

// seedSamplePreferences fills today's stats with randomized submissions
// from the simulated STU001-STU500 population.
func seedSamplePreferences(db *sql.DB) error {
	today := time.Now().Format("2006-01-02")

	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM meal_preferences WHERE date = $1
	`, today).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count today's preferences: %w", err)
	}
	if count > 0 {
		return nil
	}

	statuses := []string{models.EatingYes, models.EatingLimited, models.EatingTiffin, models.EatingSkip}
	portions := []string{models.PortionSmall, models.PortionMedium, models.PortionLarge}

	rows := []struct {
		mealType string
		n        int
	}{
		{models.MealLunch, 200},
		{models.MealDinner, 230},
	}

	for _, batch := range rows {
		for i := 0; i < batch.n; i++ {
			studentID := fmt.Sprintf("STU%03d", rand.Intn(500)+1)
			_, err := db.Exec(`
				INSERT INTO meal_preferences (id, student_id, meal_type, date, eating_status, portion_size, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (student_id, meal_type, date) DO NOTHING
			`, uuid.NewString(), studentID, batch.mealType, today,
				statuses[rand.Intn(len(statuses))], portions[rand.Intn(len(portions))], time.Now())
			if err != nil {
				return fmt.Errorf("failed to seed sample preference: %w", err)
			}
		}
	}

	return nil
}
