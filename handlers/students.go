// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/nourish-hub/identity"
)

// EnsureStudent makes sure a students row exists for the given
// identifier, inserting a placeholder record on first contact. Seeded
// or previously registered rows are left untouched.
//
// Callers are expected to have validated the identifier format already;
// this only guarantees referential integrity for rows that reference
// student_id.
func EnsureStudent(db *sql.DB, studentID string) error {
	_, err := db.Exec(`
		INSERT INTO students (id, student_id, name, email, created_at)
		VALUES ($1, $2, $3, '', $4)
		ON CONFLICT (student_id) DO NOTHING
	`, uuid.NewString(), studentID, identity.PlaceholderName(studentID), time.Now())
	if err != nil {
		return fmt.Errorf("failed to ensure student %s: %w", studentID, err)
	}

	return nil
}
