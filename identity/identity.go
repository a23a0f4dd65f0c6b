// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import "regexp"

// Student identifiers are client-generated opaque tokens in the campus
// format STU followed by exactly three digits (STU001 .. STU999).
var studentIDPattern = regexp.MustCompile(`^STU[0-9]{3}$`)

// ValidStudentID reports whether id matches the STU### format.
func ValidStudentID(id string) bool {
	return studentIDPattern.MatchString(id)
}

// PlaceholderName is the display name given to a student row created
// lazily on first contact, before any real registration data exists.
func PlaceholderName(studentID string) string {
	return "Student " + studentID
}

// FallbackName labels feedback whose author has no students row or an
// empty display name.
func FallbackName(studentID string) string {
	return "Student #" + studentID
}
