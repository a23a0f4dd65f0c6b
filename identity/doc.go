// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity validates the simulated student identity scheme.

There is no login system: the frontend issues each session a random
STU### identifier and every submission carries it. The server does not
trust these blindly - handlers validate the format here and ensure a
students row exists before writing anything keyed on the identifier.

	if !identity.ValidStudentID(req.StudentID) {
		// 400
	}

PlaceholderName and FallbackName synthesize display names for students
that were never explicitly registered.
*/
package identity
