// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import "time"

// Dates are stored and compared as YYYY-MM-DD strings.
const dateLayout = "2006-01-02"

func today() string {
	return time.Now().Format(dateLayout)
}

// daysBack returns the date n days before today.
func daysBack(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(dateLayout)
}
