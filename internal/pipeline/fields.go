package pipeline

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	domain "github.com/snackbuddy/deal-tracker/pkg/types"
)

// Field coercion is best-effort by contract: a cell that cannot be read
// as the expected kind is treated as absent, never surfaced as an error.

// cleanString returns the trimmed cell for col, or "" when the column is
// missing or blank after trimming.
func cleanString(rec domain.RawRecord, col string) string {
	return strings.TrimSpace(rec[col])
}

// parseFloat coerces a trimmed cell to a float. NaN and infinities count
// as absent; pandas-style "nan" markers show up in real exports.
func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseInt coerces a trimmed cell to an int, accepting float-formatted
// values like "4.0" the way spreadsheet exports produce them.
func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, ok := parseFloat(s)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// floatField reads col as an optional float.
func floatField(rec domain.RawRecord, col string) *float64 {
	f, ok := parseFloat(cleanString(rec, col))
	if !ok {
		return nil
	}
	return &f
}

// streakDays probes the aliased streak columns in order and returns the
// first coercible value, or nil. Values below one day are noise.
func streakDays(rec domain.RawRecord) *int {
	for _, col := range domain.StreakDayColumns {
		if _, ok := rec[col]; !ok {
			continue
		}
		n, ok := parseInt(cleanString(rec, col))
		if !ok || n < 1 {
			return nil
		}
		return &n
	}
	return nil
}

// parsePack splits a pack-size cell like "4", "12ct", or "8 pack" into a
// count and unit. The unit defaults to "ct" when only a number is given.
func parsePack(cell string) (*int, *string) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}

	digits := cell
	for i, r := range cell {
		if !unicode.IsDigit(r) && r != '.' {
			digits = cell[:i]
			break
		}
	}
	if digits == cell {
		n, ok := parseInt(digits)
		if !ok {
			return nil, nil
		}
		unit := "ct"
		return &n, &unit
	}

	n, ok := parseInt(digits)
	if !ok {
		return nil, nil
	}
	unit := strings.ToLower(strings.TrimSpace(cell[len(digits):]))
	if unit == "" {
		unit = "ct"
	}
	return &n, &unit
}
