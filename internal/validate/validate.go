// Package validate holds the pure input checks the gateway runs before any
// remote call. The rules are transport-independent and deliberately match
// the catalog contract's boundary behavior, including its relaxations.
package validate

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"librarygateway/internal/models"
)

// IsPositiveInt reports whether v converts to an integer greater than zero,
// returning the converted value. JSON clients send ids both as numbers and
// as numeric strings, so both are accepted.
func IsPositiveInt(v any) (int64, bool) {
	var n int64
	switch t := v.(type) {
	case int:
		n = int64(t)
	case int64:
		n = t
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		n = int64(t)
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return 0, false
		}
		n = i
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, false
		}
		n = i
	default:
		return 0, false
	}
	if n <= 0 {
		return 0, false
	}
	return n, true
}

// NonNegativeInt converts v to an int, defaulting to 0 when v is absent,
// unparseable, or negative. Used to normalize published_year and
// copies_total on book creation.
func NonNegativeInt(v any) int {
	n, ok := IsPositiveInt(v)
	if !ok {
		return 0
	}
	return int(n)
}

// ParseCalendarDate parses a YYYY-MM-DD string into a CalendarDate.
//
// It accepts exactly three numeric "-"-separated segments with month in
// [1,12] and day in [1,31]. Day-of-month length is intentionally not
// checked against the month ("2025-02-30" parses); tightening this would
// change observable boundary behavior.
func ParseCalendarDate(s string) (models.CalendarDate, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return models.CalendarDate{}, false
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n == 0 {
			return models.CalendarDate{}, false
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return models.CalendarDate{}, false
	}

	return models.CalendarDate{Year: year, Month: month, Day: day}, true
}

// RequiredString reports whether s is non-empty after trimming whitespace.
func RequiredString(s string) bool {
	return strings.TrimSpace(s) != ""
}
