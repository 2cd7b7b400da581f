// Package strutil provides small string conversion helpers used by the
// REST handlers when reading query parameters.
package strutil

import "strconv"

// ConvertToInt converts a string to int, returning 0 when it cannot be parsed.
func ConvertToInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
