package handler

import (
	"strconv"
	"time"
)

// parsePositiveInt parses a query parameter expected to be >= 1
func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// parseNonNegativeInt parses a query parameter expected to be >= 0
func parseNonNegativeInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// parseDate parses a "2006-01-02" date field
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
