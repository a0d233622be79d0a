package utils

import (
	"math"
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseDate parses a calendar date (no time component) in UTC.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

// RoundMoney rounds to 2 fraction digits. Monetary columns are NUMERIC(10,2);
// all amounts pass through here before being persisted.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
