package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.1 + 0.2, 0.3},
		{3 * 100.10, 300.3},
		{1.23456, 1.23},
		{1.238, 1.24},
		{99.999, 100.0},
		{0, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundMoney(tt.in), 1e-9)
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-07-01")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("01-07-2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-13-40")
	assert.Error(t, err)
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
}

func TestGenerateReservationCode(t *testing.T) {
	code := GenerateReservationCode()
	assert.Regexp(t, `^RSV-\d{8}-\d{6}-[0-9A-F]{8}$`, code)
}

func TestGenerateReservationCodeUniqueWithinSecond(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code := GenerateReservationCode()
		_, dup := seen[code]
		assert.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}
