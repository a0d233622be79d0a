package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestReservationOverlaps(t *testing.T) {
	reservation := &Reservation{
		CheckIn:  date("2024-07-01"),
		CheckOut: date("2024-07-05"),
	}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"identical range", "2024-07-01", "2024-07-05", true},
		{"starts inside", "2024-07-04", "2024-07-06", true},
		{"ends inside", "2024-06-28", "2024-07-02", true},
		{"fully contains", "2024-06-30", "2024-07-06", true},
		{"fully contained", "2024-07-02", "2024-07-04", true},
		{"single night inside", "2024-07-03", "2024-07-04", true},
		{"starts on existing check-out", "2024-07-05", "2024-07-07", false},
		{"ends on existing check-in", "2024-06-28", "2024-07-01", false},
		{"entirely before", "2024-06-01", "2024-06-10", false},
		{"entirely after", "2024-08-01", "2024-08-05", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reservation.Overlaps(date(tt.checkIn), date(tt.checkOut))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReservationNights(t *testing.T) {
	tests := []struct {
		checkIn  string
		checkOut string
		want     int
	}{
		{"2024-07-01", "2024-07-02", 1},
		{"2024-07-01", "2024-07-04", 3},
		{"2024-07-10", "2024-07-15", 5},
		{"2024-12-30", "2025-01-02", 3},
	}

	for _, tt := range tests {
		reservation := &Reservation{CheckIn: date(tt.checkIn), CheckOut: date(tt.checkOut)}
		assert.Equal(t, tt.want, reservation.Nights())
	}
}

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{ReservationStatusPending, ReservationStatusConfirmed, true},
		{ReservationStatusPending, ReservationStatusCancelled, true},
		{ReservationStatusPending, ReservationStatusCheckedIn, false},
		{ReservationStatusPending, ReservationStatusCheckedOut, false},
		{ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{ReservationStatusConfirmed, ReservationStatusCheckedIn, true},
		{ReservationStatusConfirmed, ReservationStatusConfirmed, false},
		{ReservationStatusCheckedIn, ReservationStatusCheckedOut, true},
		{ReservationStatusCheckedIn, ReservationStatusCancelled, false},
		{ReservationStatusCancelled, ReservationStatusConfirmed, false},
		{ReservationStatusCancelled, ReservationStatusCheckedIn, false},
		{ReservationStatusCheckedOut, ReservationStatusCheckedIn, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestStatusActive(t *testing.T) {
	assert.True(t, ReservationStatusPending.Active())
	assert.True(t, ReservationStatusConfirmed.Active())
	assert.False(t, ReservationStatusCancelled.Active())
	assert.False(t, ReservationStatusCheckedIn.Active())
	assert.False(t, ReservationStatusCheckedOut.Active())
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, ReservationStatusCancelled.Terminal())
	assert.True(t, ReservationStatusCheckedOut.Terminal())
	assert.False(t, ReservationStatusPending.Terminal())
	assert.False(t, ReservationStatusConfirmed.Terminal())
	assert.False(t, ReservationStatusCheckedIn.Terminal())
}
