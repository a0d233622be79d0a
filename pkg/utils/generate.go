package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// GenerateReservationCode creates a human-readable reservation code.
// Format: RSV-YYYYMMDD-HHMMSS-RANDOM. The random part carries 32 bits so
// codes minted within the same second do not collide in practice.
func GenerateReservationCode() string {
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%08X", rand.Uint32())

	return fmt.Sprintf("RSV-%s-%s-%s", datePart, timePart, randomPart)
}
