package database

import (
	"context"
	"fmt"
)

// migrations run at startup, in order. Statements must be idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS guests (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT,
		email TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id UUID PRIMARY KEY,
		room_number TEXT NOT NULL UNIQUE,
		room_type TEXT NOT NULL,
		price_per_night NUMERIC(10,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'available',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'staff',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		token UUID NOT NULL UNIQUE,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id UUID PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		guest_id UUID NOT NULL REFERENCES guests(id),
		room_id UUID NOT NULL REFERENCES rooms(id),
		user_id UUID REFERENCES users(id),
		check_in DATE NOT NULL,
		check_out DATE NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (check_out > check_in)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_room_status
		ON reservations (room_id, status)`,
	`CREATE TABLE IF NOT EXISTS bills (
		id UUID PRIMARY KEY,
		reservation_id UUID NOT NULL UNIQUE REFERENCES reservations(id) ON DELETE CASCADE,
		number_of_nights INT NOT NULL,
		room_charge NUMERIC(10,2) NOT NULL,
		extra_charges_total NUMERIC(10,2) NOT NULL DEFAULT 0.00,
		total_amount NUMERIC(10,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS extra_charges (
		id UUID PRIMARY KEY,
		bill_id UUID NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
		item_name TEXT NOT NULL,
		unit_price NUMERIC(10,2) NOT NULL,
		quantity INT NOT NULL,
		subtotal NUMERIC(10,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		bill_id UUID NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
		method TEXT NOT NULL,
		amount NUMERIC(10,2) NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY,
		reservation_id UUID NOT NULL REFERENCES reservations(id) ON DELETE CASCADE,
		recipient TEXT NOT NULL,
		status TEXT NOT NULL,
		sent_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate applies the schema. Safe to run on every startup.
func Migrate(ctx context.Context, db PgxIface) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
