package storage

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables the repositories expect. Statements are
// idempotent so startup is safe against an already-provisioned database.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(150) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(150) DEFAULT '',
			last_name VARCHAR(150) DEFAULT '',
			email VARCHAR(255) DEFAULT '',
			role VARCHAR(10) NOT NULL DEFAULT 'CUSTOMER',
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) UNIQUE NOT NULL,
			description TEXT DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			category_id INTEGER REFERENCES categories(id) ON DELETE SET NULL,
			name VARCHAR(255) NOT NULL,
			description TEXT DEFAULT '',
			price BIGINT NOT NULL CHECK (price >= 0),
			image_url TEXT DEFAULT '',
			avg_rating NUMERIC(3,2) DEFAULT 0,
			review_count INTEGER DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS tables (
			id SERIAL PRIMARY KEY,
			table_number VARCHAR(10) UNIQUE NOT NULL,
			capacity INTEGER NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'AVAILABLE',
			qr_code BYTEA
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			requested_time TIMESTAMPTZ NOT NULL,
			party_size INTEGER NOT NULL,
			note TEXT DEFAULT '',
			status VARCHAR(10) NOT NULL DEFAULT 'PENDING',
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS booking_tables (
			id SERIAL PRIMARY KEY,
			booking_id INTEGER NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
			table_id INTEGER NOT NULL REFERENCES tables(id) ON DELETE CASCADE,
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ NOT NULL,
			note TEXT DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			origin VARCHAR(10) NOT NULL,
			user_id INTEGER REFERENCES users(id) ON DELETE SET NULL,
			table_id INTEGER REFERENCES tables(id) ON DELETE SET NULL,
			payment_method VARCHAR(10) DEFAULT '',
			status VARCHAR(10) NOT NULL DEFAULT 'PENDING',
			total_amount BIGINT NOT NULL DEFAULT 0,
			note TEXT DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_lines (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			dish_id INTEGER NOT NULL REFERENCES dishes(id),
			unit_price BIGINT NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			UNIQUE (order_id, dish_id)
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			dish_id INTEGER NOT NULL REFERENCES dishes(id) ON DELETE CASCADE,
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			content TEXT DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT NOW(),
			UNIQUE (user_id, dish_id)
		)`,
		`CREATE TABLE IF NOT EXISTS review_replies (
			id SERIAL PRIMARY KEY,
			review_id INTEGER NOT NULL REFERENCES reviews(id) ON DELETE CASCADE,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
