package storage

import (
	"database/sql"
	"fmt"

	"restman/internal/domain"
)

type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) Insert(booking *domain.Booking) error {
	return r.db.QueryRow(`
		INSERT INTO bookings (user_id, requested_time, party_size, note, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		booking.UserID, booking.RequestedTime, booking.PartySize, booking.Note, booking.Status).
		Scan(&booking.ID, &booking.CreatedAt)
}

func (r *BookingRepo) Get(id int) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.QueryRow(`
		SELECT id, user_id, requested_time, party_size, COALESCE(note, ''), status, created_at
		FROM bookings WHERE id = $1`, id).
		Scan(&b.ID, &b.UserID, &b.RequestedTime, &b.PartySize, &b.Note, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := r.loadAssignments(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) ListAll() ([]domain.Booking, error) {
	return r.list(`
		SELECT id, user_id, requested_time, party_size, COALESCE(note, ''), status, created_at
		FROM bookings ORDER BY requested_time DESC`)
}

func (r *BookingRepo) ListForUser(userID int) ([]domain.Booking, error) {
	return r.list(`
		SELECT id, user_id, requested_time, party_size, COALESCE(note, ''), status, created_at
		FROM bookings WHERE user_id = $1 ORDER BY requested_time DESC`, userID)
}

func (r *BookingRepo) list(query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.RequestedTime, &b.PartySize, &b.Note, &b.Status, &b.CreatedAt); err != nil {
			continue
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range bookings {
		if err := r.loadAssignments(&bookings[i]); err != nil {
			return nil, err
		}
	}
	return bookings, nil
}

func (r *BookingRepo) UpdateStatus(id int, status domain.BookingStatus) (*domain.Booking, error) {
	result, err := r.db.Exec(`UPDATE bookings SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return nil, err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, sql.ErrNoRows
	}
	return r.Get(id)
}

// ReplaceAssignments clears any previous assignments, writes the new ones
// and sets the status in one transaction.
func (r *BookingRepo) ReplaceAssignments(id int, tables []domain.TableAssignment, status domain.BookingStatus) (*domain.Booking, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM booking_tables WHERE booking_id = $1`, id); err != nil {
		return nil, err
	}
	for _, t := range tables {
		if _, err := tx.Exec(`
			INSERT INTO booking_tables (booking_id, table_id, start_time, end_time, note)
			VALUES ($1, $2, $3, $4, $5)`,
			id, t.TableID, t.StartTime, t.EndTime, t.Note); err != nil {
			return nil, err
		}
	}
	if _, err := tx.Exec(`UPDATE bookings SET status = $1 WHERE id = $2`, status, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return r.Get(id)
}

// loadAssignments preserves insertion order from the server.
func (r *BookingRepo) loadAssignments(b *domain.Booking) error {
	rows, err := r.db.Query(`
		SELECT table_id, start_time, end_time, COALESCE(note, '')
		FROM booking_tables WHERE booking_id = $1 ORDER BY id`, b.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	b.Tables = []domain.TableAssignment{}
	for rows.Next() {
		var a domain.TableAssignment
		if err := rows.Scan(&a.TableID, &a.StartTime, &a.EndTime, &a.Note); err != nil {
			continue
		}
		b.Tables = append(b.Tables, a)
	}
	return rows.Err()
}
