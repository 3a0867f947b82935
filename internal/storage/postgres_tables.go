package storage

import (
	"database/sql"
	"time"

	"restman/internal/domain"
)

type TableRepo struct {
	db *sql.DB
}

func NewTableRepo(db *sql.DB) *TableRepo {
	return &TableRepo{db: db}
}

func (r *TableRepo) List() ([]domain.Table, error) {
	rows, err := r.db.Query(`SELECT id, table_number, capacity, status FROM tables ORDER BY table_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.TableNumber, &t.Capacity, &t.Status); err != nil {
			continue
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *TableRepo) Get(id int) (*domain.Table, error) {
	var t domain.Table
	err := r.db.QueryRow(`SELECT id, table_number, capacity, status FROM tables WHERE id = $1`, id).
		Scan(&t.ID, &t.TableNumber, &t.Capacity, &t.Status)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Available returns tables with enough capacity that have no assignment
// overlapping the window. Two windows overlap when start1 < end2 and
// end1 > start2.
func (r *TableRepo) Available(start, end time.Time, guests int) ([]domain.Table, error) {
	rows, err := r.db.Query(`
		SELECT id, table_number, capacity, status
		FROM tables
		WHERE capacity >= $1
		  AND id NOT IN (
			SELECT bt.table_id
			FROM booking_tables bt
			JOIN bookings b ON bt.booking_id = b.id
			WHERE bt.start_time < $2 AND bt.end_time > $3
			  AND b.status IN ('PENDING', 'CONFIRMED')
		  )
		ORDER BY table_number`, guests, end, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.TableNumber, &t.Capacity, &t.Status); err != nil {
			continue
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *TableRepo) UpdateStatus(id int, status domain.TableStatus) (*domain.Table, error) {
	var t domain.Table
	err := r.db.QueryRow(`
		UPDATE tables SET status = $1 WHERE id = $2
		RETURNING id, table_number, capacity, status`, status, id).
		Scan(&t.ID, &t.TableNumber, &t.Capacity, &t.Status)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepo) QRCode(id int) ([]byte, error) {
	var png []byte
	err := r.db.QueryRow(`SELECT qr_code FROM tables WHERE id = $1`, id).Scan(&png)
	if err != nil {
		return nil, err
	}
	return png, nil
}

func (r *TableRepo) SaveQRCode(id int, png []byte) error {
	_, err := r.db.Exec(`UPDATE tables SET qr_code = $1 WHERE id = $2`, png, id)
	return err
}
