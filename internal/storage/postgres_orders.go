package storage

import (
	"database/sql"
	"fmt"

	"restman/internal/domain"
)

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Insert(order *domain.Order) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO orders (origin, user_id, table_id, payment_method, status, total_amount, note)
		VALUES ($1, NULLIF($2, 0), NULLIF($3, 0), $4, $5, $6, $7)
		RETURNING id, created_at`,
		order.Origin, order.UserID, order.TableID, order.PaymentMethod,
		order.Status, order.TotalAmount, order.Note).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for _, line := range order.Lines {
		if _, err := tx.Exec(`
			INSERT INTO order_lines (order_id, dish_id, unit_price, quantity)
			VALUES ($1, $2, $3, $4)`,
			order.ID, line.DishID, line.UnitPrice, line.Quantity); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *OrderRepo) Get(id int) (*domain.Order, error) {
	var o domain.Order
	var userID, tableID sql.NullInt64
	err := r.db.QueryRow(`
		SELECT id, origin, user_id, table_id, COALESCE(payment_method, ''), status,
		       total_amount, COALESCE(note, ''), created_at
		FROM orders WHERE id = $1`, id).
		Scan(&o.ID, &o.Origin, &userID, &tableID, &o.PaymentMethod, &o.Status,
			&o.TotalAmount, &o.Note, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	o.UserID = int(userID.Int64)
	o.TableID = int(tableID.Int64)

	if err := r.loadLines(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) ListAll() ([]domain.Order, error) {
	return r.list(`
		SELECT id, origin, user_id, table_id, COALESCE(payment_method, ''), status,
		       total_amount, COALESCE(note, ''), created_at
		FROM orders ORDER BY created_at DESC`)
}

func (r *OrderRepo) ListForUser(userID int) ([]domain.Order, error) {
	return r.list(`
		SELECT id, origin, user_id, table_id, COALESCE(payment_method, ''), status,
		       total_amount, COALESCE(note, ''), created_at
		FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *OrderRepo) list(query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		var userID, tableID sql.NullInt64
		if err := rows.Scan(&o.ID, &o.Origin, &userID, &tableID, &o.PaymentMethod, &o.Status,
			&o.TotalAmount, &o.Note, &o.CreatedAt); err != nil {
			continue
		}
		o.UserID = int(userID.Int64)
		o.TableID = int(tableID.Int64)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := r.loadLines(&orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *OrderRepo) Update(id int, status domain.OrderStatus, method domain.PaymentMethod) (*domain.Order, error) {
	result, err := r.db.Exec(`UPDATE orders SET status = $1, payment_method = $2 WHERE id = $3`,
		status, method, id)
	if err != nil {
		return nil, err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, sql.ErrNoRows
	}
	return r.Get(id)
}

func (r *OrderRepo) loadLines(o *domain.Order) error {
	rows, err := r.db.Query(`
		SELECT ol.dish_id, d.name, ol.unit_price, ol.quantity
		FROM order_lines ol
		JOIN dishes d ON ol.dish_id = d.id
		WHERE ol.order_id = $1
		ORDER BY ol.id`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	o.Lines = []domain.OrderLine{}
	for rows.Next() {
		var l domain.OrderLine
		if err := rows.Scan(&l.DishID, &l.DishName, &l.UnitPrice, &l.Quantity); err != nil {
			continue
		}
		o.Lines = append(o.Lines, l)
	}
	return rows.Err()
}
