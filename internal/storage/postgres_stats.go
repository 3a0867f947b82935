package storage

import (
	"database/sql"
	"strconv"

	"restman/internal/domain"
)

type StatsRepo struct {
	db *sql.DB
}

func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// MonthlyRevenue sums settled orders per month for the year. Totals are
// integer minor units straight from storage; no float arithmetic.
func (r *StatsRepo) MonthlyRevenue(year int) ([]domain.MonthRevenue, error) {
	rows, err := r.db.Query(`
		SELECT TO_CHAR(created_at, 'YYYY-MM') AS month, SUM(total_amount)
		FROM orders
		WHERE status IN ('PAID', 'COMPLETED')
		  AND EXTRACT(YEAR FROM created_at) = $1
		GROUP BY month
		ORDER BY month`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.MonthRevenue{}
	for rows.Next() {
		var m domain.MonthRevenue
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			continue
		}
		stats = append(stats, m)
	}
	return stats, rows.Err()
}

func (r *StatsRepo) DishPopularity(limit int) ([]domain.DishCount, error) {
	rows, err := r.db.Query(`
		SELECT d.id, d.name, COALESCE(SUM(ol.quantity), 0) AS order_count
		FROM dishes d
		JOIN order_lines ol ON d.id = ol.dish_id
		JOIN orders o ON ol.order_id = o.id
		WHERE o.status <> 'CANCELLED'
		GROUP BY d.id, d.name
		ORDER BY order_count DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []domain.DishCount{}
	for rows.Next() {
		var c domain.DishCount
		if err := rows.Scan(&c.DishID, &c.Name, &c.OrderCount); err != nil {
			continue
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *StatsRepo) RatingDistribution() (map[string]int, error) {
	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}

	rows, err := r.db.Query(`
		SELECT rating, COUNT(*) FROM reviews GROUP BY rating ORDER BY rating`)
	if err != nil {
		if err == sql.ErrNoRows {
			return distribution, nil
		}
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			continue
		}
		distribution[strconv.Itoa(rating)] = count
	}
	return distribution, rows.Err()
}
