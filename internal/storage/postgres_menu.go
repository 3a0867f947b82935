package storage

import (
	"database/sql"
	"fmt"
	"strconv"

	"restman/internal/domain"
	"restman/internal/service"
)

type MenuRepo struct {
	db *sql.DB
}

func NewMenuRepo(db *sql.DB) *MenuRepo {
	return &MenuRepo{db: db}
}

func (r *MenuRepo) ListCategories() ([]domain.Category, error) {
	rows, err := r.db.Query(`SELECT id, name, COALESCE(description, '') FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			continue
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *MenuRepo) ListDishes(params service.DishQuery) ([]domain.Dish, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	n := 0

	if params.CategoryID > 0 {
		n++
		where += " AND category_id = $" + strconv.Itoa(n)
		args = append(args, params.CategoryID)
	}
	if params.Query != "" {
		n++
		where += " AND name ILIKE $" + strconv.Itoa(n)
		args = append(args, "%"+params.Query+"%")
	}

	var total int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM dishes "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.PageSize
	query := fmt.Sprintf(`
		SELECT id, COALESCE(category_id, 0), name, COALESCE(description, ''), price,
		       COALESCE(image_url, ''), COALESCE(avg_rating, 0), COALESCE(review_count, 0), created_at
		FROM dishes %s
		ORDER BY id DESC
		LIMIT $%d OFFSET $%d`, where, n+1, n+2)
	args = append(args, params.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		var d domain.Dish
		if err := rows.Scan(&d.ID, &d.CategoryID, &d.Name, &d.Description, &d.Price,
			&d.ImageURL, &d.AvgRating, &d.ReviewCount, &d.CreatedAt); err != nil {
			continue
		}
		dishes = append(dishes, d)
	}
	return dishes, total, rows.Err()
}

func (r *MenuRepo) GetDish(id int) (*domain.Dish, error) {
	var d domain.Dish
	err := r.db.QueryRow(`
		SELECT id, COALESCE(category_id, 0), name, COALESCE(description, ''), price,
		       COALESCE(image_url, ''), COALESCE(avg_rating, 0), COALESCE(review_count, 0), created_at
		FROM dishes WHERE id = $1`, id).
		Scan(&d.ID, &d.CategoryID, &d.Name, &d.Description, &d.Price,
			&d.ImageURL, &d.AvgRating, &d.ReviewCount, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
