package storage

import (
	"database/sql"

	"restman/internal/domain"
)

type ReviewRepo struct {
	db *sql.DB
}

func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) Insert(review *domain.Review) error {
	return r.db.QueryRow(`
		INSERT INTO reviews (user_id, dish_id, rating, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		review.UserID, review.DishID, review.Rating, review.Content).
		Scan(&review.ID, &review.CreatedAt)
}

func (r *ReviewRepo) Get(id int) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.QueryRow(`
		SELECT r.id, r.user_id, u.username, r.dish_id, r.rating, COALESCE(r.content, ''), r.created_at
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.id = $1`, id).
		Scan(&rv.ID, &rv.UserID, &rv.Username, &rv.DishID, &rv.Rating, &rv.Content, &rv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepo) Update(id int, rating int, content string) (*domain.Review, error) {
	if _, err := r.db.Exec(`UPDATE reviews SET rating = $1, content = $2 WHERE id = $3`,
		rating, content, id); err != nil {
		return nil, err
	}
	return r.Get(id)
}

func (r *ReviewRepo) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ReviewRepo) ListForDish(dishID int) ([]domain.Review, error) {
	rows, err := r.db.Query(`
		SELECT r.id, r.user_id, u.username, r.dish_id, r.rating, COALESCE(r.content, ''), r.created_at
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.dish_id = $1
		ORDER BY r.created_at DESC`, dishID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.Username, &rv.DishID, &rv.Rating, &rv.Content, &rv.CreatedAt); err != nil {
			continue
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range reviews {
		if err := r.loadReplies(&reviews[i]); err != nil {
			return nil, err
		}
	}
	return reviews, nil
}

func (r *ReviewRepo) InsertReply(reply *domain.ReviewReply) error {
	return r.db.QueryRow(`
		INSERT INTO review_replies (review_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		reply.ReviewID, reply.UserID, reply.Content).
		Scan(&reply.ID, &reply.CreatedAt)
}

func (r *ReviewRepo) loadReplies(rv *domain.Review) error {
	rows, err := r.db.Query(`
		SELECT id, review_id, user_id, content, created_at
		FROM review_replies WHERE review_id = $1 ORDER BY created_at`, rv.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var reply domain.ReviewReply
		if err := rows.Scan(&reply.ID, &reply.ReviewID, &reply.UserID, &reply.Content, &reply.CreatedAt); err != nil {
			continue
		}
		rv.Replies = append(rv.Replies, reply)
	}
	return rows.Err()
}
