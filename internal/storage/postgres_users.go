package storage

import (
	"database/sql"

	"restman/internal/domain"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) GetByID(id int) (*domain.User, error) {
	return r.scanOne(r.db.QueryRow(`
		SELECT id, username, password, first_name, last_name, email, role, created_at
		FROM users WHERE id = $1`, id))
}

func (r *UserRepo) GetByUsername(username string) (*domain.User, error) {
	return r.scanOne(r.db.QueryRow(`
		SELECT id, username, password, first_name, last_name, email, role, created_at
		FROM users WHERE username = $1`, username))
}

func (r *UserRepo) Insert(user *domain.User) error {
	return r.db.QueryRow(`
		INSERT INTO users (username, password, first_name, last_name, email, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		user.Username, user.Password, user.FirstName, user.LastName, user.Email, user.Role).
		Scan(&user.ID, &user.CreatedAt)
}

func (r *UserRepo) Update(user *domain.User) error {
	_, err := r.db.Exec(`
		UPDATE users SET password=$1, first_name=$2, last_name=$3, email=$4
		WHERE id=$5`,
		user.Password, user.FirstName, user.LastName, user.Email, user.ID)
	return err
}

func (r *UserRepo) scanOne(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.FirstName, &u.LastName, &u.Email, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
