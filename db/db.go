package db

import (
	"database/sql"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/in4matic/wallet-api/models"
)

type Storage struct {
	DB *sql.DB
}

// NewStorage opens the connection pool and bootstraps the schema.
func NewStorage(connStr string) (*Storage, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			refresh_token TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			amount DOUBLE PRECISION NOT NULL,
			category TEXT NOT NULL,
			date TEXT NOT NULL,
			is_income BOOLEAN NOT NULL DEFAULT FALSE,
			comment TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS blacklisted_tokens (
			token TEXT PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return nil, err
		}
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() {
	s.DB.Close()
}

// CreateUser hashes the password and inserts a new user.
func (s *Storage) CreateUser(name, email, password string) (*models.User, error) {
	if len(password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: name, Email: email, Password: string(hash)}
	err = s.DB.QueryRow(
		"INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id",
		name, email, string(hash),
	).Scan(&user.ID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail returns the user with the given email, or nil when absent.
func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	err := s.DB.QueryRow(
		"SELECT id, name, email, password, refresh_token FROM users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.RefreshToken)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByID returns the user with the given id, or nil when absent.
func (s *Storage) GetUserByID(id int) (*models.User, error) {
	var u models.User
	err := s.DB.QueryRow(
		"SELECT id, name, email, password, refresh_token FROM users WHERE id = $1",
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.RefreshToken)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateRefreshToken stores the user's current refresh token so the refresh
// flow can reject rotated-out tokens.
func (s *Storage) UpdateRefreshToken(userID int, refreshToken string) error {
	_, err := s.DB.Exec("UPDATE users SET refresh_token = $1 WHERE id = $2", refreshToken, userID)
	return err
}

// BlacklistToken records a revoked token. Rows older than ttl are purged on
// the way in, which keeps the table bounded without a background job.
func (s *Storage) BlacklistToken(tok string, ttl time.Duration) error {
	if _, err := s.DB.Exec("DELETE FROM blacklisted_tokens WHERE created_at <= $1", time.Now().Add(-ttl)); err != nil {
		return err
	}
	_, err := s.DB.Exec("INSERT INTO blacklisted_tokens (token) VALUES ($1) ON CONFLICT DO NOTHING", tok)
	return err
}

// IsTokenBlacklisted reports whether tok was revoked within the last ttl.
// Older rows count as expired even if the purge has not caught them yet.
func (s *Storage) IsTokenBlacklisted(tok string, ttl time.Duration) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM blacklisted_tokens WHERE token = $1 AND created_at > $2)",
		tok, time.Now().Add(-ttl),
	).Scan(&exists)
	return exists, err
}
