package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/langmatch/langmatchserver/models"
)

const bcryptCost = 12

// CreateUser hashes the password and inserts the account.
func CreateUser(name, email, password, role string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}

	const q = `
		INSERT INTO users (id, name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := DB.ExecContext(ctx, q,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}

	return user, nil
}

// GetUserByEmail returns ErrNotFound when no account matches.
func GetUserByEmail(email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	var user models.User
	var lastLogin sql.NullTime

	const q = `
		SELECT id, name, email, password_hash, role, created_at, last_login
		FROM users
		WHERE email = $1`
	if err := DB.QueryRowContext(ctx, q, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.CreatedAt, &lastLogin,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	user.LastLogin = nullTimeToPointer(lastLogin)
	return &user, nil
}

// GetUserByID returns ErrNotFound when no account matches.
func GetUserByID(id uuid.UUID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	var user models.User
	var lastLogin sql.NullTime

	const q = `
		SELECT id, name, email, password_hash, role, created_at, last_login
		FROM users
		WHERE id = $1`
	if err := DB.QueryRowContext(ctx, q, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.CreatedAt, &lastLogin,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	user.LastLogin = nullTimeToPointer(lastLogin)
	return &user, nil
}

// TouchLastLogin stamps a successful login.
func TouchLastLogin(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbQueryTimeout)
	defer cancel()

	if _, err := DB.ExecContext(ctx,
		"UPDATE users SET last_login = $1 WHERE id = $2", time.Now(), id,
	); err != nil {
		return fmt.Errorf("TouchLastLogin: %w", err)
	}
	return nil
}

// VerifyPassword compares a candidate password against the stored hash.
func VerifyPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
