package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/agora-dev/agora/internal/domain"
	internal_errors "github.com/agora-dev/agora/internal/errors"
)

// uniqueViolation is the postgres error code raised when an insert hits the
// users_username_key constraint.
const uniqueViolation = "23505"

// SaveUser persists a new user record with a fresh opaque id. A concurrent
// registration of the same username loses on the unique constraint and is
// reported as a duplicate, same as the pre-insert existence check.
func (s *Storage) SaveUser(username domain.Username, passHash string) (domain.User, error) {
	user := domain.User{
		Id:        uuid.NewString(),
		Username:  username,
		PassHash:  passHash,
		CreatedAt: time.Now().UTC().Round(time.Microsecond), // database anyway rounds to microsecond
		IsActive:  true,
	}

	_, err := s.db.Exec(
		"INSERT INTO users(id, username, password_hash, created_at, is_active) VALUES($1, $2, $3, $4, $5)",
		user.Id, user.Username, user.PassHash, user.CreatedAt, user.IsActive,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.User{}, internal_errors.DuplicateUsername()
		}
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

// User fetches a user by exact, case-sensitive username match.
func (s *Storage) User(username domain.Username) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(
		"SELECT id, username, password_hash, created_at, is_active FROM users WHERE username = $1",
		username,
	).Scan(&user.Id, &user.Username, &user.PassHash, &user.CreatedAt, &user.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
