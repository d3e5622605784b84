// Package learner provides learner account lookup for request authentication.
// Account creation and token issuance belong to the identity service; this
// package only resolves API tokens to learners.
package learner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/learner/mock_repository.go -package=mock_learner

// ErrNotFound is returned when no learner matches the given token.
var ErrNotFound = errors.New("learner: not found")

// Learner is a registered user of the learning platform.
type Learner struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	APIToken  string    `db:"api_token"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Repository defines learner lookup operations.
type Repository interface {
	FindByAPIToken(ctx context.Context, token string) (*Learner, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindByAPIToken returns the learner owning the given API token.
// Returns ErrNotFound if the token is unknown.
func (r *DBRepository) FindByAPIToken(ctx context.Context, token string) (*Learner, error) {
	var l Learner
	if err := r.db.GetContext(ctx, &l, "SELECT * FROM learners WHERE api_token = ?", token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load learner by token: %w", err)
	}
	return &l, nil
}
