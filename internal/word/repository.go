// Package word provides vocabulary item storage and lookup.
package word

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tobue/vocapace/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/word/mock_repository.go -package=mock_word

// Repository defines operations for resolving and importing words.
type Repository interface {
	FindByOriginalWords(ctx context.Context, originalWords []string) (map[string]Word, error)
	BatchCreate(ctx context.Context, originalWords []string) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindByOriginalWords returns the words matching the given surface forms,
// keyed by surface form. Unknown words are simply absent from the map, so
// resolving the same word twice always yields the same row.
func (r *DBRepository) FindByOriginalWords(ctx context.Context, originalWords []string) (map[string]Word, error) {
	result := make(map[string]Word, len(originalWords))
	if len(originalWords) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In("SELECT * FROM words WHERE original_word IN (?)", originalWords)
	if err != nil {
		return nil, fmt.Errorf("build word lookup query: %w", err)
	}

	var words []Word
	if err := r.db.SelectContext(ctx, &words, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}

	for _, w := range words {
		result[w.OriginalWord] = w
	}
	return result, nil
}

// BatchCreate inserts new words in a single transaction using a multi-row
// INSERT. Existing surface forms are left untouched.
func (r *DBRepository) BatchCreate(ctx context.Context, originalWords []string) error {
	if len(originalWords) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		query := database.BuildMultiRowInsert("words", []string{"original_word"}, len(originalWords))
		query += " ON DUPLICATE KEY UPDATE original_word = original_word"

		args := make([]interface{}, 0, len(originalWords))
		for _, w := range originalWords {
			args = append(args, w)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert words: %w", err)
		}
		return nil
	})
}
