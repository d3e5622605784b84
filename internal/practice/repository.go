// Package practice provides per-learner vocabulary practice state and the
// batch review orchestration on top of the scheduler.
package practice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/jmoiron/sqlx"

	"github.com/tobue/vocapace/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/practice/mock_repository.go -package=mock_practice

// DueWord is a practice record joined with its word, for review listings.
type DueWord struct {
	VocabPractice
	OriginalWord string `db:"original_word"`
}

// Repository defines operations for managing vocab practice records.
type Repository interface {
	// ReviewUpdate atomically loads the record for (learnerID, wordID),
	// applies update, and persists the result. update receives nil when no
	// record exists yet and returns the record to write, or an error to
	// abort without writing. The returned record is the persisted one.
	ReviewUpdate(ctx context.Context, learnerID, wordID int64, update func(existing *VocabPractice) (*VocabPractice, error)) (*VocabPractice, error)

	GetForWords(ctx context.Context, learnerID int64, wordIDs []int64) (map[int64]VocabPractice, error)
	FindDue(ctx context.Context, learnerID int64, now time.Time, limit int) ([]DueWord, error)
	CountByState(ctx context.Context, learnerID int64) (map[string]int, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// ReviewUpdate runs the load-modify-store cycle for one (learner, word) pair
// in a transaction, locking the row so concurrent reviews of the same pair
// cannot lose updates. Deadlocks are retried a few times before giving up.
func (r *DBRepository) ReviewUpdate(
	ctx context.Context,
	learnerID, wordID int64,
	update func(existing *VocabPractice) (*VocabPractice, error),
) (*VocabPractice, error) {
	var result *VocabPractice

	err := retry.Do(
		func() error {
			return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
				var existing VocabPractice
				var current *VocabPractice
				err := tx.GetContext(ctx, &existing,
					"SELECT * FROM vocab_practices WHERE learner_id = ? AND word_id = ? FOR UPDATE",
					learnerID, wordID,
				)
				switch {
				case err == nil:
					current = &existing
				case errors.Is(err, sql.ErrNoRows):
					current = nil
				default:
					return fmt.Errorf("load practice for update: %w", err)
				}

				updated, err := update(current)
				if err != nil {
					return err
				}
				updated.LearnerID = learnerID
				updated.WordID = wordID

				if err := upsertTx(ctx, tx, updated); err != nil {
					return err
				}
				result = updated
				return nil
			})
		},
		retry.Attempts(3),
		retry.RetryIf(database.IsDeadlock),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// upsertTx writes the full record in one statement: every scheduling field
// is part of the same write, so a race can only ever replace a complete
// state with another complete state.
func upsertTx(ctx context.Context, tx *sqlx.Tx, p *VocabPractice) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO vocab_practices
			(learner_id, word_id, state, step, stability, difficulty, due, last_review, is_blacklisted, is_favorite)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			state = VALUES(state),
			step = VALUES(step),
			stability = VALUES(stability),
			difficulty = VALUES(difficulty),
			due = VALUES(due),
			last_review = VALUES(last_review),
			is_blacklisted = VALUES(is_blacklisted),
			is_favorite = VALUES(is_favorite)`,
		p.LearnerID, p.WordID, p.State, p.Step, p.Stability, p.Difficulty,
		p.Due, p.LastReview, p.IsBlacklisted, p.IsFavorite,
	)
	if err != nil {
		return fmt.Errorf("upsert practice: %w", err)
	}
	return nil
}

// GetForWords returns the learner's practice records for the given words,
// keyed by word ID. Words never practiced are absent.
func (r *DBRepository) GetForWords(ctx context.Context, learnerID int64, wordIDs []int64) (map[int64]VocabPractice, error) {
	result := make(map[int64]VocabPractice, len(wordIDs))
	if len(wordIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(
		"SELECT * FROM vocab_practices WHERE learner_id = ? AND word_id IN (?)",
		learnerID, wordIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("build practice lookup query: %w", err)
	}

	var practices []VocabPractice
	if err := r.db.SelectContext(ctx, &practices, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load practices: %w", err)
	}
	for _, p := range practices {
		result[p.WordID] = p
	}
	return result, nil
}

// FindDue returns the learner's due, non-blacklisted words ordered by due
// date, joined with their surface forms.
func (r *DBRepository) FindDue(ctx context.Context, learnerID int64, now time.Time, limit int) ([]DueWord, error) {
	var due []DueWord
	err := r.db.SelectContext(ctx, &due, `
		SELECT p.*, w.original_word
		FROM vocab_practices p
		JOIN words w ON w.id = p.word_id
		WHERE p.learner_id = ? AND p.due <= ? AND p.is_blacklisted = FALSE
		ORDER BY p.due
		LIMIT ?`,
		learnerID, now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("load due words: %w", err)
	}
	return due, nil
}

// CountByState returns the learner's practice record counts per state.
func (r *DBRepository) CountByState(ctx context.Context, learnerID int64) (map[string]int, error) {
	var rows []struct {
		State string `db:"state"`
		Count int    `db:"count"`
	}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT state, COUNT(*) AS count FROM vocab_practices WHERE learner_id = ? GROUP BY state",
		learnerID,
	)
	if err != nil {
		return nil, fmt.Errorf("count practices by state: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.State] = row.Count
	}
	return counts, nil
}
