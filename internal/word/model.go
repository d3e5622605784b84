package word

import "time"

// Word is a learnable vocabulary item extracted from snippet transcripts.
// The original surface form is unique across the platform.
type Word struct {
	ID           int64     `db:"id"`
	OriginalWord string    `db:"original_word"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
