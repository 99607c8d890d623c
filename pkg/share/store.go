// Package share persists input/prompt/voice triples behind opaque ids so a
// synthesis setup can be handed to someone else as a link.
package share

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vibevox/pkg/db"
)

// ErrNotFound is returned by Load for unknown ids.
var ErrNotFound = errors.New("share not found")

// Entry is one stored share.
type Entry struct {
	ID        string    `json:"id"`
	Input     string    `json:"input"`
	Prompt    string    `json:"prompt"`
	Voice     string    `json:"voice"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store reads and writes the shares table.
type Store struct {
	db        *db.DB
	maxInput  int
	maxPrompt int
}

// NewStore creates a Store. Inputs longer than the given limits are clipped
// on save, mirroring the synthesis endpoint's limits.
func NewStore(d *db.DB, maxInput, maxPrompt int) *Store {
	return &Store{db: d, maxInput: maxInput, maxPrompt: maxPrompt}
}

// Save stores the triple and returns its new id.
func (s *Store) Save(input, prompt, voice string) (string, error) {
	id := uuid.NewString()

	_, err := s.db.Exec(
		`INSERT INTO shares (id, input, prompt, voice, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, clipRunes(input, s.maxInput), clipRunes(prompt, s.maxPrompt), voice, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to save share: %w", err)
	}
	return id, nil
}

// Load returns the share with the given id, or ErrNotFound.
func (s *Store) Load(id string) (*Entry, error) {
	e := Entry{ID: id}
	err := s.db.QueryRow(
		`SELECT input, prompt, voice, created_at FROM shares WHERE id = ?`, id).
		Scan(&e.Input, &e.Prompt, &e.Voice, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load share: %w", err)
	}
	return &e, nil
}

func clipRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
