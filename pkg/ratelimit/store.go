// Package ratelimit enforces a per-client request quota over a rolling
// window, persisted so restarts do not reset anyone's count.
package ratelimit

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vibevox/pkg/config"
	"vibevox/pkg/db"
)

// clipLen caps the stored last_input/last_prompt columns.
const clipLen = 500

// Store tracks per-client usage in the rate_limits table.
type Store struct {
	db     *db.DB
	quota  int
	window time.Duration
	now    func() time.Time
}

// NewStore creates a Store with the configured quota and window.
func NewStore(d *db.DB, cfg config.RateLimitConfig) *Store {
	return &Store{
		db:     d,
		quota:  cfg.DailyQuota,
		window: time.Duration(cfg.Window),
		now:    time.Now,
	}
}

// Allow reports whether the client has quota remaining. It consumes nothing;
// call RecordSuccess once audio has actually been produced. Two overlapping
// requests from one client may both pass this check; the quota is advisory,
// not transactional.
func (s *Store) Allow(clientID string) (bool, error) {
	count, resetAt, err := s.read(clientID)
	if err != nil {
		return false, err
	}
	if resetAt.IsZero() || s.now().After(resetAt) {
		return true, nil
	}
	return count < s.quota, nil
}

// Remaining returns the number of requests left in the client's window.
func (s *Store) Remaining(clientID string) (int, error) {
	count, resetAt, err := s.read(clientID)
	if err != nil {
		return 0, err
	}
	if resetAt.IsZero() || s.now().After(resetAt) {
		return s.quota, nil
	}
	if count >= s.quota {
		return 0, nil
	}
	return s.quota - count, nil
}

// RecordSuccess consumes one unit of quota and remembers the last accepted
// input and prompt. An expired window restarts from one.
func (s *Store) RecordSuccess(clientID, input, prompt string) error {
	count, resetAt, err := s.read(clientID)
	if err != nil {
		return err
	}

	now := s.now()
	if resetAt.IsZero() || now.After(resetAt) {
		count = 0
		resetAt = now.Add(s.window)
	}

	_, err = s.db.Exec(`
		INSERT INTO rate_limits (client_id, count, reset_at, last_input, last_prompt)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(client_id) DO UPDATE SET
			count = excluded.count,
			reset_at = excluded.reset_at,
			last_input = excluded.last_input,
			last_prompt = excluded.last_prompt`,
		clientID, count+1, resetAt.UTC(), clip(input), clip(prompt))
	if err != nil {
		return fmt.Errorf("failed to record rate limit usage: %w", err)
	}
	return nil
}

// read returns the client's current count and window end. A missing row comes
// back as (0, zero time, nil).
func (s *Store) read(clientID string) (int, time.Time, error) {
	var count int
	var resetAt time.Time
	err := s.db.QueryRow(
		`SELECT count, reset_at FROM rate_limits WHERE client_id = ?`, clientID).
		Scan(&count, &resetAt)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, time.Time{}, nil
	}
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to read rate limit: %w", err)
	}
	return count, resetAt, nil
}

func clip(s string) string {
	r := []rune(s)
	if len(r) <= clipLen {
		return s
	}
	return string(r[:clipLen])
}
