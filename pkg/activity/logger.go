// Package activity records synthesis requests for operational review.
// Recording is fire-and-forget: failures are logged, never surfaced.
package activity

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"vibevox/pkg/db"
)

// maxStoredText caps the text column; the full input is not needed for review.
const maxStoredText = 500

// Logger writes to the activity_log table. A nil Logger is a no-op.
type Logger struct {
	db *db.DB
}

// NewLogger creates a Logger.
func NewLogger(d *db.DB) *Logger {
	return &Logger{db: d}
}

// Record inserts one activity row.
func (l *Logger) Record(clientID, voice, text string) {
	if l == nil || l.db == nil {
		return
	}

	stored := text
	if r := []rune(stored); len(r) > maxStoredText {
		stored = string(r[:maxStoredText])
	}

	_, err := l.db.Exec(
		`INSERT INTO activity_log (timestamp, client_id, voice, chars, text) VALUES (?, ?, ?, ?, ?)`,
		time.Now().UTC(), clientID, voice, utf8.RuneCountInString(text), stored)
	if err != nil {
		slog.Warn("Failed to record activity", "error", err)
	}
}
