package activity

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibevox/pkg/db"
)

func TestRecord(t *testing.T) {
	d, err := db.Init(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer d.Close()

	l := NewLogger(d)
	l.Record("1.2.3.4", "alloy", "hello world")

	var clientID, voice, text string
	var chars int
	err = d.QueryRow(`SELECT client_id, voice, chars, text FROM activity_log`).
		Scan(&clientID, &voice, &chars, &text)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3.4", clientID)
	assert.Equal(t, "alloy", voice)
	assert.Equal(t, 11, chars)
	assert.Equal(t, "hello world", text)
}

func TestRecordClipsLongText(t *testing.T) {
	d, err := db.Init(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer d.Close()

	l := NewLogger(d)
	l.Record("client", "alloy", strings.Repeat("y", 2*maxStoredText))

	var chars int
	var text string
	err = d.QueryRow(`SELECT chars, text FROM activity_log`).Scan(&chars, &text)
	require.NoError(t, err)
	assert.Equal(t, 2*maxStoredText, chars)
	assert.Len(t, text, maxStoredText)
}

func TestRecordNilLogger(t *testing.T) {
	var l *Logger
	// Must not panic.
	l.Record("client", "alloy", "text")
}
