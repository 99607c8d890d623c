package ratelimit

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibevox/pkg/config"
	"vibevox/pkg/db"
)

func testStore(t *testing.T, quota int) *Store {
	t.Helper()
	d, err := db.Init(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	return NewStore(d, config.RateLimitConfig{
		DailyQuota: quota,
		Window:     config.Duration(24 * time.Hour),
	})
}

func TestAllowUnknownClient(t *testing.T) {
	s := testStore(t, 5)

	ok, err := s.Allow("1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)

	remaining, err := s.Remaining("1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)
}

func TestQuotaExhaustion(t *testing.T) {
	s := testStore(t, 2)

	for i := 0; i < 2; i++ {
		ok, err := s.Allow("client")
		require.NoError(t, err)
		assert.True(t, ok, "request %d should be allowed", i)
		require.NoError(t, s.RecordSuccess("client", "hello", "prompt"))
	}

	ok, err := s.Allow("client")
	require.NoError(t, err)
	assert.False(t, ok)

	remaining, err := s.Remaining("client")
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	// Other clients are unaffected.
	ok, err = s.Allow("other")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWindowReset(t *testing.T) {
	s := testStore(t, 1)

	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.RecordSuccess("client", "first", ""))
	ok, err := s.Allow("client")
	require.NoError(t, err)
	assert.False(t, ok)

	// Past the window end the counter restarts.
	s.now = func() time.Time { return now.Add(25 * time.Hour) }
	ok, err = s.Allow("client")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.RecordSuccess("client", "second", ""))
	ok, err = s.Allow("client")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecordSuccessClipsStoredText(t *testing.T) {
	s := testStore(t, 5)

	long := strings.Repeat("x", 2*clipLen)
	require.NoError(t, s.RecordSuccess("client", long, long))

	var lastInput, lastPrompt string
	err := s.db.QueryRow(
		`SELECT last_input, last_prompt FROM rate_limits WHERE client_id = ?`, "client").
		Scan(&lastInput, &lastPrompt)
	require.NoError(t, err)
	assert.Len(t, lastInput, clipLen)
	assert.Len(t, lastPrompt, clipLen)
}
