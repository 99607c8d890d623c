package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibevox/pkg/share"
)

type mockShareStore struct {
	entries map[string]*share.Entry
	nextID  string
}

func (m *mockShareStore) Save(input, prompt, voice string) (string, error) {
	if m.entries == nil {
		m.entries = make(map[string]*share.Entry)
	}
	m.entries[m.nextID] = &share.Entry{ID: m.nextID, Input: input, Prompt: prompt, Voice: voice}
	return m.nextID, nil
}

func (m *mockShareStore) Load(id string) (*share.Entry, error) {
	e, ok := m.entries[id]
	if !ok {
		return nil, share.ErrNotFound
	}
	return e, nil
}

func TestHandleCreateShare(t *testing.T) {
	store := &mockShareStore{nextID: "abc-123"}
	h := NewShareHandler(store)

	r := httptest.NewRequest("POST", "/api/share", strings.NewReader(`{"input":"hello","prompt":"calm","voice":"alloy"}`))
	w := httptest.NewRecorder()
	h.HandleCreate(w, r)

	require.Equal(t, 200, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "abc-123", resp["id"])
	assert.Equal(t, "hello", store.entries["abc-123"].Input)
}

func TestHandleCreateShareRejectsEmptyInput(t *testing.T) {
	h := NewShareHandler(&mockShareStore{nextID: "x"})

	r := httptest.NewRequest("POST", "/api/share", strings.NewReader(`{"prompt":"calm"}`))
	w := httptest.NewRecorder()
	h.HandleCreate(w, r)
	assert.Equal(t, 400, w.Code)
}

func TestHandleCreateShareBadBody(t *testing.T) {
	h := NewShareHandler(&mockShareStore{})

	r := httptest.NewRequest("POST", "/api/share", strings.NewReader("not json"))
	w := httptest.NewRecorder()
	h.HandleCreate(w, r)
	assert.Equal(t, 400, w.Code)
}

func TestHandleGetShare(t *testing.T) {
	store := &mockShareStore{nextID: "abc-123"}
	_, err := store.Save("hello", "calm", "alloy")
	require.NoError(t, err)
	h := NewShareHandler(store)

	r := httptest.NewRequest("GET", "/api/share?id=abc-123", nil)
	w := httptest.NewRecorder()
	h.HandleGet(w, r)

	require.Equal(t, 200, w.Code)
	var entry share.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, "hello", entry.Input)
	assert.Equal(t, "alloy", entry.Voice)
}

func TestHandleGetShareNotFound(t *testing.T) {
	h := NewShareHandler(&mockShareStore{})

	r := httptest.NewRequest("GET", "/api/share?id=missing", nil)
	w := httptest.NewRecorder()
	h.HandleGet(w, r)
	assert.Equal(t, 404, w.Code)
}

func TestHandleGetShareMissingID(t *testing.T) {
	h := NewShareHandler(&mockShareStore{})

	r := httptest.NewRequest("GET", "/api/share", nil)
	w := httptest.NewRecorder()
	h.HandleGet(w, r)
	assert.Equal(t, 400, w.Code)
}
