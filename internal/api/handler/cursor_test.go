package handler

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobwell/jobsync-be/internal/api/storage"
)

func TestJobCursorRoundTrip(t *testing.T) {
	original := &storage.JobCursor{
		CreatedAt: time.Date(2026, 8, 1, 12, 30, 0, 123456789, time.UTC),
		ID:        "6f1e9c3a-0000-4000-8000-000000000001",
	}

	encoded := EncodeJobCursor(original)
	require.NotEmpty(t, encoded)

	decoded, err := DecodeJobCursor(encoded)
	require.NoError(t, err)
	require.NotNil(t, decoded)

	assert.True(t, original.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, original.ID, decoded.ID)
}

func TestDecodeJobCursor(t *testing.T) {
	t.Run("empty cursor means start from the top", func(t *testing.T) {
		cursor, err := DecodeJobCursor("")
		require.NoError(t, err)
		assert.Nil(t, cursor)
	})

	t.Run("invalid base64 rejected", func(t *testing.T) {
		_, err := DecodeJobCursor("not-base64!!!")
		assert.Error(t, err)
	})

	t.Run("wrong part count rejected", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString([]byte("12345"))
		_, err := DecodeJobCursor(encoded)
		assert.Error(t, err)
	})

	t.Run("non-numeric timestamp rejected", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString([]byte("abc|some-id"))
		_, err := DecodeJobCursor(encoded)
		assert.Error(t, err)
	})
}
