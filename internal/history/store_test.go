package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.RecordLaunch("org.example.A"))
	require.NoError(t, s.RecordLaunch("org.example.B"))
	require.NoError(t, s.RecordLaunch("org.example.A"))

	recent, err := s.Recent(10)
	require.NoError(t, err)

	// Most recent first, deduplicated.
	assert.Equal(t, []string{"org.example.A", "org.example.B"}, recent)
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.RecordLaunch(id))
	}

	recent, err := s.Recent(2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0])
}

func TestRecentEmpty(t *testing.T) {
	s := openTestStore(t)

	recent, err := s.Recent(5)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestLaunchCount(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.RecordLaunch("org.example.A"))
	require.NoError(t, s.RecordLaunch("org.example.A"))

	n, err := s.LaunchCount("org.example.A")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.LaunchCount("org.example.Missing")
	require.NoError(t, err)
	assert.Zero(t, n)
}
