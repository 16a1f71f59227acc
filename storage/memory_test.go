package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLoadAbsentKey(t *testing.T) {
	s := NewMemoryStore()

	value, ok, err := s.Load("missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestMemoryStoreSaveOverwrites(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Save("k", "first"))
	require.NoError(t, s.Save("k", "second"))

	value, ok, err := s.Load("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", value)
}
