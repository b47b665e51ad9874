package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Hour)

	result := &types.OptimizationResult{FinalScore: 87}
	require.NoError(t, m.Set(ctx, "abc", result))

	got, err := m.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 87, got.FinalScore)
}

func TestMemoryMiss(t *testing.T) {
	m := NewMemory(time.Hour)

	_, err := m.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)

	now := time.Now()
	m.now = func() time.Time { return now }
	require.NoError(t, m.Set(ctx, "abc", &types.OptimizationResult{FinalScore: 50}))

	m.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err := m.Get(ctx, "abc")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryGetScalarFieldsAreIsolated(t *testing.T) {
	// Get returns a shallow copy: scalar fields are isolated from the
	// cached entry, slice fields alias it and are read-only.
	ctx := context.Background()
	m := NewMemory(time.Hour)
	require.NoError(t, m.Set(ctx, "abc", &types.OptimizationResult{FinalScore: 70}))

	first, err := m.Get(ctx, "abc")
	require.NoError(t, err)
	first.FinalScore = 0

	second, err := m.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 70, second.FinalScore)
}

func TestKeyIsStableAndInputSensitive(t *testing.T) {
	resume := types.ResumeDocument{Name: "Jordan Smith"}

	key1 := Key(resume, "backend engineer role")
	key2 := Key(resume, "backend engineer role")
	key3 := Key(resume, "frontend engineer role")

	assert.Equal(t, key1, key2)
	assert.NotEqual(t, key1, key3)
	assert.Len(t, key1, 64)
}
