package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arena "github.com/pavanmanishd/arenaindex"
)

func TestRunRound(t *testing.T) {
	*Count = 500
	*Width = 4
	*Size = 16

	a, err := arena.Open(256)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, runRound(a))
	capacity := a.Capacity()
	assert.Greater(t, capacity, 256)

	a.Reset()
	require.NoError(t, runRound(a))
	assert.Equal(t, capacity, a.Capacity())
}

func TestRunRoundBudget(t *testing.T) {
	*Count = 10000
	*Width = 16
	*Size = 64

	a, err := arena.Open(1024, arena.WithBudget(arena.NewBudget(4096)))
	require.NoError(t, err)
	defer a.Close()

	assert.ErrorIs(t, runRound(a), arena.ErrBudgetExceeded)
}
