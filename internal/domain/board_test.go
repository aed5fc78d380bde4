package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRodValueConsistency(t *testing.T) {
	// value == heaven*5 + earth for every legal pair, derived not stored
	for h := 0; h <= MaxHeaven; h++ {
		for e := 0; e <= MaxEarth; e++ {
			var r Rod
			require.NoError(t, r.SetBeads(h, e))
			assert.Equal(t, h*5+e, r.Value(), "heaven=%d earth=%d", h, e)
		}
	}
}

func TestSetBeadsRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name   string
		heaven int
		earth  int
	}{
		{"earth too high", 0, 6},
		{"heaven too high", 3, 0},
		{"earth negative", 1, -1},
		{"heaven negative", -1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Rod{Heaven: 1, Earth: 3}
			err := r.SetBeads(tc.heaven, tc.earth)
			assert.ErrorIs(t, err, ErrBeadOutOfRange)
			// rejected move leaves the rod untouched
			assert.Equal(t, 1, r.Heaven)
			assert.Equal(t, 3, r.Earth)
		})
	}
}

func TestNewBoard(t *testing.T) {
	b, err := NewBoard(4)
	require.NoError(t, err)
	require.Len(t, b.Rods, 4)
	assert.Equal(t, 0, b.Total())
	for i, r := range b.Rods {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, 0, r.Value())
	}

	_, err = NewBoard(0)
	assert.ErrorIs(t, err, ErrBoardSize)
}

func TestBoardTotalWeighting(t *testing.T) {
	b, err := NewBoard(3)
	require.NoError(t, err)

	_, _, err = b.SetBeads(0, 0, 2) // hundreds: 2
	require.NoError(t, err)
	_, _, err = b.SetBeads(1, 1, 0) // tens: 5
	require.NoError(t, err)
	_, _, err = b.SetBeads(2, 0, 4) // units: 4
	require.NoError(t, err)

	assert.Equal(t, 254, b.Total())
}

func TestBoardTotalToleratesTransientOverflow(t *testing.T) {
	// A rod mid-technique may hold more than one decimal digit; the total
	// stays plain arithmetic, not a digit-wise reading.
	b, err := NewBoard(2)
	require.NoError(t, err)

	_, v, err := b.SetBeads(1, 2, 3) // units rod at 13
	require.NoError(t, err)
	assert.Equal(t, 13, v)
	assert.Equal(t, 13, b.Total())

	_, _, err = b.SetBeads(0, 0, 1) // tens rod at 1
	require.NoError(t, err)
	assert.Equal(t, 23, b.Total())
}

func TestBoardSetBeadsRodIndex(t *testing.T) {
	b, err := NewBoard(2)
	require.NoError(t, err)

	_, _, err = b.SetBeads(2, 0, 0)
	assert.ErrorIs(t, err, ErrRodIndex)
	_, _, err = b.SetBeads(-1, 0, 0)
	assert.ErrorIs(t, err, ErrRodIndex)
}

func TestBoardReset(t *testing.T) {
	b, err := NewBoard(2)
	require.NoError(t, err)
	_, _, err = b.SetBeads(1, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 8, b.Total())

	b.Reset()
	assert.Equal(t, 0, b.Total())
	for _, r := range b.Rods {
		assert.Zero(t, r.Heaven)
		assert.Zero(t, r.Earth)
	}
}
