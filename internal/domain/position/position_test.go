package position_test

import (
	"testing"

	"github.com/Guigui98712/glog-quadro/internal/domain/position"
	"github.com/stretchr/testify/require"
)

func TestNext_Empty(t *testing.T) {
	require.Equal(t, int64(position.Step), position.Next(nil))
	require.Equal(t, int64(position.Step), position.Next([]int64{}))
}

func TestNext_StrictlyGreater(t *testing.T) {
	pos := position.Next([]int64{1000, 3000, 2000})
	require.Equal(t, int64(4000), pos)
}

func TestNext_IgnoresOrder(t *testing.T) {
	// Gaps left by deletions don't get reused.
	require.Equal(t, int64(6000), position.Next([]int64{5000, 1000}))
}

func TestSequence(t *testing.T) {
	require.Equal(t, []int64{1000, 2000, 3000}, position.Sequence(3))
	require.Empty(t, position.Sequence(0))
}

func TestNext_AppendPreservesCallOrder(t *testing.T) {
	var positions []int64
	for i := 0; i < 5; i++ {
		positions = append(positions, position.Next(positions))
	}
	for i := 1; i < len(positions); i++ {
		require.Greater(t, positions[i], positions[i-1])
	}
}
