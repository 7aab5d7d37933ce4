package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCellKey(t *testing.T) {
	require.Equal(t, "0_0", CellKey(0, 0))
	require.Equal(t, "100_200", CellKey(100, 200))
	require.Equal(t, "999_1", CellKey(999, 1))
}
