package token

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		if k.String() == "" {
			t.Errorf("missing string representation of kind %d", k)
		}
	}
}

func TestGoString(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		quoted := k >= punctStart && k <= punctEnd
		got := fmt.Sprintf("%#v", k)
		if quoted {
			require.Equal(t, "'"+k.String()+"'", got)
		} else {
			require.Equal(t, k.String(), got)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		want := k >= AND && k <= WHILE
		require.Equal(t, want, k.IsKeyword(), "kind %s", k)
	}
	require.True(t, DO.IsKeyword())
	require.True(t, FOR.IsKeyword())
	require.False(t, EQEQ.IsKeyword())
}
