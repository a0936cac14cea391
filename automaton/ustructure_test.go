package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUStructureIsObservable(t *testing.T) {
	u := NewUStructure(2)
	e, err := u.Intern(NewScalarLabel("a"), []bool{false, true}, []bool{true, false})
	require.NoError(t, err)

	ok, err := u.IsObservable(e.Label(), 1)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = u.IsObservable(e.Label(), 2)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = u.IsObservable(NewScalarLabel("missing"), 1)
	require.ErrorIs(t, err, ErrNotFound)
}
