package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelArityAndAt(t *testing.T) {
	scalar := NewScalarLabel("a")
	require.Equal(t, 1, scalar.Arity())
	s, err := scalar.At(0)
	require.NoError(t, err)
	require.Equal(t, "a", s)
	require.Equal(t, "a", scalar.String())

	vec := NewVectorLabel([]string{"x", Epsilon, "z"})
	require.Equal(t, 3, vec.Arity())
	v1, err := vec.At(1)
	require.NoError(t, err)
	require.Equal(t, Epsilon, v1)
	require.Equal(t, "<x,"+Epsilon+",z>", vec.String())

	_, err = vec.At(3)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = vec.At(-1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLabelEqual(t *testing.T) {
	scalar := NewScalarLabel("a")
	vecOfOne := NewVectorLabel([]string{"a"})
	require.True(t, scalar.Equal(vecOfOne), "a scalar and an arity-1 vector with the same content are equal")

	require.True(t, NewVectorLabel([]string{"a", "b"}).Equal(NewVectorLabel([]string{"a", "b"})))
	require.False(t, NewVectorLabel([]string{"a", "b"}).Equal(NewVectorLabel([]string{"a", "c"})))
	require.False(t, scalar.Equal(NewScalarLabel("b")))
}
