package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateSetEqualityAndID(t *testing.T) {
	s1 := newState(1, "s1", false)
	s2 := newState(2, "s2", false)
	s3 := newState(3, "s3", false)

	a, err := newStateSet([]*State{s1, s2})
	require.NoError(t, err)
	b, err := newStateSet([]*State{s2, s1})
	require.NoError(t, err)
	require.True(t, a.Equal(b), "member-set equality is order independent")
	require.Equal(t, a.ID(), b.ID(), "equal member sets produce equal ids")

	c, err := newStateSet([]*State{s1, s3})
	require.NoError(t, err)
	require.False(t, a.Equal(c))
	require.NotEqual(t, a.ID(), c.ID())
}

func TestStateSetGroupAndGetObservableTransitions(t *testing.T) {
	auto := NewAutomaton(1)
	id1, _ := auto.AddState("1", false, true)
	id2, _ := auto.AddState("2", false, false)
	id3, _ := auto.AddState("3", false, false)

	tau, err := auto.Intern(NewVectorLabel([]string{Epsilon}), []bool{true}, []bool{false})
	require.NoError(t, err)
	a, err := auto.Intern(NewVectorLabel([]string{"a"}), []bool{true}, []bool{false})
	require.NoError(t, err)

	require.NoError(t, auto.AddTransition(id1, tau.Label(), id2))
	require.NoError(t, auto.AddTransition(id2, a.Label(), id3))

	s1, _ := auto.GetState(id1)
	s2, _ := auto.GetState(id2)
	ss, err := newStateSet([]*State{s1, s2})
	require.NoError(t, err)

	grouped, err := ss.GroupAndGetObservableTransitions(1)
	require.NoError(t, err)
	require.Len(t, grouped, 1, "the epsilon transition is excluded")
	require.True(t, grouped[0].event.Equal(a))
	require.Equal(t, []StateID{id3}, grouped[0].targets)
}
