package automaton

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddStateAndInitial(t *testing.T) {
	a := NewAutomaton(1)
	id, err := a.AddState("s0", false, true)
	require.NoError(t, err)
	require.Equal(t, id, a.InitialStateID())

	id2, err := a.AddState("s1", true, false)
	require.NoError(t, err)
	require.NotEqual(t, id, id2)

	s, err := a.GetState(id2)
	require.NoError(t, err)
	require.True(t, s.Marked())

	byLabel, err := a.GetStateByLabel("s1")
	require.NoError(t, err)
	require.Equal(t, id2, byLabel.ID())
}

func TestAddStateAtRejectsNullAndDuplicates(t *testing.T) {
	a := NewAutomaton(1)

	_, err := NewState(StateIDNil, "x", false)
	require.ErrorIs(t, err, ErrInvalidID)

	s1, err := NewState(5, "x", false)
	require.NoError(t, err)
	require.NoError(t, a.AddStateAt(s1, true))

	s2, err := NewState(5, "y", false)
	require.NoError(t, err)
	err = a.AddStateAt(s2, false)
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestGetStateNotFound(t *testing.T) {
	a := NewAutomaton(1)
	_, err := a.GetState(42)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = a.GetStateByLabel("nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddTransitionAndDiagnosticOnNullTarget(t *testing.T) {
	a := NewAutomaton(1)
	id1, _ := a.AddState("s0", false, true)
	id2, _ := a.AddState("s1", false, false)
	lbl := NewScalarLabel("a")
	_, err := a.Intern(lbl, []bool{true}, []bool{true})
	require.NoError(t, err)

	require.NoError(t, a.AddTransition(id1, lbl, id2))
	s1, _ := a.GetState(id1)
	require.Len(t, s1.Transitions(), 1)
	require.Equal(t, id2, s1.Transitions()[0].Target())

	var buf bytes.Buffer
	prev := Diagnostics
	Diagnostics = &buf
	defer func() { Diagnostics = prev }()
	require.NoError(t, a.AddTransition(id1, lbl, StateIDNil))
	require.Contains(t, buf.String(), "null state id")
}

func TestAddTransitionUnknownEventOrSource(t *testing.T) {
	a := NewAutomaton(1)
	id1, _ := a.AddState("s0", false, true)
	lbl := NewScalarLabel("missing")
	err := a.AddTransition(id1, lbl, id1)
	require.ErrorIs(t, err, ErrNotFound)

	err = a.AddTransition(9999, lbl, id1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRenumberStatesCompactsAndRewritesTargets(t *testing.T) {
	a := NewAutomaton(1)
	s1, _ := NewState(10, "s0", false)
	require.NoError(t, a.AddStateAt(s1, true))
	s2, _ := NewState(30, "s1", false)
	require.NoError(t, a.AddStateAt(s2, false))

	lbl := NewScalarLabel("a")
	_, err := a.Intern(lbl, []bool{true}, []bool{true})
	require.NoError(t, err)
	require.NoError(t, a.AddTransition(10, lbl, 30))

	require.NoError(t, a.RenumberStates())
	require.Equal(t, 2, a.NStates())

	initial, err := a.GetState(a.InitialStateID())
	require.NoError(t, err)
	require.Equal(t, "s0", initial.Label())
	require.Len(t, initial.Transitions(), 1)

	target, err := a.GetState(initial.Transitions()[0].Target())
	require.NoError(t, err)
	require.Equal(t, "s1", target.Label())
}

