package automaton

import "fmt"

// SubsetConstruction is the determinization-style engine: given a source
// UStructure and a controller index, it builds a deterministic Automaton
// whose states are StateSets — equivalence classes of source states
// collapsed under the null (epsilon/unobservable) closure for that
// controller.
//
// A SubsetConstruction holds a non-owning back reference to its source;
// the source must outlive the construction, and concurrent mutation of
// either while the other is in use is undefined: the construction runs
// synchronously on the caller's goroutine and takes no locks.
type SubsetConstruction struct {
	inner      *Automaton
	source     *UStructure
	controller int
	all        []*StateSet
	byID       map[StateID]*StateSet
}

// NewSubsetConstruction builds the subset construction of src under the
// given controller's observation.
func NewSubsetConstruction(src *UStructure, controller int) (*SubsetConstruction, error) {
	if controller < 0 || controller > src.NControllers() {
		return nil, fmt.Errorf("controller %d out of range [0,%d]: %w", controller, src.NControllers(), ErrInvalidArgument)
	}
	if src.InitialStateID() == StateIDNil {
		return nil, fmt.Errorf("source has no initial state: %w", ErrInvariantViolation)
	}

	inner := NewAutomaton(src.NControllers())
	inner.immutable = true
	for _, e := range src.Events() {
		inner.installEventCopy(e)
	}

	sc := &SubsetConstruction{
		inner:      inner,
		source:     src,
		controller: controller,
	}

	seed, err := sc.nullClosure([]StateID{src.InitialStateID()})
	if err != nil {
		return nil, err
	}
	sc.install(seed, true)

	queue := []*StateSet{seed}
	installed := map[StateID]*StateSet{seed.ID(): seed}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		grouped, err := u.GroupAndGetObservableTransitions(controller)
		if err != nil {
			return nil, err
		}
		for _, et := range grouped {
			targetStates := make([]*State, 0, len(et.targets))
			for _, tid := range et.targets {
				s, err := src.GetState(tid)
				if err != nil {
					return nil, err
				}
				targetStates = append(targetStates, s)
			}
			v, err := sc.nullClosure(stateIDsOf(targetStates))
			if err != nil {
				return nil, err
			}

			if existing, ok := installed[v.ID()]; ok {
				v = existing
			} else {
				installed[v.ID()] = v
				sc.install(v, false)
				queue = append(queue, v)
			}

			if err := inner.AddTransition(u.ID(), et.event.Label(), v.ID()); err != nil {
				return nil, err
			}
		}
	}

	if err := inner.RenumberStates(); err != nil {
		return nil, err
	}
	sc.byID = map[StateID]*StateSet{}
	for _, ss := range sc.all {
		sc.byID[ss.ID()] = ss
	}

	return sc, nil
}

func stateIDsOf(states []*State) []StateID {
	ids := make([]StateID, len(states))
	for i, s := range states {
		ids[i] = s.id
	}
	return ids
}

func (sc *SubsetConstruction) install(ss *StateSet, isInitial bool) {
	sc.inner.installState(ss.State)
	sc.all = append(sc.all, ss)
	if isInitial {
		sc.inner.initialStateID = ss.ID()
	}
}

// nullClosure computes the StateSet reachable from seed via zero or more
// transitions that are null under the construction's controller: a
// transition (u, e, w) is null iff e.vector.at(controller) == Epsilon,
// or controller != 0 and e is not observable by controller.
func (sc *SubsetConstruction) nullClosure(seed []StateID) (*StateSet, error) {
	visited := map[StateID]struct{}{}
	members := []*State{}
	queue := append([]StateID(nil), seed...)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if _, ok := visited[id]; ok {
			continue
		}
		visited[id] = struct{}{}

		s, err := sc.source.GetState(id)
		if err != nil {
			return nil, err
		}
		members = append(members, s)

		for _, t := range s.Transitions() {
			if t.target == StateIDNil {
				continue
			}
			comp, err := t.event.VectorAt(sc.controller)
			if err != nil {
				return nil, err
			}
			isNull := comp == Epsilon || (sc.controller != 0 && !t.event.Observable(sc.controller))
			if !isNull {
				continue
			}
			if _, ok := visited[t.target]; !ok {
				queue = append(queue, t.target)
			}
		}
	}

	return newStateSet(members)
}

// Source returns the construction's source UStructure.
func (sc *SubsetConstruction) Source() *UStructure { return sc.source }

// Controller returns the controller index this construction was built
// for.
func (sc *SubsetConstruction) Controller() int { return sc.controller }

// NControllers, NStates, InitialStateID, States, GetState,
// GetStateByLabel, Events, EventByID, and EventByLabel delegate to the
// inner derived automaton, giving SubsetConstruction the same read-side
// contract as Automaton and UStructure (see Reader) without exposing the
// add_state* mutation surface: those calls reach the inner automaton's
// own guard and fail with ErrUnsupported.

func (sc *SubsetConstruction) NControllers() int       { return sc.inner.NControllers() }
func (sc *SubsetConstruction) NStates() int             { return sc.inner.NStates() }
func (sc *SubsetConstruction) InitialStateID() StateID  { return sc.inner.InitialStateID() }
func (sc *SubsetConstruction) States() []*State         { return sc.inner.States() }
func (sc *SubsetConstruction) GetState(id StateID) (*State, error) {
	return sc.inner.GetState(id)
}
func (sc *SubsetConstruction) GetStateByLabel(label string) (*State, error) {
	return sc.inner.GetStateByLabel(label)
}
func (sc *SubsetConstruction) Events() []*Event { return sc.inner.Events() }
func (sc *SubsetConstruction) EventByID(id EventID) (*Event, error) {
	return sc.inner.EventByID(id)
}
func (sc *SubsetConstruction) EventByLabel(label Label) (*Event, error) {
	return sc.inner.EventByLabel(label)
}

// AddState always fails: a SubsetConstruction's result automaton is
// derived and immutable through the usual mutation surface.
func (sc *SubsetConstruction) AddState(label string, marked bool, isInitial bool) (StateID, error) {
	return sc.inner.AddState(label, marked, isInitial)
}

// AddStateAt always fails, for the same reason as AddState.
func (sc *SubsetConstruction) AddStateAt(s *State, isInitial bool) error {
	return sc.inner.AddStateAt(s, isInitial)
}

// StateSetByID looks up the StateSet installed at id (after renumbering,
// so id is a compacted 1..N value).
func (sc *SubsetConstruction) StateSetByID(id StateID) (*StateSet, error) {
	ss, ok := sc.byID[id]
	if !ok {
		return nil, fmt.Errorf("state set %v: %w", id, ErrNotFound)
	}
	return ss, nil
}

// BuildAutomatonRepresentationOf constructs a fresh 1-controller
// Automaton whose states mirror this subset construction's (ID
// preserving). For each transition (u, e, v), it adds an event with
// label e.vector.at(projectionController) (interning it with both
// observability and controllability false if not already present) and
// an edge (u, label, v).
//
// TODO: confirm semantics — this mirrors the source contract's bound
// check, which accepts projectionController == NControllers() (through
// VectorAt's remap that value reads tuple index NControllers()-1, the
// last controller's component). Whether that is intentional or an
// off-by-one is not resolved upstream; the behavior is reproduced as-is.
func (sc *SubsetConstruction) BuildAutomatonRepresentationOf(projectionController int) (*Automaton, error) {
	if projectionController < 0 || projectionController > sc.NControllers() {
		return nil, fmt.Errorf("projection controller %d out of range [0,%d]: %w", projectionController, sc.NControllers(), ErrInvalidArgument)
	}

	out := NewAutomaton(1)
	for _, s := range sc.States() {
		ns, err := NewState(s.ID(), s.Label(), s.Marked())
		if err != nil {
			return nil, err
		}
		isInitial := s.ID() == sc.InitialStateID()
		if err := out.AddStateAt(ns, isInitial); err != nil {
			return nil, err
		}
	}

	for _, s := range sc.States() {
		for _, t := range s.Transitions() {
			comp, err := t.event.VectorAt(projectionController)
			if err != nil {
				return nil, err
			}
			lbl := NewScalarLabel(comp)
			if _, err := out.EventByLabel(lbl); err != nil {
				if _, err := out.Intern(lbl, []bool{false}, []bool{false}); err != nil {
					return nil, err
				}
			}
			if err := out.AddTransition(s.ID(), lbl, t.target); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
