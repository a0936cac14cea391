package automaton

import (
	"fmt"
	"sort"
)

// Reader is the read-side contract shared by Automaton, UStructure, and
// SubsetConstruction: state/event lookup, iteration, and the initial
// state. It intentionally excludes the mutation surface so a derived
// automaton (SubsetConstruction) can satisfy it without promising to
// support add_state*.
type Reader interface {
	NControllers() int
	NStates() int
	InitialStateID() StateID
	States() []*State
	GetState(id StateID) (*State, error)
	GetStateByLabel(label string) (*State, error)
	Events() []*Event
	EventByID(id EventID) (*Event, error)
	EventByLabel(label Label) (*Event, error)
}

// Automaton is the base graph: a state store keyed by ID, an event
// store, a controller count, and an initial state.
type Automaton struct {
	nControllers int

	stateOrder []StateID
	states     map[StateID]*State
	labelIndex map[string]StateID

	eventOrder []EventID
	events     map[EventID]*Event
	eventByLbl map[string]*Event
	nextEvent  EventID

	initialStateID StateID

	// immutable marks a derived automaton (a SubsetConstruction's
	// inner automaton) whose add_state* surface is disabled. Transitions
	// installed by the construction engine itself remain allowed.
	immutable bool
}

// NewAutomaton creates an empty Automaton with the given controller
// count.
func NewAutomaton(nControllers int) *Automaton {
	return &Automaton{
		nControllers: nControllers,
		states:       map[StateID]*State{},
		labelIndex:   map[string]StateID{},
		events:       map[EventID]*Event{},
		eventByLbl:   map[string]*Event{},
		nextEvent:    EventID(1),
	}
}

// NControllers returns the automaton's controller count.
func (a *Automaton) NControllers() int { return a.nControllers }

// NStates returns the number of installed states.
func (a *Automaton) NStates() int { return len(a.stateOrder) }

// InitialStateID returns the initial state's ID, or StateIDNil if none
// has been set.
func (a *Automaton) InitialStateID() StateID { return a.initialStateID }

// SetInitialStateID sets the automaton's initial state. The state must
// already be installed.
func (a *Automaton) SetInitialStateID(id StateID) error {
	if _, ok := a.states[id]; !ok {
		return fmt.Errorf("set initial state %v: %w", id, ErrNotFound)
	}
	a.initialStateID = id
	return nil
}

// Intern looks up an event by label, returning the existing event if
// one is already interned; otherwise it allocates a fresh monotonically
// increasing ID and installs a new event.
func (a *Automaton) Intern(label Label, observable, controllable []bool) (*Event, error) {
	if len(observable) != len(controllable) || len(observable) != a.nControllers {
		return nil, fmt.Errorf("intern %v: observable/controllable length must equal controller count %d: %w", label, a.nControllers, ErrInvalidArgument)
	}
	key := label.String()
	if e, ok := a.eventByLbl[key]; ok {
		return e, nil
	}
	e := newEvent(a.nextEvent, label, observable, controllable)
	a.nextEvent++
	a.events[e.id] = e
	a.eventByLbl[key] = e
	a.eventOrder = append(a.eventOrder, e.id)
	return e, nil
}

// installEventCopy installs a verbatim copy of an event interned in
// another Automaton, preserving its ID, label, and flags. Used by
// SubsetConstruction to carry the source UStructure's events into the
// derived automaton unchanged.
func (a *Automaton) installEventCopy(e *Event) {
	if _, ok := a.events[e.id]; ok {
		return
	}
	cp := newEvent(e.id, e.label, e.observable, e.controllable)
	a.events[cp.id] = cp
	a.eventByLbl[cp.label.String()] = cp
	a.eventOrder = append(a.eventOrder, cp.id)
	if cp.id >= a.nextEvent {
		a.nextEvent = cp.id + 1
	}
}

// EventByID looks up an event by ID.
func (a *Automaton) EventByID(id EventID) (*Event, error) {
	e, ok := a.events[id]
	if !ok {
		return nil, fmt.Errorf("event %v: %w", id, ErrNotFound)
	}
	return e, nil
}

// EventByLabel looks up an event by label.
func (a *Automaton) EventByLabel(label Label) (*Event, error) {
	e, ok := a.eventByLbl[label.String()]
	if !ok {
		return nil, fmt.Errorf("event %v: %w", label, ErrNotFound)
	}
	return e, nil
}

// Events returns interned events in insertion order.
func (a *Automaton) Events() []*Event {
	es := make([]*Event, len(a.eventOrder))
	for i, id := range a.eventOrder {
		es[i] = a.events[id]
	}
	return es
}

// AddState allocates a fresh nonzero ID, installs a new state, and (if
// isInitial) sets it as the automaton's initial state.
func (a *Automaton) AddState(label string, marked bool, isInitial bool) (StateID, error) {
	if a.immutable {
		return StateIDNil, fmt.Errorf("add_state on a derived automaton: %w", ErrUnsupported)
	}
	id := a.nextStateID()
	s := newState(id, label, marked)
	a.installState(s)
	if isInitial {
		a.initialStateID = id
	}
	return id, nil
}

func (a *Automaton) nextStateID() StateID {
	var max StateID
	for _, id := range a.stateOrder {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// NewState constructs a pre-identified state for use with AddStateAt.
func NewState(id StateID, label string, marked bool) (*State, error) {
	if id == StateIDNil {
		return nil, fmt.Errorf("state id 0 is the null sentinel: %w", ErrInvalidID)
	}
	return newState(id, label, marked), nil
}

// AddStateAt installs a given pre-identified state.
func (a *Automaton) AddStateAt(s *State, isInitial bool) error {
	if a.immutable {
		return fmt.Errorf("add_state_at on a derived automaton: %w", ErrUnsupported)
	}
	if s.id == StateIDNil {
		return fmt.Errorf("state id 0 is the null sentinel: %w", ErrInvalidID)
	}
	if _, ok := a.states[s.id]; ok {
		return fmt.Errorf("state %v already installed: %w", s.id, ErrDuplicateID)
	}
	a.installState(s)
	if isInitial {
		a.initialStateID = s.id
	}
	return nil
}

func (a *Automaton) installState(s *State) {
	a.states[s.id] = s
	a.stateOrder = append(a.stateOrder, s.id)
	if s.label != "" {
		a.labelIndex[s.label] = s.id
	}
}

// GetState looks up a state by ID.
func (a *Automaton) GetState(id StateID) (*State, error) {
	s, ok := a.states[id]
	if !ok {
		return nil, fmt.Errorf("state %v: %w", id, ErrNotFound)
	}
	return s, nil
}

// GetStateByLabel looks up a state by label.
func (a *Automaton) GetStateByLabel(label string) (*State, error) {
	id, ok := a.labelIndex[label]
	if !ok {
		return nil, fmt.Errorf("state %q: %w", label, ErrNotFound)
	}
	return a.states[id], nil
}

// States returns installed states in insertion order.
func (a *Automaton) States() []*State {
	ss := make([]*State, len(a.stateOrder))
	for i, id := range a.stateOrder {
		ss[i] = a.states[id]
	}
	return ss
}

// AddTransition looks up the event by label (it must already be
// interned), appends a transition to the source state, and emits a
// diagnostic if targetID is the null sentinel. Duplicate-edge
// suppression is the caller's responsibility, except where the subset
// construction engine specifies otherwise.
func (a *Automaton) AddTransition(sourceID StateID, eventLabel Label, targetID StateID) error {
	src, ok := a.states[sourceID]
	if !ok {
		return fmt.Errorf("add_transition source %v: %w", sourceID, ErrNotFound)
	}
	e, err := a.EventByLabel(eventLabel)
	if err != nil {
		return fmt.Errorf("add_transition event %v: %w", eventLabel, err)
	}
	if targetID == StateIDNil {
		warnf("transition (%v, %v, ?) targets the null state id", sourceID, eventLabel)
	}
	src.addTransition(Transition{event: e, target: targetID})
	return nil
}

// RenumberStates compacts state IDs without dropping any state: states
// with no transitions and no incoming reference are kept (a StateSet is
// never empty, since newStateSet rejects an empty member list, so a
// subset construction has no empty states to drop either). Renumbering
// simply renumbers all current states into
// 1..N in ascending-ID order and rewrites every transition target to
// match; the initial state's identity is preserved semantically (it
// keeps pointing at the same logical state under its new ID).
func (a *Automaton) RenumberStates() error {
	old := append([]StateID(nil), a.stateOrder...)
	sort.Slice(old, func(i, j int) bool { return old[i] < old[j] })

	remap := make(map[StateID]StateID, len(old))
	next := StateID(1)
	for _, id := range old {
		remap[id] = next
		next++
	}

	newStates := make(map[StateID]*State, len(old))
	newOrder := make([]StateID, 0, len(old))
	newLabelIdx := map[string]StateID{}
	for _, id := range old {
		s := a.states[id]
		newID := remap[id]
		s.id = newID
		for i := range s.transitions {
			if t := s.transitions[i].target; t != StateIDNil {
				if nt, ok := remap[t]; ok {
					s.transitions[i].target = nt
				}
			}
		}
		newStates[newID] = s
		newOrder = append(newOrder, newID)
		if s.label != "" {
			newLabelIdx[s.label] = newID
		}
	}

	a.states = newStates
	a.stateOrder = newOrder
	a.labelIndex = newLabelIdx
	if nid, ok := remap[a.initialStateID]; ok {
		a.initialStateID = nid
	}
	return nil
}

