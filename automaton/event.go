package automaton

import "fmt"

// EventID identifies an Event within an Automaton. IDs are allocated
// monotonically starting at 1 by the event store's intern operation.
type EventID int32

// EventIDNil is the sentinel "no event" value.
const EventIDNil = EventID(0)

func (id EventID) String() string {
	return fmt.Sprintf("e%d", int32(id))
}

// Event is identified by ID, carries a Label, and two equal-length
// per-controller boolean vectors: observable and controllable.
//
// Two events are considered equal by their scalar label (see
// Label.Equal / Label.scalarForm); this lets derived automata dedup
// events purely by the string they carry.
type Event struct {
	id           EventID
	label        Label
	observable   []bool
	controllable []bool
}

// ID returns the event's identifier.
func (e *Event) ID() EventID { return e.id }

// Label returns the event's label.
func (e *Event) Label() Label { return e.label }

// Observable reports whether controller is in range and the event is
// observable by it, per the off-by-one convention documented on
// UStructure: controller 0 is the global view and is always observable;
// controllers 1..n read observable[controller-1].
func (e *Event) Observable(controller int) bool {
	if controller == 0 {
		return true
	}
	i := controller - 1
	if i < 0 || i >= len(e.observable) {
		return false
	}
	return e.observable[i]
}

// Controllable reports the controllable flag for the given 0-based
// controller slot directly (no off-by-one remap; that convention is
// specific to observability queries against the global-view index 0).
func (e *Event) Controllable(controller int) bool {
	if controller < 0 || controller >= len(e.controllable) {
		return false
	}
	return e.controllable[controller]
}

// VectorAt returns the scalar label component controller observes,
// applying the same off-by-one remap as Observable: controller 0 (the
// global view) and controller 1 (the first real controller) both read
// tuple index 0; controller i>=1 reads tuple index i-1. This keeps a
// single consistent indexing convention across the vector label and the
// observable/controllable arrays for the controller argument space
// [0, n_controllers] that the subset-construction engine accepts.
func (e *Event) VectorAt(controller int) (string, error) {
	i := controller - 1
	if i < 0 {
		i = 0
	}
	return e.label.At(i)
}

// Equal reports whether two events carry the same scalar label (the
// package's event-equality contract).
func (e *Event) Equal(other *Event) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.label.Equal(other.label)
}

func newEvent(id EventID, label Label, observable, controllable []bool) *Event {
	obs := make([]bool, len(observable))
	copy(obs, observable)
	ctl := make([]bool, len(controllable))
	copy(ctl, controllable)
	return &Event{id: id, label: label, observable: obs, controllable: ctl}
}
