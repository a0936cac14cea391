package automaton

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
)

// StateSet is a state of a SubsetConstruction: an equivalence class of
// UStructure state IDs. Its ID is a stable, collision-free (within one
// construction) function of the member ID set, computed by sorting the
// member IDs, concatenating their byte encodings, and hashing the result
// with SHA-256.
type StateSet struct {
	*State
	members map[StateID]*State
}

func stateSetID(memberIDs []StateID) StateID {
	sorted := append([]StateID(nil), memberIDs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	b := make([]byte, 0, 8*len(sorted))
	for _, id := range sorted {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(id))
		b = append(b, buf[:]...)
	}
	sum := sha256.Sum256(b)
	// Fold the 32-byte digest into a nonzero 63-bit value: bit 63 is
	// cleared so the result stays within a signed 64-bit range for safe
	// arithmetic, and a zero fold is bumped to 1 so it never collides
	// with the StateID-0 sentinel.
	id := StateID(binary.BigEndian.Uint64(sum[:8]) &^ (1 << 63))
	if id == StateIDNil {
		id = 1
	}
	return id
}

func stateSetLabel(sorted []StateID) string {
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = id.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// newStateSet builds a StateSet over the given members. Members must be
// non-empty.
func newStateSet(members []*State) (*StateSet, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("a state set needs at least one member: %w", ErrInvalidArgument)
	}

	dedup := map[StateID]*State{}
	for _, m := range members {
		dedup[m.id] = m
	}
	ids := make([]StateID, 0, len(dedup))
	for id := range dedup {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	marked := false
	for _, id := range ids {
		if dedup[id].marked {
			marked = true
			break
		}
	}

	id := stateSetID(ids)
	return &StateSet{
		State:   newState(id, stateSetLabel(ids), marked),
		members: dedup,
	}, nil
}

// Members returns the member states, in ascending-ID order.
func (ss *StateSet) Members() []*State {
	ids := make([]StateID, 0, len(ss.members))
	for id := range ss.members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*State, len(ids))
	for i, id := range ids {
		out[i] = ss.members[id]
	}
	return out
}

// HasMember reports whether id belongs to this state set.
func (ss *StateSet) HasMember(id StateID) bool {
	_, ok := ss.members[id]
	return ok
}

// Equal reports set equality of member IDs.
func (ss *StateSet) Equal(other *StateSet) bool {
	if other == nil || len(ss.members) != len(other.members) {
		return false
	}
	for id := range ss.members {
		if _, ok := other.members[id]; !ok {
			return false
		}
	}
	return true
}

// eventTargets pairs an event with the ordered, deduplicated set of
// target state IDs reached by transitions labeled with that event.
type eventTargets struct {
	event   *Event
	targets []StateID
}

// GroupAndGetObservableTransitions groups, by event, the transitions
// leaving any member state that are observable to controller: a
// transition (u, e, w) is included iff e.vector.at(controller) != EPSILON
// and (controller == 0 or e.Observable(controller)). All targets per
// event are preserved, in first-seen order, across member states visited
// in ascending-ID order and transitions visited in insertion order —
// this is what gives the subset construction its deterministic event
// iteration order.
func (ss *StateSet) GroupAndGetObservableTransitions(controller int) ([]eventTargets, error) {
	order := []EventID{}
	byEvent := map[EventID]*eventTargets{}
	seenTarget := map[EventID]map[StateID]struct{}{}

	for _, m := range ss.Members() {
		for _, t := range m.Transitions() {
			comp, err := t.event.VectorAt(controller)
			if err != nil {
				return nil, err
			}
			if comp == Epsilon {
				continue
			}
			if !t.event.Observable(controller) {
				continue
			}

			et, ok := byEvent[t.event.id]
			if !ok {
				et = &eventTargets{event: t.event}
				byEvent[t.event.id] = et
				seenTarget[t.event.id] = map[StateID]struct{}{}
				order = append(order, t.event.id)
			}
			if _, dup := seenTarget[t.event.id][t.target]; dup {
				continue
			}
			seenTarget[t.event.id][t.target] = struct{}{}
			et.targets = append(et.targets, t.target)
		}
	}

	out := make([]eventTargets, len(order))
	for i, id := range order {
		out[i] = *byEvent[id]
	}
	return out, nil
}
