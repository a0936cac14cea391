package component

import (
	"sort"

	"github.com/nihei9/ustructure/automaton"
)

// Comparator orders items within one class (plants, or specs) for
// SpecOverPlant. The default is input-set insertion order.
type Comparator func(a, b *automaton.Automaton) bool

// SpecOverPlant is the heuristic-ordered strategy: every specification
// precedes every plant. Relative order within each class is input-set
// insertion order by default, or a caller-supplied Comparator.
type SpecOverPlant struct {
	input      OrderedInput
	comparator Comparator
}

// NewSpecOverPlant builds a SpecOverPlant iterable over the given plant
// and specification sets, filtering out anything in gPrime or hPrime.
func NewSpecOverPlant(plants, specs, gPrime, hPrime []*automaton.Automaton) *SpecOverPlant {
	return &SpecOverPlant{input: newOrderedInput(plants, specs, gPrime, hPrime)}
}

// SetComparator replaces the ordering used within each class.
func (s *SpecOverPlant) SetComparator(cmp Comparator) {
	s.comparator = cmp
}

// All returns specs then plants, each ordered by the active comparator
// (default: insertion order).
func (s *SpecOverPlant) All() []*automaton.Automaton {
	specs := s.input.Specs()
	plants := s.input.Plants()
	if s.comparator != nil {
		sort.SliceStable(specs, func(i, j int) bool { return s.comparator(specs[i], specs[j]) })
		sort.SliceStable(plants, func(i, j int) bool { return s.comparator(plants[i], plants[j]) })
	}

	out := make([]*automaton.Automaton, 0, len(specs)+len(plants))
	out = append(out, specs...)
	out = append(out, plants...)
	return out
}

