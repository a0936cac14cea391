package component

import (
	"fmt"

	"github.com/nihei9/ustructure/automaton"
)

// Alternating yields plant, spec, plant, spec, ... draining whichever
// side is exhausted last. It does not accept a custom ordering.
type Alternating struct {
	input OrderedInput
}

// NewAlternating builds an Alternating iterable over the given plant
// and specification sets, filtering out anything in gPrime or hPrime.
func NewAlternating(plants, specs, gPrime, hPrime []*automaton.Automaton) *Alternating {
	return &Alternating{input: newOrderedInput(plants, specs, gPrime, hPrime)}
}

// SetComparator always fails: the alternating strategy has no custom
// ordering to replace.
func (a *Alternating) SetComparator(Comparator) error {
	return fmt.Errorf("alternating iterable does not support a custom ordering: %w", automaton.ErrUnsupported)
}

// All interleaves plant, spec, plant, spec, ..., appending whatever
// remains of the longer side once the shorter one is exhausted.
func (a *Alternating) All() []*automaton.Automaton {
	plants := a.input.Plants()
	specs := a.input.Specs()

	out := make([]*automaton.Automaton, 0, len(plants)+len(specs))
	i, j := 0, 0
	for i < len(plants) || j < len(specs) {
		if i < len(plants) {
			out = append(out, plants[i])
			i++
		}
		if j < len(specs) {
			out = append(out, specs[j])
			j++
		}
	}
	return out
}
