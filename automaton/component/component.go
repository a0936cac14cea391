// Package component presents plants and specifications to an
// incremental algorithm in a prescribed order. It is a sibling package
// to automaton, the way a symbol-table package sits beside a grammar
// package: it imports automaton only for the Automaton type it orders
// and the ErrUnsupported sentinel, never the other way around.
package component

import "github.com/nihei9/ustructure/automaton"

// Iterable yields each plant and specification exactly once, filtering
// out anything already present in the "already checked" sets. A fresh
// call to All always restarts from the beginning; no cursor state is
// retained between calls.
type Iterable interface {
	All() []*automaton.Automaton
}

// OrderedInput holds the filtered, de-duplicated plant and spec sets an
// Iterable strategy draws from. Items present in gPrime or hPrime are
// dropped at construction time.
type OrderedInput struct {
	plants []*automaton.Automaton
	specs  []*automaton.Automaton
}

func newOrderedInput(plants, specs, gPrime, hPrime []*automaton.Automaton) OrderedInput {
	excluded := make(map[*automaton.Automaton]struct{}, len(gPrime)+len(hPrime))
	for _, p := range gPrime {
		excluded[p] = struct{}{}
	}
	for _, s := range hPrime {
		excluded[s] = struct{}{}
	}

	filter := func(in []*automaton.Automaton) []*automaton.Automaton {
		out := make([]*automaton.Automaton, 0, len(in))
		for _, a := range in {
			if _, ok := excluded[a]; ok {
				continue
			}
			excluded[a] = struct{}{}
			out = append(out, a)
		}
		return out
	}

	return OrderedInput{
		plants: filter(plants),
		specs:  filter(specs),
	}
}

// Plants returns the filtered plant set in input order.
func (o OrderedInput) Plants() []*automaton.Automaton { return append([]*automaton.Automaton(nil), o.plants...) }

// Specs returns the filtered specification set in input order.
func (o OrderedInput) Specs() []*automaton.Automaton { return append([]*automaton.Automaton(nil), o.specs...) }
