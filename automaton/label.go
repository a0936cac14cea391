package automaton

import (
	"fmt"
	"strings"
)

// Epsilon is the reserved label component denoting "no action observable
// by this controller". It contains a NUL byte so no human-authored label
// can collide with it.
const Epsilon = "\x00ε"

// Label is either a scalar string or an ordered tuple of scalar strings,
// one per controller (or a compatible arity). A scalar label and a
// single-element vector label with the same string are equal.
type Label struct {
	scalar string
	tuple  []string
	vector bool
}

// NewScalarLabel builds a scalar label.
func NewScalarLabel(s string) Label {
	return Label{scalar: s}
}

// NewVectorLabel builds a vector label over the given per-controller
// scalars.
func NewVectorLabel(scalars []string) Label {
	tuple := make([]string, len(scalars))
	copy(tuple, scalars)
	return Label{tuple: tuple, vector: true}
}

// Arity returns the number of scalar components: 1 for a scalar label,
// len(tuple) for a vector label.
func (l Label) Arity() int {
	if l.vector {
		return len(l.tuple)
	}
	return 1
}

// At returns the i-th scalar component.
func (l Label) At(i int) (string, error) {
	if i < 0 || i >= l.Arity() {
		return "", fmt.Errorf("label index %d out of range [0,%d): %w", i, l.Arity(), ErrInvalidArgument)
	}
	if l.vector {
		return l.tuple[i], nil
	}
	return l.scalar, nil
}

// String renders the label as "s" for a scalar, "<s0,s1,...>" for a
// vector.
func (l Label) String() string {
	if !l.vector {
		return l.scalar
	}
	return "<" + strings.Join(l.tuple, ",") + ">"
}

// scalarForm returns the single string this label reduces to when
// compared against another label: the scalar itself, or the sole tuple
// element for an arity-1 vector. Used only by equality/dedup keys that
// must treat a scalar and an arity-1 vector with the same content as
// equal.
func (l Label) scalarForm() (string, bool) {
	if !l.vector {
		return l.scalar, true
	}
	if len(l.tuple) == 1 {
		return l.tuple[0], true
	}
	return "", false
}

// Equal reports whether two labels compare equal: element-wise for two
// vectors of the same arity, or by content when both reduce to a single
// scalar (a scalar label and an arity-1 vector label with the same
// string are equal).
func (l Label) Equal(other Label) bool {
	if ls, ok := l.scalarForm(); ok {
		if os, ok := other.scalarForm(); ok {
			return ls == os
		}
	}
	if l.Arity() != other.Arity() {
		return false
	}
	for i := 0; i < l.Arity(); i++ {
		a, _ := l.At(i)
		b, _ := other.At(i)
		if a != b {
			return false
		}
	}
	return true
}
