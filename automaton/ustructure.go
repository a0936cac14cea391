package automaton

// UStructure is the composite automaton over a multi-controller system
// that serves as the sole valid source for subset construction. It adds
// nothing to Automaton's storage; it is the type the engine requires so
// a caller cannot accidentally run subset construction over a plain
// plant/specification Automaton that hasn't been composed.
type UStructure struct {
	*Automaton
}

// NewUStructure creates an empty UStructure with the given controller
// count.
func NewUStructure(nControllers int) *UStructure {
	return &UStructure{Automaton: NewAutomaton(nControllers)}
}

// IsObservable reports whether the event with the given label is
// observable by controller, using the off-by-one convention: controller
// 0 is the global/system view (always observable); controllers 1..n
// read observable[controller-1].
func (u *UStructure) IsObservable(eventLabel Label, controller int) (bool, error) {
	e, err := u.EventByLabel(eventLabel)
	if err != nil {
		return false, err
	}
	return e.Observable(controller), nil
}
