package ui

// State is the selection held by a StepSlider. Value is the committed
// index reported to the host; Pending tracks the index under the pointer
// while a drag is in progress.
type State struct {
	Value    int
	Pending  int
	Dragging bool
}

// Displayed is the index the slider should currently draw.
func (s State) Displayed() int {
	if s.Dragging {
		return s.Pending
	}
	return s.Value
}

// Action is an input to Reduce.
type Action interface{ isAction() }

// Tap selects an option directly.
type Tap struct{ Index int }

// DragMove moves the provisional selection while dragging.
type DragMove struct{ Index int }

// DragRelease commits the provisional selection.
type DragRelease struct{}

// Sync replaces the selection with a host-supplied value without reporting
// it back.
type Sync struct{ Value int }

func (Tap) isAction()         {}
func (DragMove) isAction()    {}
func (DragRelease) isAction() {}
func (Sync) isAction()        {}

// Reduce returns the state after applying a. The second result is true when
// the action commits a selection that must be reported to the host.
func Reduce(s State, a Action) (State, bool) {
	switch a := a.(type) {
	case Tap:
		return State{Value: a.Index}, true
	case DragMove:
		if !s.Dragging {
			s.Dragging = true
		}
		s.Pending = a.Index
		return s, false
	case DragRelease:
		if !s.Dragging {
			return s, false
		}
		return State{Value: s.Pending}, true
	case Sync:
		return State{Value: a.Value}, false
	}
	return s, false
}
