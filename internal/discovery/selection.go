package discovery

// Selection is either Unselected (zero value) or Selected(id).
type Selection struct {
	id       string
	selected bool
}

// Selected returns the Selected(id) state.
func Selected(id string) Selection { return Selection{id: id, selected: true} }

// ID returns the selected id and whether anything is selected.
func (s Selection) ID() (string, bool) { return s.id, s.selected }

func (s Selection) IsSelected() bool { return s.selected }

// Transition names the outcome of a select call.
type Transition int

const (
	// TransitionIgnored: the id is not in the catalog; state unchanged.
	TransitionIgnored Transition = iota
	// TransitionSelected: Unselected -> Selected(id).
	TransitionSelected
	// TransitionSwitched: Selected(a) -> Selected(b), no intermediate state.
	TransitionSwitched
	// TransitionCleared: Selected(id) -> Unselected by re-selecting id.
	TransitionCleared
)

func (t Transition) String() string {
	switch t {
	case TransitionSelected:
		return "selected"
	case TransitionSwitched:
		return "switched"
	case TransitionCleared:
		return "cleared"
	default:
		return "ignored"
	}
}

// Entered reports whether the transition entered a new Selected state.
func (t Transition) Entered() bool { return t == TransitionSelected || t == TransitionSwitched }

// Next computes the select(id) transition. known reports whether id exists
// in the current catalog.
func Next(cur Selection, id string, known bool) (Selection, Transition) {
	if !known {
		return cur, TransitionIgnored
	}
	curID, ok := cur.ID()
	switch {
	case !ok:
		return Selected(id), TransitionSelected
	case curID == id:
		return Selection{}, TransitionCleared
	default:
		return Selected(id), TransitionSwitched
	}
}
