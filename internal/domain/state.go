package domain

// TurnView is the read-only picture of the table handed to a seat when it is
// asked to act. Slices are copies; changing them has no effect on the game.
type TurnView struct {
	Seat      int
	Hand      []Card  // sorted ascending
	Leading   []Card  // empty when the seat leads
	Pattern   Pattern // nil when the seat leads
	Leader    bool
	Required  *Card // card the lead must contain, set only on the opening lead
	HandSizes []int // indexed by seat
}

// Selection is a seat's answer to a TurnView: positions in the hand, or a pass.
type Selection struct {
	Pass    bool
	Indices []int
}

// PassSelection returns a pass.
func PassSelection() Selection {
	return Selection{Pass: true}
}

// Choose returns a selection of hand positions.
func Choose(indices ...int) Selection {
	return Selection{Indices: indices}
}
