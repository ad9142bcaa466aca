package domain

// Trick is the round currently being played: the bound pattern, the standing
// play and who made it.
type Trick struct {
	pattern    Pattern
	leading    []Card
	leaderSeat int
	floorSeat  int

	firstTrickCompleted bool
}

// NewTrick returns an open trick with no lead.
func NewTrick() *Trick {
	return &Trick{leaderSeat: -1, floorSeat: -1}
}

// Pattern is the pattern bound by the lead, or nil before the lead.
func (t *Trick) Pattern() Pattern {
	return t.pattern
}

// Leading returns a copy of the standing play.
func (t *Trick) Leading() []Card {
	return append([]Card(nil), t.leading...)
}

// Open reports whether the trick is waiting for a lead.
func (t *Trick) Open() bool {
	return len(t.leading) == 0
}

// LeaderSeat is the seat that opened the trick.
func (t *Trick) LeaderSeat() int {
	return t.leaderSeat
}

// FloorSeat is the seat holding the standing play. It survives Close and
// names the next leader.
func (t *Trick) FloorSeat() int {
	return t.floorSeat
}

// FirstTrickCompleted reports whether the opening lead of the game was accepted.
func (t *Trick) FirstTrickCompleted() bool {
	return t.firstTrickCompleted
}

// MarkFirstTrickCompleted lifts the opening-card rule for the rest of the game.
func (t *Trick) MarkFirstTrickCompleted() {
	t.firstTrickCompleted = true
}

// Bind starts a trick with a leading play of pattern p.
func (t *Trick) Bind(p Pattern, cards []Card, seat int) {
	t.pattern = p
	t.leading = append([]Card(nil), cards...)
	t.leaderSeat = seat
	t.floorSeat = seat
}

// Check validates a follower's play against the trick without changing it.
func (t *Trick) Check(cards []Card) error {
	if t.pattern == nil {
		return ErrNoPattern
	}
	if !t.pattern.Matches(cards) {
		return ErrPatternMismatch
	}
	if !t.pattern.Outranks(cards, t.leading) {
		return ErrNotHigher
	}
	return nil
}

// Follow accepts a follower's play as the new standing play.
func (t *Trick) Follow(cards []Card, seat int) error {
	if err := t.Check(cards); err != nil {
		return err
	}
	t.leading = append([]Card(nil), cards...)
	t.floorSeat = seat
	return nil
}

// Close ends the trick. The floor seat is kept for the next lead.
func (t *Trick) Close() {
	t.pattern = nil
	t.leading = nil
	t.leaderSeat = -1
}
