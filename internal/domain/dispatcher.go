package domain

// Dispatcher tries patterns in a fixed priority and stops at the first match.
type Dispatcher struct {
	patterns []Pattern
}

// NewDispatcher builds a dispatcher over the given patterns, or the built-in
// patterns when none are supplied.
func NewDispatcher(patterns ...Pattern) *Dispatcher {
	if len(patterns) == 0 {
		patterns = Patterns()
	}
	return &Dispatcher{patterns: patterns}
}

// Classify returns the first pattern matching cards.
func (d *Dispatcher) Classify(cards []Card) (Pattern, error) {
	for _, p := range d.patterns {
		if p.Matches(cards) {
			return p, nil
		}
	}
	return nil, ErrNoPattern
}

// ClassifyAndBind classifies a leading play and, on success, binds its
// pattern and cards to the trick with seat holding the lead. The trick is
// untouched when nothing matches.
func (d *Dispatcher) ClassifyAndBind(cards []Card, trick *Trick, seat int) (Kind, error) {
	p, err := d.Classify(cards)
	if err != nil {
		return KindNone, err
	}
	trick.Bind(p, cards, seat)
	return p.Kind(), nil
}
