package domain

// Single is one card.
type Single struct{}

func (Single) Kind() Kind { return KindSingle }

func (Single) Matches(cards []Card) bool {
	return len(cards) == 1
}

func (Single) Representative(cards []Card) Card {
	return cards[0]
}

func (s Single) Outranks(cards, reference []Card) bool {
	return outranks(s, cards, reference)
}

// Generate returns the lowest card that beats the leading card.
func (s Single) Generate(hand, leading []Card) []Card {
	top := s.Representative(leading)
	for _, c := range sortedCopy(hand) {
		if c.Beats(top) {
			return []Card{c}
		}
	}
	return nil
}
