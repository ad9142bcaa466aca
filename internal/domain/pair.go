package domain

// Pair is two cards of the same rank.
type Pair struct{}

func (Pair) Kind() Kind { return KindPair }

func (Pair) Matches(cards []Card) bool {
	return len(cards) == 2 && cards[0].Rank == cards[1].Rank
}

// Representative is the higher of the two cards.
func (Pair) Representative(cards []Card) Card {
	if cards[0].Beats(cards[1]) {
		return cards[0]
	}
	return cards[1]
}

func (p Pair) Outranks(cards, reference []Card) bool {
	return outranks(p, cards, reference)
}

// Generate keeps only cards that individually beat the leading pair and
// returns the first adjacent same-rank couple among them.
func (p Pair) Generate(hand, leading []Card) []Card {
	top := p.Representative(leading)

	var candidates []Card
	for _, c := range sortedCopy(hand) {
		if c.Beats(top) {
			candidates = append(candidates, c)
		}
	}

	for i := 1; i < len(candidates); i++ {
		if candidates[i].Rank == candidates[i-1].Rank {
			return []Card{candidates[i-1], candidates[i]}
		}
	}
	return nil
}
