package domain

// FullHouse is three cards of one rank plus two of another.
type FullHouse struct{}

func (FullHouse) Kind() Kind { return KindFullHouse }

func (FullHouse) Matches(cards []Card) bool {
	if len(cards) != 5 {
		return false
	}
	groups := groupByRank(cards)
	if len(groups) != 2 {
		return false
	}
	a, b := len(groups[0]), len(groups[1])
	return (a == 3 && b == 2) || (a == 2 && b == 3)
}

// Representative is the highest card of the three-of-a-kind. The pair never
// affects ranking.
func (FullHouse) Representative(cards []Card) Card {
	for _, g := range groupByRank(cards) {
		if len(g) == 3 {
			return g[2]
		}
	}
	high, _ := Highest(cards)
	return high
}

func (f FullHouse) Outranks(cards, reference []Card) bool {
	return outranks(f, cards, reference)
}

// Generate is a single greedy pass over the rank groups, lowest rank first:
// the first group of three or more whose three lowest cards beat the leading
// triple, and the first other group of two or more. It does not search for
// the strongest or cheapest full house.
func (f FullHouse) Generate(hand, leading []Card) []Card {
	if len(hand) < 5 {
		return nil
	}
	top := f.Representative(leading)
	groups := groupByRank(hand)

	var triple []Card
	for _, g := range groups {
		if len(g) >= 3 && g[2].Beats(top) {
			triple = g[:3]
			break
		}
	}
	if triple == nil {
		return nil
	}

	for _, g := range groups {
		if len(g) >= 2 && g[0].Rank != triple[0].Rank {
			out := make([]Card, 0, 5)
			out = append(out, triple...)
			return append(out, g[:2]...)
		}
	}
	return nil
}
