package domain

const straightLen = 5

// Straight is five cards of consecutive rank. The run may end at 2 but never wraps.
type Straight struct{}

func (Straight) Kind() Kind { return KindStraight }

func (Straight) Matches(cards []Card) bool {
	if len(cards) != straightLen {
		return false
	}
	sorted := sortedCopy(cards)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Rank != sorted[i-1].Rank+1 {
			return false
		}
	}
	return true
}

// Representative is the top card of the run.
func (Straight) Representative(cards []Card) Card {
	sorted := sortedCopy(cards)
	return sorted[len(sorted)-1]
}

func (s Straight) Outranks(cards, reference []Card) bool {
	return outranks(s, cards, reference)
}

// Generate walks the hand from its highest card down, extending a run of
// consecutive ranks. Repeated ranks are skipped so the run keeps the highest
// suit of each rank. The first completed run that beats leading is returned
// highest card first.
func (s Straight) Generate(hand, leading []Card) []Card {
	if len(hand) < straightLen {
		return nil
	}
	cards := sortedCopy(hand)

	run := []Card{cards[len(cards)-1]}
	for i := len(cards) - 2; i >= 0; i-- {
		c := cards[i]
		prev := run[len(run)-1]
		switch {
		case c.Rank == prev.Rank:
			continue
		case c.Rank+1 == prev.Rank:
			run = append(run, c)
		default:
			run = []Card{c}
			continue
		}

		if len(run) == straightLen {
			if s.Outranks(run, leading) {
				return run
			}
			run = append([]Card(nil), run[1:]...)
		}
	}
	return nil
}
