package internal

import (
	"sort"

	"bigtwo/internal/domain"
)

// Lead is a legal opening play for a fresh trick.
type Lead struct {
	Cards          []domain.Card
	Kind           domain.Kind
	Representative domain.Card
}

// GetLeadMoves returns every single, every pair, and for straights and full
// houses one canonical candidate per rank combination built from the lowest
// cards of each rank. Candidates are ordered singles, pairs, straights, full
// houses, each group ascending.
func GetLeadMoves(hand []domain.Card) []Lead {
	sorted := append([]domain.Card(nil), hand...)
	domain.SortCards(sorted)
	groups := rankGroups(sorted)

	var moves []Lead
	moves = append(moves, findAllSingles(sorted)...)
	moves = append(moves, findAllPairs(groups)...)
	moves = append(moves, findAllStraights(groups)...)
	moves = append(moves, findAllFullHouses(groups)...)
	return moves
}

// FilterContaining keeps the leads that include card.
func FilterContaining(leads []Lead, card domain.Card) []Lead {
	var out []Lead
	for _, l := range leads {
		if domain.ContainsCard(l.Cards, card) {
			out = append(out, l)
		}
	}
	return out
}

func newLead(p domain.Pattern, cards []domain.Card) Lead {
	return Lead{Cards: cards, Kind: p.Kind(), Representative: p.Representative(cards)}
}

func findAllSingles(hand []domain.Card) []Lead {
	moves := make([]Lead, 0, len(hand))
	for _, c := range hand {
		moves = append(moves, newLead(domain.Single{}, []domain.Card{c}))
	}
	return moves
}

func findAllPairs(groups [][]domain.Card) []Lead {
	var moves []Lead
	for _, g := range groups {
		for i := 0; i < len(g)-1; i++ {
			for j := i + 1; j < len(g); j++ {
				moves = append(moves, newLead(domain.Pair{}, []domain.Card{g[i], g[j]}))
			}
		}
	}
	return moves
}

func findAllStraights(groups [][]domain.Card) []Lead {
	byRank := make(map[domain.Rank][]domain.Card, len(groups))
	for _, g := range groups {
		byRank[g[0].Rank] = g
	}

	var moves []Lead
	for start := domain.Three; start+4 <= domain.Two; start++ {
		run := make([]domain.Card, 0, 5)
		for r := start; r < start+5; r++ {
			g, ok := byRank[r]
			if !ok {
				break
			}
			run = append(run, g[0])
		}
		if len(run) == 5 {
			moves = append(moves, newLead(domain.Straight{}, run))
		}
	}
	return moves
}

func findAllFullHouses(groups [][]domain.Card) []Lead {
	var moves []Lead
	for _, t := range groups {
		if len(t) < 3 {
			continue
		}
		for _, p := range groups {
			if len(p) < 2 || p[0].Rank == t[0].Rank {
				continue
			}
			cards := make([]domain.Card, 0, 5)
			cards = append(cards, t[:3]...)
			cards = append(cards, p[:2]...)
			domain.SortCards(cards)
			moves = append(moves, newLead(domain.FullHouse{}, cards))
		}
	}
	return moves
}

// rankGroups splits a sorted hand into same-rank runs, lowest rank first.
func rankGroups(sorted []domain.Card) [][]domain.Card {
	var groups [][]domain.Card
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].Rank == sorted[i].Rank {
			j++
		}
		groups = append(groups, sorted[i:j:j])
		i = j
	}
	return groups
}

// SortByRepresentative orders leads by ascending representative, fewer cards
// first on ties. The sort is stable.
func SortByRepresentative(leads []Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		if leads[i].Representative != leads[j].Representative {
			return leads[j].Representative.Beats(leads[i].Representative)
		}
		return len(leads[i].Cards) < len(leads[j].Cards)
	})
}
