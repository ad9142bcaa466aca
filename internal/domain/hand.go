package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSelection is returned when hand indices are empty, repeated or out of range.
var ErrInvalidSelection = errors.New("invalid card selection")

// Hand holds the cards of one seat. Cards leave the hand by position only,
// so two equal-looking entries can never be confused.
type Hand struct {
	cards []Card
}

// NewHand returns a sorted hand holding a copy of the given cards.
func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: append([]Card(nil), cards...)}
	h.Sort()
	return h
}

// Add appends a dealt card. Callers sort once dealing is done.
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Sort orders the hand by ascending power.
func (h *Hand) Sort() {
	SortCards(h.cards)
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the hand in its current order.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// Contains reports whether the hand holds c.
func (h *Hand) Contains(c Card) bool {
	return ContainsCard(h.cards, c)
}

// Select returns the cards at the given positions, in the order requested.
func (h *Hand) Select(indices []int) ([]Card, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: nothing selected", ErrInvalidSelection)
	}
	seen := make(map[int]bool, len(indices))
	out := make([]Card, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(h.cards) {
			return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidSelection, idx, len(h.cards))
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: index %d repeated", ErrInvalidSelection, idx)
		}
		seen[idx] = true
		out = append(out, h.cards[idx])
	}
	return out, nil
}

// Remove drops the cards at the given positions. The hand is unchanged on error.
func (h *Hand) Remove(indices []int) error {
	if _, err := h.Select(indices); err != nil {
		return err
	}
	drop := make(map[int]bool, len(indices))
	for _, idx := range indices {
		drop[idx] = true
	}
	kept := make([]Card, 0, len(h.cards)-len(indices))
	for i, c := range h.cards {
		if !drop[i] {
			kept = append(kept, c)
		}
	}
	h.cards = kept
	return nil
}

// IndicesOf maps cards back to their positions in the hand.
func (h *Hand) IndicesOf(cards []Card) ([]int, error) {
	return IndicesOf(h.cards, cards)
}

// IndicesOf maps each card to its position in hand, using each position at most once.
func IndicesOf(hand, cards []Card) ([]int, error) {
	used := make(map[int]bool, len(cards))
	out := make([]int, 0, len(cards))
	for _, c := range cards {
		found := -1
		for i, hc := range hand {
			if hc == c && !used[i] {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("%w: %s not in hand", ErrInvalidSelection, c)
		}
		used[found] = true
		out = append(out, found)
	}
	return out, nil
}
