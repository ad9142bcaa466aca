package domain

import (
	"errors"
	"math/rand"
	"sort"
)

// ErrEmptyDeck is returned when dealing from a deck with no cards left.
var ErrEmptyDeck = errors.New("no card in deck")

// Deck is an ordered 52-card deck. Cards are dealt from the end.
type Deck struct {
	cards []Card
}

// NewDeck returns a deck holding all 52 cards in canonical order.
func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for s := Club; s <= Spade; s++ {
		for r := Three; r <= Two; r++ {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle permutes the deck in place.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

// Deal removes and returns the top card.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, nil
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in deck order.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// SortCards orders cards by ascending power.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Power() < cards[j].Power()
	})
}

// sortedCopy returns the cards in ascending order without touching the input.
func sortedCopy(cards []Card) []Card {
	out := append([]Card(nil), cards...)
	SortCards(out)
	return out
}

// Lowest returns the lowest card of a set.
func Lowest(cards []Card) (Card, bool) {
	if len(cards) == 0 {
		return Card{}, false
	}
	low := cards[0]
	for _, c := range cards[1:] {
		if low.Beats(c) {
			low = c
		}
	}
	return low, true
}

// Highest returns the highest card of a set.
func Highest(cards []Card) (Card, bool) {
	if len(cards) == 0 {
		return Card{}, false
	}
	high := cards[0]
	for _, c := range cards[1:] {
		if c.Beats(high) {
			high = c
		}
	}
	return high, true
}

// ContainsCard reports whether target is one of cards.
func ContainsCard(cards []Card, target Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}
