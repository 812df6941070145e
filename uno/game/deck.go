package game

import (
	"math/rand"

	"github.com/atakhatri/UNO-sub000/uno/card"
	"github.com/atakhatri/UNO-sub000/uno/card/color"
)

// Shuffle returns a fresh uniform permutation of cards, leaving the input
// untouched.
func Shuffle(cards []card.Card) []card.Card {
	shuffled := make([]card.Card, len(cards))
	copy(shuffled, cards)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Draw splits the front amount cards off the stack. When fewer cards remain
// the whole stack is drawn; callers detect the shortfall by comparing
// lengths, no error is raised.
func Draw(cards []card.Card, amount int) (drawn, remaining []card.Card) {
	if amount > len(cards) {
		amount = len(cards)
	}
	drawn = append([]card.Card(nil), cards[:amount]...)
	remaining = append([]card.Card(nil), cards[amount:]...)
	return drawn, remaining
}

// replenishDeck lifts every pile card except the current top, resets wild
// cards back to black and shuffles them into a new deck. The pile keeps
// just its top card.
func replenishDeck(s *State) int {
	if len(s.Pile) <= 1 {
		return 0
	}
	lifted := append([]card.Card(nil), s.Pile[:len(s.Pile)-1]...)
	for i := range lifted {
		if lifted[i].Wild() {
			lifted[i].Color = color.Black
		}
	}
	s.Pile = s.Pile[len(s.Pile)-1:]
	s.Deck = append(s.Deck, Shuffle(lifted)...)
	return len(lifted)
}
