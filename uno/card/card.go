package card

import (
	"fmt"

	"github.com/atakhatri/UNO-sub000/uno/card/color"
)

// Value is a card face: a digit 0-9 or one of the action faces.
type Value string

const (
	Skip         Value = "skip"
	Reverse      Value = "reverse"
	DrawTwo      Value = "draw-two"
	Wild         Value = "wild"
	WildDrawFour Value = "wild-draw-four"
)

// Number returns the face for a digit card.
func Number(n int) Value {
	return Value(fmt.Sprintf("%d", n))
}

// Card is an immutable value except for one mutation: the color of a wild
// card is set in place when the acting player resolves the color choice.
// Cards carry no identity; duplicates compare equal structurally.
type Card struct {
	Color color.Color `json:"color"`
	Value Value       `json:"value"`
}

func New(c color.Color, v Value) Card {
	return Card{Color: c, Value: v}
}

func (c Card) Equal(other Card) bool {
	return c.Color == other.Color && c.Value == other.Value
}

// Wild reports whether the card is in the wild family, i.e. was printed
// black and requires a color choice when played.
func (c Card) Wild() bool {
	return c.Value == Wild || c.Value == WildDrawFour
}

func (c Card) String() string {
	return c.Color.Paintf("[%s]", c.Value)
}

// BuildDeck produces the canonical 108-card multiset: per color one 0, two
// each of 1-9, skip, reverse and draw-two, plus four wild and four
// wild-draw-four black cards.
func BuildDeck() []Card {
	cards := make([]Card, 0, 108)
	for _, col := range color.Wildable {
		cards = append(cards, New(col, Number(0)))
		for n := 1; n <= 9; n++ {
			numberCard := New(col, Number(n))
			cards = append(cards, numberCard, numberCard)
		}
		cards = append(cards,
			New(col, Skip), New(col, Skip),
			New(col, Reverse), New(col, Reverse),
			New(col, DrawTwo), New(col, DrawTwo),
		)
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, New(color.Black, Wild), New(color.Black, WildDrawFour))
	}
	return cards
}
