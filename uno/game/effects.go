package game

import (
	"github.com/atakhatri/UNO-sub000/uno/card"
	"github.com/atakhatri/UNO-sub000/uno/card/color"
)

// Effect describes one observable consequence of an applied action. The
// reducer returns effects instead of emitting anywhere itself; the session
// controller forwards them to the event emitters.
type Effect interface{}

type PlayerJoinedEffect struct {
	Seat int
	Name string
}

type GameStartedEffect struct {
	Starter card.Card
}

type CardPlayedEffect struct {
	Seat int
	Name string
	Card card.Card
}

type CardsDrawnEffect struct {
	Seat int
	Name string
	// Count is how many cards actually moved; Shortfall how many the draw
	// came up short after deck and pile were both exhausted.
	Count     int
	Shortfall int
	Penalty   bool
}

type TurnSkippedEffect struct {
	Seat int
	Name string
}

type OrderReversedEffect struct{}

type ColorPickedEffect struct {
	Seat  int
	Name  string
	Color color.Color
}

type UnoCalledEffect struct {
	Seat int
	Name string
}

type UnoPenaltyEffect struct {
	Seat int
	Name string
}

type PileReshuffledEffect struct {
	Count int
}

type PlayerLeftEffect struct {
	Name string
}

type GameFinishedEffect struct {
	Winner     string
	WinnerName string
}
