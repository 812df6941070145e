package game

import (
	"github.com/atakhatri/UNO-sub000/uno/card"
	"github.com/atakhatri/UNO-sub000/uno/card/color"
)

type ActionType string

const (
	ActionJoin        ActionType = "join"
	ActionStart       ActionType = "start"
	ActionPlay        ActionType = "play"
	ActionDraw        ActionType = "draw"
	ActionSelectColor ActionType = "select-color"
	ActionCallUno     ActionType = "call-uno"
	ActionCheckUno    ActionType = "check-uno"
	ActionLeave       ActionType = "leave"
)

// Action is one player intent submitted against a snapshot. UID identifies
// the actor; the remaining fields are per-type payload.
type Action struct {
	Type ActionType `json:"type"`
	UID  string     `json:"uid"`

	// Join.
	Name string `json:"name,omitempty"`
	Bot  bool   `json:"bot,omitempty"`

	// Play. Cards carry no identity, so the play names a hand index and the
	// engine cross-checks the card at that index structurally.
	HandIndex int        `json:"handIndex,omitempty"`
	Card      *card.Card `json:"card,omitempty"`

	// SelectColor.
	Color color.Color `json:"color,omitempty"`
}

func Join(uid, name string, bot bool) Action {
	return Action{Type: ActionJoin, UID: uid, Name: name, Bot: bot}
}

func Start(uid string) Action {
	return Action{Type: ActionStart, UID: uid}
}

func Play(uid string, handIndex int, c card.Card) Action {
	return Action{Type: ActionPlay, UID: uid, HandIndex: handIndex, Card: &c}
}

func DrawOne(uid string) Action {
	return Action{Type: ActionDraw, UID: uid}
}

func SelectColor(uid string, c color.Color) Action {
	return Action{Type: ActionSelectColor, UID: uid, Color: c}
}

func CallUno(uid string) Action {
	return Action{Type: ActionCallUno, UID: uid}
}

func CheckUno(uid string) Action {
	return Action{Type: ActionCheckUno, UID: uid}
}

func Leave(uid string) Action {
	return Action{Type: ActionLeave, UID: uid}
}
