package game

import (
	"github.com/atakhatri/UNO-sub000/uno/card"
	"github.com/atakhatri/UNO-sub000/uno/card/color"
)

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

// NoSeat marks an absent seat in the UNO markers.
const NoSeat = -1

// Player occupies a positional seat assigned at join time. Seats are
// reindexed when someone leaves; UID is the stable external identity.
type Player struct {
	Seat int         `json:"seat"`
	UID  string      `json:"uid"`
	Name string      `json:"name"`
	Bot  bool        `json:"bot,omitempty"`
	Hand []card.Card `json:"hand"`
}

// State is the root aggregate persisted as one shared game document. The
// engine never mutates a State it is handed; Apply clones first.
type State struct {
	ID        string      `json:"id"`
	Host      string      `json:"host"`
	Players   []Player    `json:"players"`
	Deck      []card.Card `json:"deck"`
	Pile      []card.Card `json:"pile"`
	Current   int         `json:"current"`
	Direction int         `json:"direction"`
	Status    Status      `json:"status"`
	Winner    string      `json:"winner"`

	// Color sub-state for wild plays. While AwaitingColor is set only the
	// acting (current) player may act, and only to choose a color.
	// No omitempty on any clearable field: state commits are per-field
	// merges, so a cleared field must still be written to overwrite the
	// stored value.
	ChosenColor   color.Color `json:"chosenColor"`
	AwaitingColor bool        `json:"awaitingColor"`

	// Transient human-readable description of the last transition.
	Message string `json:"message"`

	// UNO markers. UnoAt is the seat currently sitting at exactly one card
	// after a valid pre-declaration; PendingUnoCheck is a seat whose missing
	// declaration must be checked when the next turn starts; Declared is a
	// pre-declaration made this turn, consumed when the turn ends.
	UnoAt           int `json:"unoAt"`
	PendingUnoCheck int `json:"pendingUnoCheck"`
	Declared        int `json:"declared"`
}

// NewState creates a lobby document with the host as sole player.
func NewState(id, hostUID, hostName string) *State {
	s := &State{
		ID:              id,
		Host:            hostUID,
		Direction:       1,
		Status:          StatusWaiting,
		UnoAt:           NoSeat,
		PendingUnoCheck: NoSeat,
		Declared:        NoSeat,
	}
	s.Players = append(s.Players, Player{Seat: 0, UID: hostUID, Name: hostName})
	return s
}

// Top returns the top of the discard pile, nil when the pile is empty.
func (s *State) Top() *card.Card {
	if len(s.Pile) == 0 {
		return nil
	}
	top := s.Pile[len(s.Pile)-1]
	return &top
}

// EffectiveTop is the top of discard with the chosen wild color applied.
// This is the card plays must match; the legality checker itself never
// sees session-level chosen-color state.
func (s *State) EffectiveTop() *card.Card {
	top := s.Top()
	if top == nil {
		return nil
	}
	if top.Color == color.Black && s.ChosenColor != "" {
		top.Color = s.ChosenColor
	}
	return top
}

func (s *State) CurrentPlayer() *Player {
	if s.Current < 0 || s.Current >= len(s.Players) {
		return nil
	}
	return &s.Players[s.Current]
}

// SeatOf resolves a stable identity to its seat, NoSeat when absent.
func (s *State) SeatOf(uid string) int {
	for i := range s.Players {
		if s.Players[i].UID == uid {
			return s.Players[i].Seat
		}
	}
	return NoSeat
}

// CardCount sums deck, pile and hands. From deal to game end this stays at
// 108: the deck-conservation invariant.
func (s *State) CardCount() int {
	count := len(s.Deck) + len(s.Pile)
	for i := range s.Players {
		count += len(s.Players[i].Hand)
	}
	return count
}

// Clone deep-copies the state so the reducer can stay pure.
func (s *State) Clone() *State {
	next := *s
	next.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		p.Hand = append([]card.Card(nil), p.Hand...)
		next.Players[i] = p
	}
	next.Deck = append([]card.Card(nil), s.Deck...)
	next.Pile = append([]card.Card(nil), s.Pile...)
	return &next
}
