package player

import (
	"github.com/atakhatri/UNO-sub000/uno/game"
)

// Provider decides the next action for one seat. The session controller
// asks whenever the seat's turn comes around; scripted opponents and
// human-input adapters implement the same interface, so one engine drives
// solo, local and online play alike.
type Provider interface {
	UID() string
	Name() string
	NextAction(s *game.State) game.Action
}

type basicPlayer struct {
	uid  string
	name string
}

func (p basicPlayer) UID() string {
	return p.uid
}

func (p basicPlayer) Name() string {
	return p.name
}

// playableIndexes lists the hand indexes the seat could legally play.
func playableIndexes(s *game.State, seat int) []int {
	hand := s.Players[seat].Hand
	top := s.EffectiveTop()
	var indexes []int
	for i, candidate := range hand {
		if game.Playable(candidate, top) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}
