package player

import (
	"math/rand"

	"github.com/atakhatri/UNO-sub000/uno/card/color"
	"github.com/atakhatri/UNO-sub000/uno/game"
)

// naivePlayer plays the first playable card and picks colors at random.
// It never remembers to call UNO, so it exercises the penalty path.
type naivePlayer struct {
	basicPlayer
}

func NewNaivePlayer(uid, name string) Provider {
	return naivePlayer{basicPlayer: basicPlayer{uid: uid, name: name}}
}

func (p naivePlayer) NextAction(s *game.State) game.Action {
	if s.AwaitingColor {
		return game.SelectColor(p.uid, color.Wildable[rand.Intn(len(color.Wildable))])
	}
	seat := s.SeatOf(p.uid)
	indexes := playableIndexes(s, seat)
	if len(indexes) == 0 {
		return game.DrawOne(p.uid)
	}
	first := indexes[0]
	return game.Play(p.uid, first, s.Players[seat].Hand[first])
}
