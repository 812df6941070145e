package player

import (
	"github.com/atakhatri/UNO-sub000/uno/card/color"
	"github.com/atakhatri/UNO-sub000/uno/game"
)

// goodPlayer keeps its options open: it discards the card that leaves the
// most follow-ups in hand, picks its most frequent color for wilds, and
// always pre-declares UNO at two cards.
type goodPlayer struct {
	basicPlayer
}

func NewGoodPlayer(uid, name string) Provider {
	return goodPlayer{basicPlayer: basicPlayer{uid: uid, name: name}}
}

func (p goodPlayer) NextAction(s *game.State) game.Action {
	if s.AwaitingColor {
		return game.SelectColor(p.uid, p.pickColor(s))
	}
	seat := s.SeatOf(p.uid)
	indexes := playableIndexes(s, seat)
	if len(indexes) == 0 {
		return game.DrawOne(p.uid)
	}
	hand := s.Players[seat].Hand
	if len(hand) == 2 && s.Declared != seat {
		return game.CallUno(p.uid)
	}

	bestIndex := indexes[0]
	maxSpareCards := -1
	for _, candidateIndex := range indexes {
		candidate := hand[candidateIndex]
		spareCards := 0
		for i, handCard := range hand {
			if i != candidateIndex && game.Playable(handCard, &candidate) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			bestIndex = candidateIndex
		}
	}
	return game.Play(p.uid, bestIndex, hand[bestIndex])
}

func (p goodPlayer) pickColor(s *game.State) color.Color {
	seat := s.SeatOf(p.uid)
	colorCounts := make(map[color.Color]int)
	for _, handCard := range s.Players[seat].Hand {
		if handCard.Color == color.Black {
			continue
		}
		colorCounts[handCard.Color]++
	}
	mostFrequent := color.Blue
	mostFrequentAmount := 0
	for _, candidate := range color.Wildable {
		if colorCounts[candidate] > mostFrequentAmount {
			mostFrequentAmount = colorCounts[candidate]
			mostFrequent = candidate
		}
	}
	return mostFrequent
}
