package game

import (
	"github.com/atakhatri/UNO-sub000/uno/card"
	"github.com/atakhatri/UNO-sub000/uno/card/color"
)

// Playable reports whether candidate may legally be played on effectiveTop.
// effectiveTop must already carry the chosen wild color when one is active;
// applying that override is the caller's job. A nil effectiveTop means the
// pile is empty and anything goes.
func Playable(candidate card.Card, effectiveTop *card.Card) bool {
	if effectiveTop == nil {
		return true
	}
	return candidate.Color == color.Black ||
		effectiveTop.Color == color.Black ||
		candidate.Color == effectiveTop.Color ||
		candidate.Value == effectiveTop.Value
}

// PlayableCards filters hand down to the cards playable on effectiveTop.
func PlayableCards(hand []card.Card, effectiveTop *card.Card) []card.Card {
	var playable []card.Card
	for _, candidate := range hand {
		if Playable(candidate, effectiveTop) {
			playable = append(playable, candidate)
		}
	}
	return playable
}
