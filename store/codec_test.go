package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atakhatri/UNO-sub000/store"
	"github.com/atakhatri/UNO-sub000/uno/card"
	"github.com/atakhatri/UNO-sub000/uno/card/color"
	"github.com/atakhatri/UNO-sub000/uno/game"
)

func TestStateSurvivesDocumentRoundTrip(t *testing.T) {
	s := game.NewState("game-1", "host", "Hosty")
	s.Status = game.StatusPlaying
	s.Players[0].Hand = []card.Card{card.New(color.Red, card.Number(5))}
	s.Pile = []card.Card{card.New(color.Black, card.Wild)}
	s.ChosenColor = color.Green
	s.PendingUnoCheck = 0
	s.Message = "Hosty is choosing a color..."

	doc, err := store.EncodeState(s)
	require.NoError(t, err)
	decoded, err := store.DecodeState(doc)
	require.NoError(t, err)

	assert.Equal(t, s, decoded)
}

// Commits are per-field merges, so a field the engine clears must still be
// present in the encoded document; otherwise the stored value survives the
// update and every later snapshot replays it.
func TestClearedFieldsSurviveMerge(t *testing.T) {
	memory := store.NewMemory()

	s := game.NewState("game-1", "host", "Hosty")
	s.AwaitingColor = true
	s.ChosenColor = color.Green
	s.Message = "Hosty is choosing a color..."
	doc, err := store.EncodeState(s)
	require.NoError(t, err)
	require.NoError(t, memory.Create("game-1", doc))

	s.AwaitingColor = false
	s.ChosenColor = ""
	doc, err = store.EncodeState(s)
	require.NoError(t, err)
	require.NoError(t, memory.Update("game-1", store.Patch{Set: doc}))

	stored, err := memory.Get("game-1")
	require.NoError(t, err)
	decoded, err := store.DecodeState(stored)
	require.NoError(t, err)
	assert.False(t, decoded.AwaitingColor, "cleared flag must overwrite the stored one")
	assert.Equal(t, color.Color(""), decoded.ChosenColor)
}

// The NoSeat markers are negative and must not be mangled by the document
// field map's float64 numbers.
func TestMarkersSurviveRoundTrip(t *testing.T) {
	s := game.NewState("game-1", "host", "Hosty")
	require.Equal(t, game.NoSeat, s.UnoAt)

	doc, err := store.EncodeState(s)
	require.NoError(t, err)
	decoded, err := store.DecodeState(doc)
	require.NoError(t, err)

	assert.Equal(t, game.NoSeat, decoded.UnoAt)
	assert.Equal(t, game.NoSeat, decoded.PendingUnoCheck)
	assert.Equal(t, game.NoSeat, decoded.Declared)
}
