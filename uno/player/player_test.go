package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atakhatri/UNO-sub000/uno/card"
	"github.com/atakhatri/UNO-sub000/uno/card/color"
	"github.com/atakhatri/UNO-sub000/uno/game"
	"github.com/atakhatri/UNO-sub000/uno/player"
)

func botState(hand []card.Card) *game.State {
	return &game.State{
		ID:        "game-1",
		Host:      "bot",
		Players:   []game.Player{{Seat: 0, UID: "bot", Name: "Bot", Bot: true, Hand: hand}},
		Pile:      []card.Card{card.New(color.Red, card.Number(5))},
		Direction: 1,
		Status:    game.StatusPlaying,

		UnoAt:           game.NoSeat,
		PendingUnoCheck: game.NoSeat,
		Declared:        game.NoSeat,
	}
}

func TestNaivePlayerPlaysFirstPlayable(t *testing.T) {
	bot := player.NewNaivePlayer("bot", "Bot")
	s := botState([]card.Card{
		card.New(color.Blue, card.Number(3)),
		card.New(color.Red, card.Number(7)),
		card.New(color.Blue, card.Number(5)),
	})

	a := bot.NextAction(s)
	require.Equal(t, game.ActionPlay, a.Type)
	assert.Equal(t, 1, a.HandIndex, "first playable, not first card")
}

func TestNaivePlayerDrawsWithoutMatch(t *testing.T) {
	bot := player.NewNaivePlayer("bot", "Bot")
	s := botState([]card.Card{
		card.New(color.Blue, card.Number(3)),
		card.New(color.Green, card.Number(7)),
	})

	a := bot.NextAction(s)
	assert.Equal(t, game.ActionDraw, a.Type)
}

func TestGoodPlayerDeclaresUnoAtTwoCards(t *testing.T) {
	bot := player.NewGoodPlayer("bot", "Bot")
	s := botState([]card.Card{
		card.New(color.Red, card.Number(7)),
		card.New(color.Blue, card.Number(3)),
	})

	a := bot.NextAction(s)
	require.Equal(t, game.ActionCallUno, a.Type)

	s.Declared = 0
	a = bot.NextAction(s)
	assert.Equal(t, game.ActionPlay, a.Type, "plays once declared")
}

func TestGoodPlayerPicksMostFrequentColor(t *testing.T) {
	bot := player.NewGoodPlayer("bot", "Bot")
	s := botState([]card.Card{
		card.New(color.Green, card.Number(1)),
		card.New(color.Green, card.Number(2)),
		card.New(color.Green, card.Number(3)),
		card.New(color.Red, card.Number(4)),
	})
	s.AwaitingColor = true

	a := bot.NextAction(s)
	require.Equal(t, game.ActionSelectColor, a.Type)
	assert.Equal(t, color.Green, a.Color)
}

func TestCreateBots(t *testing.T) {
	bots := player.CreateBots(3)
	require.Len(t, bots, 3)
	seen := map[string]bool{}
	for _, bot := range bots {
		assert.NotEmpty(t, bot.UID())
		assert.NotEmpty(t, bot.Name())
		assert.False(t, seen[bot.UID()])
		seen[bot.UID()] = true
	}
}
