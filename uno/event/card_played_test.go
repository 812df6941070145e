package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atakhatri/UNO-sub000/uno/card"
	"github.com/atakhatri/UNO-sub000/uno/card/color"
	"github.com/atakhatri/UNO-sub000/uno/event"
)

func TestCardPlayed(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.CardPlayed.AddListener(listenerOne)
	event.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			PlayerName: "Someone",
			Card:       card.New(color.Black, card.Wild),
		},
		{
			PlayerName: "Somebody",
			Card:       card.New(color.Green, card.DrawTwo),
		},
	}

	for _, payload := range payloads {
		event.CardPlayed.Emit(payload)
	}

	require.Len(t, listenerOne.ReceivedPayloads(), 2)
	require.Equal(t, listenerOne.ReceivedPayloads(), listenerTwo.ReceivedPayloads())
}
