package game

import (
	"fmt"

	"github.com/atakhatri/UNO-sub000/uno/card"
	"github.com/atakhatri/UNO-sub000/uno/card/color"
)

var msg = messageWriter{}

type messageWriter struct{}

func (messageWriter) PlayerJoined(name string, count int) string {
	return fmt.Sprintf("%s joined! game has %d player(s)", name, count)
}

func (messageWriter) GameStarted(starter card.Card) string {
	return fmt.Sprintf("Game on! First card is %s", starter)
}

func (messageWriter) PlayerPlayedCard(name string, c card.Card) string {
	return fmt.Sprintf("%s played %s!", name, c)
}

func (messageWriter) PlayerDrewCards(name string, amount int) string {
	if amount == 1 {
		return fmt.Sprintf("%s drew a card!", name)
	}
	return fmt.Sprintf("%s drew %d cards!", name, amount)
}

func (messageWriter) DeckExhausted(name string, missing int) string {
	return fmt.Sprintf("Deck is out of cards, %s drew %d fewer card(s)!", name, missing)
}

func (messageWriter) PlayerTurnSkipped(name string) string {
	return fmt.Sprintf("%s's turn skipped!", name)
}

func (messageWriter) TurnOrderReversed() string {
	return "Turn order has been reversed!"
}

func (messageWriter) PlayerPickedColor(name string, c color.Color) string {
	return fmt.Sprintf("%s picked color %s!", name, c.Paint(c.String()))
}

func (messageWriter) AwaitingColor(name string) string {
	return fmt.Sprintf("%s is choosing a color...", name)
}

func (messageWriter) PlayerCalledUno(name string) string {
	return fmt.Sprintf("%s called UNO!", name)
}

func (messageWriter) UnoPenalty(name string) string {
	return fmt.Sprintf("%s forgot to call UNO and draws 2!", name)
}

func (messageWriter) PlayerLeft(name string, count int) string {
	return fmt.Sprintf("%s left the game! %d player(s) remain", name, count)
}

func (messageWriter) PlayerWon(name string) string {
	return fmt.Sprintf("%s wins!", name)
}
