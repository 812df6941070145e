package player

import (
	"math/rand"

	"github.com/google/uuid"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
}

// CreateBots builds amount scripted opponents with fresh identities. The
// first bot is naive so games against bots still exercise the UNO penalty.
func CreateBots(amount int) []Provider {
	names := append([]string(nil), botNames...)
	rand.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	bots := make([]Provider, 0, amount)
	for i := 0; i < amount && i < len(names); i++ {
		if i == 0 {
			bots = append(bots, NewNaivePlayer(uuid.NewString(), names[i]))
			continue
		}
		bots = append(bots, NewGoodPlayer(uuid.NewString(), names[i]))
	}
	return bots
}
