package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atakhatri/UNO-sub000/consts"
	"github.com/atakhatri/UNO-sub000/session"
	"github.com/atakhatri/UNO-sub000/store"
	"github.com/atakhatri/UNO-sub000/uno/game"
	"github.com/atakhatri/UNO-sub000/uno/player"
)

func TestCreateJoinAndStart(t *testing.T) {
	memory := store.NewMemory()

	host := session.New(session.Config{Store: memory, GameID: "game-1", UID: "host", Name: "Hosty"})
	require.NoError(t, host.CreateGame())
	assert.ErrorIs(t, host.CreateGame(), store.ErrExists)

	guest := session.New(session.Config{Store: memory, GameID: "game-1", UID: "guest", Name: "Guest"})
	require.NoError(t, guest.JoinGame())

	assert.ErrorIs(t, guest.StartGame(), consts.ErrorsNotHost)
	require.NoError(t, host.StartGame())

	require.Eventually(t, func() bool {
		s := guest.Snapshot()
		return s != nil && s.Status == game.StatusPlaying
	}, 2*time.Second, 10*time.Millisecond)

	s := guest.Snapshot()
	assert.Equal(t, 108, s.CardCount())
	assert.Len(t, s.Players, 2)
}

// A rejected action must not write anything: the shared document stays as
// it was and only the issuer hears about the failure.
func TestRejectionLeavesStateUntouched(t *testing.T) {
	memory := store.NewMemory()

	host := session.New(session.Config{Store: memory, GameID: "game-1", UID: "host", Name: "Hosty"})
	require.NoError(t, host.CreateGame())
	guest := session.New(session.Config{Store: memory, GameID: "game-1", UID: "guest", Name: "Guest"})
	require.NoError(t, guest.JoinGame())
	require.NoError(t, host.StartGame())

	require.Eventually(t, func() bool {
		s := guest.Snapshot()
		return s != nil && s.Status == game.StatusPlaying
	}, 2*time.Second, 10*time.Millisecond)

	before, err := memory.Get("game-1")
	require.NoError(t, err)

	// Seat 0 moves first, so the guest is out of turn.
	err = guest.DrawCard()
	assert.ErrorIs(t, err, consts.ErrorsNotYourTurn)

	after, err := memory.Get("game-1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAutoDrawOnStalledTurn(t *testing.T) {
	memory := store.NewMemory()

	host := session.New(session.Config{
		Store: memory, GameID: "game-1", UID: "host", Name: "Hosty",
		AutoDraw: 50 * time.Millisecond,
	})
	require.NoError(t, host.CreateGame())
	guest := session.New(session.Config{Store: memory, GameID: "game-1", UID: "guest", Name: "Guest"})
	require.NoError(t, guest.JoinGame())
	require.NoError(t, host.StartGame())

	// The host stalls; the advisory countdown submits a draw and the turn
	// moves on.
	require.Eventually(t, func() bool {
		s := guest.Snapshot()
		return s != nil && s.Status == game.StatusPlaying && s.Current == 1
	}, 2*time.Second, 10*time.Millisecond)

	s := guest.Snapshot()
	assert.Equal(t, consts.HandSize+1, len(s.Players[0].Hand))
}

// Three scripted seats play a whole game through the shared store. Every
// pushed snapshot must conserve the 108-card multiset and never move the
// status backwards.
func TestBotsPlayToCompletion(t *testing.T) {
	memory := store.NewMemory()
	pushes := make(chan *game.State, 4096)

	bots := []player.Provider{
		player.NewGoodPlayer("bot-0", "Alpha"),
		player.NewNaivePlayer("bot-1", "Beta"),
		player.NewGoodPlayer("bot-2", "Gamma"),
	}

	host := session.New(session.Config{
		Store: memory, GameID: "game-1",
		Provider: bots[0],
		OnState:  func(s *game.State) { pushes <- s },
	})
	require.NoError(t, host.CreateGame())
	for _, bot := range bots[1:] {
		ctrl := session.New(session.Config{Store: memory, GameID: "game-1", Provider: bot})
		require.NoError(t, ctrl.JoinGame())
	}
	require.NoError(t, host.StartGame())

	deadline := time.After(30 * time.Second)
	seen := map[game.Status]int{game.StatusWaiting: 0, game.StatusPlaying: 1, game.StatusFinished: 2}
	lastRank := 0
	for {
		select {
		case s := <-pushes:
			require.GreaterOrEqual(t, seen[s.Status], lastRank, "status went backwards")
			lastRank = seen[s.Status]
			if s.Status != game.StatusWaiting {
				require.Equal(t, 108, s.CardCount())
			}
			if s.Status == game.StatusFinished {
				require.NotEmpty(t, s.Winner)
				winnerSeat := s.SeatOf(s.Winner)
				require.NotEqual(t, game.NoSeat, winnerSeat)
				assert.Empty(t, s.Players[winnerSeat].Hand)
				return
			}
		case <-deadline:
			t.Fatal("bots did not finish a game in time")
		}
	}
}
