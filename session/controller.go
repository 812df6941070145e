// Package session runs one client's side of a shared game: it validates
// every local action against the last pushed snapshot, writes one atomic
// document update per action, and re-renders only from what the store
// pushes back. There is no server-side game process; whichever client acts
// computes the next state.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"

	"github.com/atakhatri/UNO-sub000/consts"
	"github.com/atakhatri/UNO-sub000/store"
	"github.com/atakhatri/UNO-sub000/uno/card"
	"github.com/atakhatri/UNO-sub000/uno/card/color"
	"github.com/atakhatri/UNO-sub000/uno/event"
	"github.com/atakhatri/UNO-sub000/uno/game"
	"github.com/atakhatri/UNO-sub000/uno/player"
)

type Config struct {
	Store  store.Store
	GameID string
	UID    string
	Name   string

	// Provider makes this controller a scripted seat: whenever the seat's
	// turn comes around the provider's action is submitted automatically.
	Provider player.Provider

	// AutoDraw is the advisory countdown after which a stalled human turn
	// auto-submits a draw. Zero disables it; it is client-local and never
	// authoritative.
	AutoDraw time.Duration

	// OnState is the presentation hook, called for every pushed snapshot.
	OnState func(*game.State)
}

type Controller struct {
	cfg Config

	mu          sync.Mutex
	snapshot    *game.State
	unsubscribe func()
	timer       *time.Timer
}

func New(cfg Config) *Controller {
	if cfg.UID == "" {
		cfg.UID = uuid.NewString()
	}
	if cfg.Provider != nil {
		cfg.UID = cfg.Provider.UID()
		cfg.Name = cfg.Provider.Name()
	}
	return &Controller{cfg: cfg}
}

func (c *Controller) UID() string {
	return c.cfg.UID
}

func (c *Controller) GameID() string {
	return c.cfg.GameID
}

// Snapshot returns the last pushed state.
func (c *Controller) Snapshot() *game.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// CreateGame opens a lobby with this player as host and subscribes.
func (c *Controller) CreateGame() error {
	if c.cfg.GameID == "" {
		c.cfg.GameID = uuid.NewString()
	}
	s := game.NewState(c.cfg.GameID, c.cfg.UID, c.cfg.Name)
	doc, err := store.EncodeState(s)
	if err != nil {
		return err
	}
	if err := c.cfg.Store.Create(c.cfg.GameID, doc); err != nil {
		return err
	}
	return c.subscribe()
}

// JoinGame appends this player to an existing lobby and subscribes.
func (c *Controller) JoinGame() error {
	doc, err := c.cfg.Store.Get(c.cfg.GameID)
	if err != nil {
		return err
	}
	s, err := store.DecodeState(doc)
	if err != nil {
		return err
	}
	next, effects, err := game.Apply(s, game.Join(c.cfg.UID, c.cfg.Name, c.cfg.Provider != nil))
	if err != nil {
		return err
	}
	if err := c.commit(next, effects); err != nil {
		return err
	}
	return c.subscribe()
}

// StartGame deals and begins play. Host only.
func (c *Controller) StartGame() error {
	return c.submit(game.Start(c.cfg.UID))
}

// PlayCard plays the card at handIndex; the card value is cross-checked
// against the snapshot before anything is written.
func (c *Controller) PlayCard(cd card.Card, handIndex int) error {
	return c.submit(game.Play(c.cfg.UID, handIndex, cd))
}

// DrawCard draws one card and ends the turn.
func (c *Controller) DrawCard() error {
	return c.submit(game.DrawOne(c.cfg.UID))
}

// SelectColor resolves a pending wild color choice.
func (c *Controller) SelectColor(col color.Color) error {
	return c.submit(game.SelectColor(c.cfg.UID, col))
}

// CallUno pre-declares UNO; only valid on this player's turn at two cards.
func (c *Controller) CallUno() error {
	return c.submit(game.CallUno(c.cfg.UID))
}

// LeaveGame removes this player from the roster and detaches.
func (c *Controller) LeaveGame() error {
	err := c.submit(game.Leave(c.cfg.UID))
	c.Close()
	return err
}

func (c *Controller) Close() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

// submit validates the action against the latest snapshot and, when legal,
// writes the resulting state as one atomic update. A rejection or a failed
// write leaves local state untouched; resync rides on the next push.
func (c *Controller) submit(a game.Action) error {
	s, err := c.latest()
	if err != nil {
		return err
	}
	next, effects, err := game.Apply(s, a)
	if err != nil {
		return err
	}
	return c.commit(next, effects)
}

func (c *Controller) commit(next *game.State, effects []game.Effect) error {
	doc, err := store.EncodeState(next)
	if err != nil {
		return err
	}
	if err := c.cfg.Store.Update(c.cfg.GameID, store.Patch{Set: doc}); err != nil {
		return err
	}
	// Only the acting client emits; observers render from the pushed
	// document's message.
	emit(effects)
	return nil
}

// latest is the last pushed snapshot, read straight from the store while
// the first push is still in flight.
func (c *Controller) latest() (*game.State, error) {
	c.mu.Lock()
	s := c.snapshot
	c.mu.Unlock()
	if s != nil {
		return s, nil
	}
	if c.cfg.GameID == "" {
		return nil, consts.ErrorsGameInvalid
	}
	doc, err := c.cfg.Store.Get(c.cfg.GameID)
	if err != nil {
		return nil, err
	}
	return store.DecodeState(doc)
}

func (c *Controller) subscribe() error {
	unsubscribe, err := c.cfg.Store.Subscribe(c.cfg.GameID, c.onChange)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.unsubscribe = unsubscribe
	c.mu.Unlock()
	return nil
}

func (c *Controller) onChange(doc store.Document) {
	s, err := store.DecodeState(doc)
	if err != nil {
		log.Error(err)
		return
	}
	c.mu.Lock()
	c.snapshot = s
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	if c.cfg.OnState != nil {
		c.cfg.OnState(s)
	}
	c.react(s)
}

// react drives everything this client owes the shared state when a push
// lands: resolving a pending UNO check at its own turn start, acting for a
// scripted seat, or arming the advisory auto-draw countdown.
func (c *Controller) react(s *game.State) {
	if s.Status != game.StatusPlaying {
		return
	}
	me := s.SeatOf(c.cfg.UID)
	if me == game.NoSeat || s.Current != me {
		return
	}

	// A deferred UNO check is resolved only by the player whose turn just
	// started; that gating is what keeps the penalty write from racing the
	// previous player's own update. While a color choice is pending the
	// flagged player's turn has not ended, so the check waits.
	if s.PendingUnoCheck != game.NoSeat && !s.AwaitingColor {
		if err := c.submit(game.CheckUno(c.cfg.UID)); err == nil {
			return
		}
		// Someone beat us to it; fall through and act on this snapshot.
	}

	if c.cfg.Provider != nil {
		if err := c.submit(c.cfg.Provider.NextAction(s)); err != nil {
			log.Error(err)
		}
		return
	}

	if c.cfg.AutoDraw > 0 && !s.AwaitingColor {
		c.armAutoDraw(s)
	}
}

func (c *Controller) armAutoDraw(s *game.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.cfg.AutoDraw, func() {
		c.mu.Lock()
		stale := c.snapshot != s
		c.mu.Unlock()
		if stale {
			return
		}
		if err := c.DrawCard(); err != nil {
			log.Error(err)
		}
	})
}

func emit(effects []game.Effect) {
	for _, e := range effects {
		switch e := e.(type) {
		case game.CardPlayedEffect:
			event.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: e.Name, Card: e.Card})
		case game.ColorPickedEffect:
			event.ColorPicked.Emit(event.ColorPickedPayload{PlayerName: e.Name, Color: e.Color})
		case game.CardsDrawnEffect:
			event.CardsDrawn.Emit(event.CardsDrawnPayload{
				PlayerName: e.Name,
				Amount:     e.Count,
				Shortfall:  e.Shortfall,
				Penalty:    e.Penalty,
			})
		case game.TurnSkippedEffect:
			event.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: e.Name})
		case game.OrderReversedEffect:
			event.OrderReversed.Emit(event.OrderReversedPayload{})
		case game.PileReshuffledEffect:
			event.PileReshuffled.Emit(event.PileReshuffledPayload{Count: e.Count})
		case game.UnoCalledEffect:
			event.UnoCalled.Emit(event.UnoCalledPayload{PlayerName: e.Name})
		case game.UnoPenaltyEffect:
			event.UnoPenalty.Emit(event.UnoPenaltyPayload{PlayerName: e.Name})
		case game.GameFinishedEffect:
			event.GameFinished.Emit(event.GameFinishedPayload{WinnerName: e.WinnerName})
		}
	}
}
