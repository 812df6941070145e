package game

import (
	"github.com/atakhatri/UNO-sub000/consts"
	"github.com/atakhatri/UNO-sub000/uno/card"
	"github.com/atakhatri/UNO-sub000/uno/card/color"
)

// Apply is the whole rules engine: one action against one snapshot yields
// the next snapshot plus the effects observers should render. The input
// state is never mutated, so a rejected action leaves no trace and a fresh
// State gives a fresh game.
func Apply(s *State, a Action) (*State, []Effect, error) {
	if s == nil {
		return nil, nil, consts.ErrorsGameInvalid
	}
	next := s.Clone()
	var effects []Effect
	var err error
	switch a.Type {
	case ActionJoin:
		effects, err = applyJoin(next, a)
	case ActionStart:
		effects, err = applyStart(next, a)
	case ActionPlay:
		effects, err = applyPlay(next, a)
	case ActionDraw:
		effects, err = applyDraw(next, a)
	case ActionSelectColor:
		effects, err = applySelectColor(next, a)
	case ActionCallUno:
		effects, err = applyCallUno(next, a)
	case ActionCheckUno:
		effects, err = applyCheckUno(next, a)
	case ActionLeave:
		effects, err = applyLeave(next, a)
	default:
		err = consts.ErrorsActionInvalid
	}
	if err != nil {
		return nil, nil, err
	}
	return next, effects, nil
}

func applyJoin(s *State, a Action) ([]Effect, error) {
	if s.Status != StatusWaiting {
		return nil, consts.ErrorsGameStarted
	}
	if len(s.Players) >= consts.MaxPlayers {
		return nil, consts.ErrorsGameFull
	}
	if s.SeatOf(a.UID) != NoSeat {
		return nil, consts.ErrorsExist
	}
	seat := len(s.Players)
	s.Players = append(s.Players, Player{Seat: seat, UID: a.UID, Name: a.Name, Bot: a.Bot})
	s.Message = msg.PlayerJoined(a.Name, len(s.Players))
	return []Effect{PlayerJoinedEffect{Seat: seat, Name: a.Name}}, nil
}

func applyStart(s *State, a Action) ([]Effect, error) {
	if s.Status != StatusWaiting {
		return nil, consts.ErrorsGameStarted
	}
	if a.UID != s.Host {
		return nil, consts.ErrorsNotHost
	}
	if len(s.Players) < consts.MinPlayers {
		return nil, consts.ErrorsTooFewPlayers
	}

	s.Deck = Shuffle(card.BuildDeck())
	for i := range s.Players {
		drawn, remaining := Draw(s.Deck, consts.HandSize)
		s.Players[i].Hand = drawn
		s.Deck = remaining
	}

	// The starting discard may be any non-black card, action faces
	// included. Black cards are set aside and shuffled back in.
	var setAside []card.Card
	var starter card.Card
	for {
		drawn, remaining := Draw(s.Deck, 1)
		s.Deck = remaining
		if drawn[0].Color != color.Black {
			starter = drawn[0]
			break
		}
		setAside = append(setAside, drawn[0])
	}
	if len(setAside) > 0 {
		s.Deck = Shuffle(append(s.Deck, setAside...))
	}
	s.Pile = []card.Card{starter}

	s.Status = StatusPlaying
	s.Current = 0
	s.Direction = 1
	s.Message = msg.GameStarted(starter)
	return []Effect{GameStartedEffect{Starter: starter}}, nil
}

func applyPlay(s *State, a Action) ([]Effect, error) {
	player, err := requireTurn(s, a.UID)
	if err != nil {
		return nil, err
	}
	if a.HandIndex < 0 || a.HandIndex >= len(player.Hand) {
		return nil, consts.ErrorsCardNotInHand
	}
	played := player.Hand[a.HandIndex]
	if a.Card != nil && !played.Equal(*a.Card) {
		return nil, consts.ErrorsCardNotInHand
	}
	if !Playable(played, s.EffectiveTop()) {
		return nil, consts.ErrorsCardUnplayable
	}

	player.Hand = append(player.Hand[:a.HandIndex], player.Hand[a.HandIndex+1:]...)
	s.Pile = append(s.Pile, played)
	s.ChosenColor = ""
	s.Message = msg.PlayerPlayedCard(player.Name, played)
	effects := []Effect{CardPlayedEffect{Seat: player.Seat, Name: player.Name, Card: played}}

	// A play that empties the hand wins on the spot. No color prompt, no
	// draw effect, no turn advance.
	if len(player.Hand) == 0 {
		finish(s, player)
		return append(effects, GameFinishedEffect{Winner: player.UID, WinnerName: player.Name}), nil
	}

	if len(player.Hand) == 1 {
		if s.Declared == player.Seat {
			s.UnoAt = player.Seat
		} else {
			s.PendingUnoCheck = player.Seat
		}
	} else if s.UnoAt == player.Seat {
		s.UnoAt = NoSeat
	}

	effects = append(effects, resolveEffects(s, player, played)...)
	return effects, nil
}

// resolveEffects applies the played card's semantic effect: draws, turn
// direction and the amount of turn advancement, or the pending color
// sub-state for the wild family.
func resolveEffects(s *State, player *Player, played card.Card) []Effect {
	var effects []Effect
	switch played.Value {
	case card.Skip:
		skipped := &s.Players[NextIndex(s.Current, s.Direction, len(s.Players), 1)]
		effects = append(effects, TurnSkippedEffect{Seat: skipped.Seat, Name: skipped.Name})
		s.Message = msg.PlayerTurnSkipped(skipped.Name)
		advance(s, 2)
	case card.Reverse:
		s.Direction = -s.Direction
		effects = append(effects, OrderReversedEffect{})
		s.Message = msg.TurnOrderReversed()
		if len(s.Players) == 2 {
			// With two players a reverse behaves exactly like a skip.
			advance(s, 2)
		} else {
			advance(s, 1)
		}
	case card.DrawTwo:
		victim := &s.Players[NextIndex(s.Current, s.Direction, len(s.Players), 1)]
		effects = append(effects, drawInto(s, victim, consts.DrawTwoPenalty, false)...)
		effects = append(effects, TurnSkippedEffect{Seat: victim.Seat, Name: victim.Name})
		s.Message = msg.PlayerDrewCards(victim.Name, consts.DrawTwoPenalty)
		advance(s, 2)
	case card.Wild, card.WildDrawFour:
		// Turn advancement is suspended until the actor picks a color; a
		// wild-draw-four's draw lands when the color resolves.
		s.AwaitingColor = true
		s.Message = msg.AwaitingColor(player.Name)
	default:
		advance(s, 1)
	}
	return effects
}

func applyDraw(s *State, a Action) ([]Effect, error) {
	player, err := requireTurn(s, a.UID)
	if err != nil {
		return nil, err
	}
	effects := drawInto(s, player, 1, false)
	s.Message = msg.PlayerDrewCards(player.Name, 1)
	advance(s, 1)
	return effects, nil
}

func applySelectColor(s *State, a Action) ([]Effect, error) {
	if s.Status != StatusPlaying {
		return nil, statusError(s)
	}
	player := s.CurrentPlayer()
	if player == nil || player.UID != a.UID {
		return nil, consts.ErrorsNotYourTurn
	}
	if !s.AwaitingColor {
		return nil, consts.ErrorsNoColorPending
	}
	if !a.Color.Valid() || a.Color == color.Black {
		return nil, consts.ErrorsColorInvalid
	}

	// The one in-place card mutation: the wild on top of the pile takes the
	// chosen color.
	s.Pile[len(s.Pile)-1].Color = a.Color
	s.ChosenColor = a.Color
	s.AwaitingColor = false
	s.Message = msg.PlayerPickedColor(player.Name, a.Color)
	effects := []Effect{ColorPickedEffect{Seat: player.Seat, Name: player.Name, Color: a.Color}}

	if s.Pile[len(s.Pile)-1].Value == card.WildDrawFour {
		victim := &s.Players[NextIndex(s.Current, s.Direction, len(s.Players), 1)]
		effects = append(effects, drawInto(s, victim, consts.DrawFourPenalty, false)...)
		effects = append(effects, TurnSkippedEffect{Seat: victim.Seat, Name: victim.Name})
		advance(s, 2)
	} else {
		advance(s, 1)
	}
	return effects, nil
}

func applyCallUno(s *State, a Action) ([]Effect, error) {
	if s.Status != StatusPlaying {
		return nil, statusError(s)
	}
	player := s.CurrentPlayer()
	if player == nil || player.UID != a.UID || len(player.Hand) != 2 {
		return nil, consts.ErrorsUnoNotAllowed
	}
	s.Declared = player.Seat
	s.Message = msg.PlayerCalledUno(player.Name)
	return []Effect{UnoCalledEffect{Seat: player.Seat, Name: player.Name}}, nil
}

// applyCheckUno resolves a deferred declaration check. Only the player
// whose turn just started may issue it; that gating, not locking, is what
// keeps the penalty write from racing the previous player's play.
func applyCheckUno(s *State, a Action) ([]Effect, error) {
	if s.Status != StatusPlaying {
		return nil, statusError(s)
	}
	player := s.CurrentPlayer()
	if player == nil || player.UID != a.UID {
		return nil, consts.ErrorsNotYourTurn
	}
	if s.AwaitingColor {
		// The flagged player's turn has not ended yet; the check belongs
		// to the turn that starts once the color resolves.
		return nil, consts.ErrorsAwaitingColor
	}
	if s.PendingUnoCheck == NoSeat {
		return nil, consts.ErrorsNoPendingUnoCheck
	}
	flagged := &s.Players[s.PendingUnoCheck]
	s.PendingUnoCheck = NoSeat
	if len(flagged.Hand) != 1 {
		// Their hand changed in the interim: no penalty.
		return nil, nil
	}
	effects := drawInto(s, flagged, consts.UnoPenalty, true)
	effects = append(effects, UnoPenaltyEffect{Seat: flagged.Seat, Name: flagged.Name})
	s.Message = msg.UnoPenalty(flagged.Name)
	return effects, nil
}

func applyLeave(s *State, a Action) ([]Effect, error) {
	seat := s.SeatOf(a.UID)
	if seat == NoSeat {
		return nil, consts.ErrorsPlayerUnknown
	}
	leaving := s.Players[seat]
	// Their cards go to the bottom of the deck so the 108-card multiset
	// survives the departure.
	s.Deck = append(s.Deck, leaving.Hand...)
	s.Players = append(s.Players[:seat], s.Players[seat+1:]...)
	for i := range s.Players {
		s.Players[i].Seat = i
	}

	s.UnoAt = remapSeat(s.UnoAt, seat)
	s.PendingUnoCheck = remapSeat(s.PendingUnoCheck, seat)
	s.Declared = remapSeat(s.Declared, seat)
	if seat < s.Current {
		s.Current--
	} else if seat == s.Current {
		if s.AwaitingColor {
			// The actor left mid color choice; the wild keeps the pile's
			// previous effective color by staying black, which lets any
			// card follow it.
			s.AwaitingColor = false
		}
		if len(s.Players) > 0 {
			s.Current %= len(s.Players)
		}
	}
	if a.UID == s.Host && len(s.Players) > 0 {
		s.Host = s.Players[0].UID
	}

	s.Message = msg.PlayerLeft(leaving.Name, len(s.Players))
	effects := []Effect{PlayerLeftEffect{Name: leaving.Name}}

	if s.Status == StatusPlaying && len(s.Players) == 1 {
		winner := &s.Players[0]
		finish(s, winner)
		effects = append(effects, GameFinishedEffect{Winner: winner.UID, WinnerName: winner.Name})
	}
	return effects, nil
}

// advance ends the acting player's turn. An unplayed pre-declaration is
// consumed here regardless of outcome.
func advance(s *State, skip int) {
	s.Current = NextIndex(s.Current, s.Direction, len(s.Players), skip)
	s.Declared = NoSeat
}

// drawInto moves up to amount cards from the deck into the player's hand,
// replenishing the deck from the pile when it runs dry. A shortfall is
// reported, never fatal.
func drawInto(s *State, player *Player, amount int, penalty bool) []Effect {
	var effects []Effect
	if len(s.Deck) < amount {
		if lifted := replenishDeck(s); lifted > 0 {
			effects = append(effects, PileReshuffledEffect{Count: lifted})
		}
	}
	drawn, remaining := Draw(s.Deck, amount)
	s.Deck = remaining
	player.Hand = append(player.Hand, drawn...)
	if len(player.Hand) != 1 && s.UnoAt == player.Seat {
		s.UnoAt = NoSeat
	}
	shortfall := amount - len(drawn)
	if shortfall > 0 {
		s.Message = msg.DeckExhausted(player.Name, shortfall)
	}
	return append(effects, CardsDrawnEffect{
		Seat:      player.Seat,
		Name:      player.Name,
		Count:     len(drawn),
		Shortfall: shortfall,
		Penalty:   penalty,
	})
}

func finish(s *State, winner *Player) {
	s.Status = StatusFinished
	s.Winner = winner.UID
	s.AwaitingColor = false
	s.ChosenColor = ""
	s.UnoAt = NoSeat
	s.PendingUnoCheck = NoSeat
	s.Declared = NoSeat
	s.Message = msg.PlayerWon(winner.Name)
}

func requireTurn(s *State, uid string) (*Player, error) {
	if s.Status != StatusPlaying {
		return nil, statusError(s)
	}
	player := s.CurrentPlayer()
	if player == nil || player.UID != uid {
		return nil, consts.ErrorsNotYourTurn
	}
	if s.AwaitingColor {
		return nil, consts.ErrorsAwaitingColor
	}
	return player, nil
}

func statusError(s *State) error {
	if s.Status == StatusFinished {
		return consts.ErrorsGameFinished
	}
	return consts.ErrorsGameNotStarted
}

func remapSeat(seat, removed int) int {
	switch {
	case seat == NoSeat:
		return NoSeat
	case seat == removed:
		return NoSeat
	case seat > removed:
		return seat - 1
	default:
		return seat
	}
}
