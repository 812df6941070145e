package consts

import "time"

const (
	MinPlayers = 2
	MaxPlayers = 4

	HandSize = 7

	DrawTwoPenalty  = 2
	DrawFourPenalty = 4
	UnoPenalty      = 2

	// PlayTimeout is the advisory client-side countdown after which a
	// controller auto-submits a draw for a stalled human turn. It is not
	// enforced by the shared state.
	PlayTimeout = 40 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Msg: msg, Exit: exit}
}

var (
	ErrorsExist             = NewErr(1, true, "Exist. ")
	ErrorsGameInvalid       = NewErr(2, true, "Game invalid. ")
	ErrorsGameStarted       = NewErr(3, false, "Join fail, game already started. ")
	ErrorsGameFull          = NewErr(4, false, "Join fail, game is full. ")
	ErrorsGameNotStarted    = NewErr(5, false, "Game has not started. ")
	ErrorsGameFinished      = NewErr(6, false, "Game is finished. ")
	ErrorsNotHost           = NewErr(7, false, "Only the host can start the game. ")
	ErrorsTooFewPlayers     = NewErr(8, false, "Need at least two players. ")
	ErrorsNotYourTurn       = NewErr(9, false, "It's not your turn. ")
	ErrorsCardUnplayable    = NewErr(10, false, "That card doesn't match the discard pile. ")
	ErrorsCardNotInHand     = NewErr(11, false, "That card is not in your hand. ")
	ErrorsAwaitingColor     = NewErr(12, false, "Waiting for a color to be chosen. ")
	ErrorsNoColorPending    = NewErr(13, false, "No color choice is pending. ")
	ErrorsColorInvalid      = NewErr(14, false, "Color invalid. ")
	ErrorsUnoNotAllowed     = NewErr(15, false, "You can only call UNO on your turn with two cards. ")
	ErrorsNoPendingUnoCheck = NewErr(16, false, "No UNO check is pending. ")
	ErrorsPlayerUnknown     = NewErr(17, false, "Player unknown. ")
	ErrorsActionInvalid     = NewErr(18, false, "Action invalid. ")
)
