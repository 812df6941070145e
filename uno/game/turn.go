package game

// NextIndex computes the seat whose turn follows current. Every turn
// advancement in the engine goes through this one formula: skip is 1 for a
// plain move and 2 when the immediate next player is skipped entirely
// (skip, draw-two, reverse with two players).
func NextIndex(current, direction, playerCount, skip int) int {
	return ((current+direction*skip)%playerCount + playerCount) % playerCount
}
