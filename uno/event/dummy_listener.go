package event

// DummyListener collects every payload it receives, for tests.
type DummyListener struct {
	received []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{}
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.received = append(l.received, payload)
}

func (l *DummyListener) OnColorPicked(payload ColorPickedPayload) {
	l.received = append(l.received, payload)
}

func (l *DummyListener) OnCardsDrawn(payload CardsDrawnPayload) {
	l.received = append(l.received, payload)
}

func (l *DummyListener) OnTurnSkipped(payload TurnSkippedPayload) {
	l.received = append(l.received, payload)
}

func (l *DummyListener) OnOrderReversed(payload OrderReversedPayload) {
	l.received = append(l.received, payload)
}

func (l *DummyListener) OnPileReshuffled(payload PileReshuffledPayload) {
	l.received = append(l.received, payload)
}

func (l *DummyListener) OnUnoCalled(payload UnoCalledPayload) {
	l.received = append(l.received, payload)
}

func (l *DummyListener) OnUnoPenalty(payload UnoPenaltyPayload) {
	l.received = append(l.received, payload)
}

func (l *DummyListener) OnGameFinished(payload GameFinishedPayload) {
	l.received = append(l.received, payload)
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.received
}
