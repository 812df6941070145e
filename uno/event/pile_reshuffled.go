package event

var PileReshuffled = &pileReshuffledEmitter{}

type PileReshuffledPayload struct {
	Count int
}

type PileReshuffledListener interface {
	OnPileReshuffled(PileReshuffledPayload)
}

type pileReshuffledEmitter struct {
	listeners []PileReshuffledListener
}

func (e *pileReshuffledEmitter) AddListener(listener PileReshuffledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *pileReshuffledEmitter) Emit(payload PileReshuffledPayload) {
	for _, listener := range e.listeners {
		listener.OnPileReshuffled(payload)
	}
}
