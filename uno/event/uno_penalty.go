package event

var UnoPenalty = &unoPenaltyEmitter{}

type UnoPenaltyPayload struct {
	PlayerName string
}

type UnoPenaltyListener interface {
	OnUnoPenalty(UnoPenaltyPayload)
}

type unoPenaltyEmitter struct {
	listeners []UnoPenaltyListener
}

func (e *unoPenaltyEmitter) AddListener(listener UnoPenaltyListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *unoPenaltyEmitter) Emit(payload UnoPenaltyPayload) {
	for _, listener := range e.listeners {
		listener.OnUnoPenalty(payload)
	}
}
