package event

var OrderReversed = &orderReversedEmitter{}

type OrderReversedPayload struct{}

type OrderReversedListener interface {
	OnOrderReversed(OrderReversedPayload)
}

type orderReversedEmitter struct {
	listeners []OrderReversedListener
}

func (e *orderReversedEmitter) AddListener(listener OrderReversedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *orderReversedEmitter) Emit(payload OrderReversedPayload) {
	for _, listener := range e.listeners {
		listener.OnOrderReversed(payload)
	}
}
