// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type  EventType
	Turn  int
	Frame int
	Data  interface{} // one of the payload types in types.go
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — синхронный диспетчер событий. Listeners run in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers a listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			// Новый срез: Dispatch может сейчас обходить старый.
			kept := make([]Listener, 0, len(listeners)-1)
			kept = append(kept, listeners[:i]...)
			d.listeners[eventType] = append(kept, listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам. Catch-all listeners see the
// event before typed ones, so nested dispatches are recorded after their cause.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.all {
		listener.OnEvent(event)
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
