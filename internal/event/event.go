// internal/event/event.go
package event

// EventType names an event.
type EventType string

// Event is a typed message with an optional payload.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives the events it subscribed to.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener. Func values cannot be
// compared, so keep the returned pointer to unsubscribe later.
type ListenerFunc func(event Event)

func (f *ListenerFunc) OnEvent(event Event) { (*f)(event) }

// Func wraps fn into a Listener.
func Func(fn func(event Event)) *ListenerFunc {
	f := ListenerFunc(fn)
	return &f
}

// Dispatcher delivers events synchronously, in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch calls every listener of event.Type. Listeners may subscribe or
// unsubscribe while being called; the change applies to the next dispatch.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
