package core

import "sync"

// EventCode identifies a callback channel on an EventRegistry.
type EventCode uint32

// Should return true if handled.
type FnOnEvent func(code EventCode, sender interface{}, listener interface{}, arg interface{}) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

// EventRegistry dispatches typed callback arguments to listeners. Each
// object exposing callback channels owns its own registry.
type EventRegistry struct {
	mu         sync.RWMutex
	registered map[EventCode][]*registeredEvent
}

func NewEventRegistry() *EventRegistry {
	return &EventRegistry{
		registered: make(map[EventCode][]*registeredEvent),
	}
}

/**
 * Register to listen for when events are sent with the provided code. A listener
 * can only be registered once per code; duplicates cause this to return false.
 */
func (r *EventRegistry) Register(code EventCode, listener interface{}, onEvent FnOnEvent) bool {
	if onEvent == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	r.registered[code] = append(r.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

// Unregister removes the listener from the given code. Returns false when no
// matching registration exists.
func (r *EventRegistry) Unregister(code EventCode, listener interface{}) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := r.registered[code]
	for i, e := range events {
		if e.listener == listener {
			r.registered[code] = append(events[:i:i], events[i+1:]...)
			if len(r.registered[code]) == 0 {
				delete(r.registered, code)
			}
			return true
		}
	}
	return false
}

// HasListeners reports whether anything is registered for the code.
func (r *EventRegistry) HasListeners(code EventCode) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.registered[code]) != 0
}

/**
 * Fires an event to listeners of the given code. If a listener returns
 * true, the event is considered handled and is not passed on to any more listeners.
 */
func (r *EventRegistry) Fire(code EventCode, sender interface{}, arg interface{}) bool {
	r.mu.RLock()
	events := make([]*registeredEvent, len(r.registered[code]))
	copy(events, r.registered[code])
	r.mu.RUnlock()

	for _, e := range events {
		if e.callback(code, sender, e.listener, arg) {
			return true
		}
	}
	return false
}
