package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testEventA EventCode = iota + 1
	testEventB
)

type testListener struct {
	name string
}

func TestEventRegistryFire(t *testing.T) {
	r := NewEventRegistry()
	first, second := &testListener{"first"}, &testListener{"second"}
	var calls []string

	record := func(handled bool) FnOnEvent {
		return func(code EventCode, sender, listener, arg interface{}) bool {
			calls = append(calls, listener.(*testListener).name+":"+arg.(string))
			return handled
		}
	}
	assert.True(t, r.Register(testEventA, first, record(false)))
	assert.True(t, r.Register(testEventA, second, record(true)))

	assert.True(t, r.Fire(testEventA, nil, "x"))
	assert.Equal(t, []string{"first:x", "second:x"}, calls)

	calls = nil
	assert.False(t, r.Fire(testEventB, nil, "y"))
	assert.Empty(t, calls)
}

func TestEventRegistryStopsWhenHandled(t *testing.T) {
	r := NewEventRegistry()
	reached := false
	r.Register(testEventA, &testListener{}, func(EventCode, interface{}, interface{}, interface{}) bool { return true })
	r.Register(testEventA, &testListener{}, func(EventCode, interface{}, interface{}, interface{}) bool {
		reached = true
		return false
	})

	assert.True(t, r.Fire(testEventA, nil, nil))
	assert.False(t, reached)
}

func TestEventRegistryRegistration(t *testing.T) {
	r := NewEventRegistry()
	l := &testListener{}
	noop := func(EventCode, interface{}, interface{}, interface{}) bool { return false }

	assert.False(t, r.Register(testEventA, l, nil))
	assert.True(t, r.Register(testEventA, l, noop))
	assert.False(t, r.Register(testEventA, l, noop))
	assert.True(t, r.Register(testEventB, l, noop))
	assert.True(t, r.HasListeners(testEventA))

	assert.True(t, r.Unregister(testEventA, l))
	assert.False(t, r.Unregister(testEventA, l))
	assert.False(t, r.HasListeners(testEventA))
	assert.True(t, r.HasListeners(testEventB))
}

func TestEventRegistrySender(t *testing.T) {
	r := NewEventRegistry()
	sender := &testListener{"sender"}
	var got interface{}
	r.Register(testEventA, &testListener{}, func(_ EventCode, s, _, _ interface{}) bool {
		got = s
		return false
	})

	r.Fire(testEventA, sender, nil)
	assert.Same(t, sender, got)
}
