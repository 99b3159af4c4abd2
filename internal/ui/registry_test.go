package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry()
	var got Event
	r.Register("eng.lookup.click", func(ctx context.Context, ev Event) error {
		got = ev
		return nil
	})

	err := r.Dispatch(context.Background(), Event{Name: "eng.lookup.click", Value: "apple"})
	assert.NoError(t, err)
	assert.Equal(t, "apple", got.Value)

	err = r.Dispatch(context.Background(), Event{Name: "missing"})
	assert.True(t, errors.Is(err, ErrUnknownEvent))
	assert.Contains(t, err.Error(), "missing")
}

func TestRegistry_RegisterTwicePanics(t *testing.T) {
	r := NewRegistry()
	h := func(context.Context, Event) error { return nil }
	r.Register("a", h)

	assert.Panics(t, func() { r.Register("a", h) })
	assert.Panics(t, func() { r.Register("", h) })
	assert.Panics(t, func() { r.Register("b", nil) })
}

func TestOnEnter(t *testing.T) {
	calls := 0
	h := OnEnter(func(context.Context, Event) error {
		calls++
		return nil
	})

	assert.NoError(t, h(context.Background(), Event{Key: "a"}))
	assert.NoError(t, h(context.Background(), Event{Key: ""}))
	assert.Equal(t, 0, calls)

	assert.NoError(t, h(context.Background(), Event{Key: KeyEnter}))
	assert.Equal(t, 1, calls)
}

func TestRegistry_Bind(t *testing.T) {
	noop := func(context.Context, Event) error { return nil }
	host := NewElements("engInput", "engLookupBtn", "engResult")
	r := NewRegistry()

	active := r.Bind(host, Binding{
		Widget:   "english",
		Elements: []string{"engInput", "engLookupBtn", "engResult"},
		Events:   map[string]Handler{"eng.lookup.click": noop},
	})
	assert.True(t, active)

	inactive := r.Bind(host, Binding{
		Widget:   "chat",
		Elements: []string{"chatInput", "sendChatBtn", "chatContainer"},
		Events:   map[string]Handler{"chat.send.click": noop},
	})
	assert.False(t, inactive)

	assert.Equal(t, []string{"eng.lookup.click"}, r.Names())
	assert.True(t, r.Has("eng.lookup.click"))
	assert.False(t, r.Has("chat.send.click"))
}

func TestAllElements(t *testing.T) {
	assert.True(t, AllElements{}.Has("anything"))
}
