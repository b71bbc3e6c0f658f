package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatcherOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	first := ListenerFunc(func(e Event) { got = append(got, "first:"+string(e.Type)) })
	second := ListenerFunc(func(e Event) { got = append(got, "second:"+string(e.Type)) })
	rec := &Recorder{}

	d.Subscribe(UnitMoved, first)
	d.Subscribe(UnitMoved, second)
	d.SubscribeAll(rec)

	d.Dispatch(Event{Type: UnitMoved, Frame: 3})
	d.Dispatch(Event{Type: UnitDestroyed})

	assert.Equal(t, []string{"first:UnitMoved", "second:UnitMoved"}, got)
	require.Len(t, rec.Events, 2)
	assert.Equal(t, 3, rec.Events[0].Frame)
	assert.Len(t, rec.OfType(UnitDestroyed), 1)

	rec.Reset()
	assert.Empty(t, rec.Events)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &Recorder{}, &Recorder{}
	d.Subscribe(TurnEnded, a)
	d.Subscribe(TurnEnded, b)
	d.Unsubscribe(TurnEnded, a)

	d.Dispatch(Event{Type: TurnEnded})
	assert.Empty(t, a.Events)
	assert.Len(t, b.Events, 1)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	after := &Recorder{}
	var self ListenerFunc
	calls := 0
	self = func(e Event) {
		calls++
		d.Unsubscribe(TurnEnded, &self)
	}
	d.Subscribe(TurnEnded, &self)
	d.Subscribe(TurnEnded, after)

	d.Dispatch(Event{Type: TurnEnded})
	d.Dispatch(Event{Type: TurnEnded})
	assert.Equal(t, 1, calls)
	assert.Len(t, after.Events, 2)
}

func TestLogListener(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewLogListener(zap.New(core))

	l.OnEvent(Event{Type: EdgeBreached, Turn: 2, Frame: 40, Data: Breach{Damage: 1}})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "EdgeBreached", entries[0].Message)
	assert.Equal(t, int64(40), entries[0].ContextMap()["frame"])

	NewLogListener(nil).OnEvent(Event{Type: GameOver})
}
