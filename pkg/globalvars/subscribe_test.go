package globalvars

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/globalvars/pkg/globalvars/event"
)

func TestSubscribeAllOps(t *testing.T) {
	r := New()

	var changes []event.Change
	sub := r.Subscribe(func(c event.Change) error {
		changes = append(changes, c)
		return nil
	})
	require.NotNil(t, sub)
	defer sub.Unsubscribe()

	require.NoError(t, r.Set("a", 1))
	r.Remove("a")
	r.Remove("a")
	r.Clear()
	_ = r.Set("", 1)

	require.Len(t, changes, 3)
	assert.Equal(t, event.OpSet, changes[0].Op)
	assert.Equal(t, "a", changes[0].Key)
	assert.Equal(t, uint64(1), changes[0].Revision)
	assert.Equal(t, event.OpRemove, changes[1].Op)
	assert.Equal(t, event.OpClear, changes[2].Op)
	assert.Equal(t, "", changes[2].Key)
	assert.Equal(t, uint64(3), changes[2].Revision)
}

func TestSubscribeFiltered(t *testing.T) {
	r := New()

	var ops []event.Op
	r.Subscribe(func(c event.Change) error {
		ops = append(ops, c.Op)
		return nil
	}, event.OpClear)

	require.NoError(t, r.Set("a", 1))
	r.Remove("a")
	r.Clear()

	assert.Equal(t, []event.Op{event.OpClear}, ops)
}

func TestSubscriberMayWriteBack(t *testing.T) {
	r := New()

	r.Subscribe(func(c event.Change) error {
		if c.Key == "input" {
			v, _ := TryGet[int](r, "input")
			return r.Set("doubled", v*2)
		}
		return nil
	}, event.OpSet)

	require.NoError(t, r.Set("input", 21))

	v, ok := TryGet[int](r, "doubled")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestSubscriberErrorHandler(t *testing.T) {
	var got []*event.HandlerError
	r := New(WithSubscriberErrorHandler(func(err *event.HandlerError) {
		got = append(got, err)
	}))

	boom := errors.New("boom")
	r.Subscribe(func(event.Change) error { return boom })

	require.NoError(t, r.Set("a", 1), "subscriber errors never reach the writer")

	require.Len(t, got, 1)
	assert.ErrorIs(t, got[0], boom)
	assert.Equal(t, "a", got[0].Change.Key)
}

func TestMaxSubscribers(t *testing.T) {
	r := New(WithMaxSubscribers(1))

	first := r.Subscribe(func(event.Change) error { return nil })
	second := r.Subscribe(func(event.Change) error { return nil })

	assert.NotNil(t, first)
	assert.Nil(t, second)

	first.Unsubscribe()
	assert.NotNil(t, r.Subscribe(func(event.Change) error { return nil }))
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	r := New()

	count := 0
	sub := r.Subscribe(func(event.Change) error {
		count++
		return nil
	})

	require.NoError(t, r.Set("a", 1))
	sub.Unsubscribe()
	require.NoError(t, r.Set("b", 2))

	assert.Equal(t, 1, count)
}
