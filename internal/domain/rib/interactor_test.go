package rib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/riblet/internal/domain/entity"
)

type recorder struct {
	name string
	log  *[]string
}

func (r recorder) OnEvent(entity.Event) {
	*r.log = append(*r.log, r.name)
}

func TestInteractor_BroadcastInRegistrationOrder(t *testing.T) {
	var got []string
	i := NewInteractor()
	i.AddListener(recorder{"L1", &got})
	i.AddListener(recorder{"L2", &got})
	i.AddListener(recorder{"L3", &got})

	i.Broadcast(entity.NewEvent(entity.ActionDidChange, nil))

	assert.Equal(t, []string{"L1", "L2", "L3"}, got)
}

func TestInteractor_DuplicateListenerNotifiedTwice(t *testing.T) {
	calls := 0
	l := EventListenerFunc(func(entity.Event) { calls++ })
	i := NewInteractor()
	i.AddListener(l)
	i.AddListener(l)

	i.Broadcast(entity.NewEvent(entity.ActionWillChange, nil))

	assert.Equal(t, 2, calls)
}

func TestInteractor_AddDuringBroadcastUsesSnapshot(t *testing.T) {
	var got []string
	i := NewInteractor()
	i.AddListener(recorder{"L1", &got})
	i.AddListener(EventListenerFunc(func(entity.Event) {
		got = append(got, "L2")
		i.AddListener(recorder{"late", &got})
	}))
	i.AddListener(recorder{"L3", &got})

	i.Broadcast(entity.NewEvent(entity.ActionDidChange, nil))
	assert.Equal(t, []string{"L1", "L2", "L3"}, got)

	got = nil
	i.Broadcast(entity.NewEvent(entity.ActionDidChange, nil))
	assert.Equal(t, []string{"L1", "L2", "L3", "late"}, got)
}

func TestInteractor_RemoveDuringBroadcastUsesSnapshot(t *testing.T) {
	var got []string
	i := NewInteractor()
	var removeL3 func()
	i.AddListener(EventListenerFunc(func(entity.Event) {
		got = append(got, "L1")
		removeL3()
	}))
	removeL3 = i.AddListener(recorder{"L3", &got})

	i.Broadcast(entity.NewEvent(entity.ActionDidChange, nil))
	assert.Equal(t, []string{"L1", "L3"}, got)

	got = nil
	i.Broadcast(entity.NewEvent(entity.ActionDidChange, nil))
	assert.Equal(t, []string{"L1"}, got)
}

func TestInteractor_NoListenersIsNoop(t *testing.T) {
	i := NewInteractor()
	assert.NotPanics(t, func() {
		i.Broadcast(entity.NewEvent(entity.ActionDidChange, "payload"))
	})
	assert.Nil(t, i.Listeners())
}

func TestInteractor_ListenersAllocatedLazily(t *testing.T) {
	i := NewInteractor()
	assert.Nil(t, i.Listeners())

	remove := i.AddListener(EventListenerFunc(func(entity.Event) {}))
	require.Len(t, i.Listeners(), 1)

	remove()
	remove()
	listeners := i.Listeners()
	assert.NotNil(t, listeners)
	assert.Empty(t, listeners)
}

func TestInteractor_NestedBroadcastTakesFreshSnapshot(t *testing.T) {
	var got []string
	i := NewInteractor()
	nested := false
	i.AddListener(EventListenerFunc(func(e entity.Event) {
		got = append(got, "A:"+e.Action().String())
		if !nested {
			nested = true
			i.AddListener(recorder{"B", &got})
			i.Broadcast(entity.NewEvent(entity.ActionDidChange, nil))
		}
	}))

	i.Broadcast(entity.NewEvent(entity.ActionWillChange, nil))

	assert.Equal(t, []string{"A:will_change", "A:did_change", "B"}, got)
}

func TestInteractor_PayloadDelivered(t *testing.T) {
	var seen entity.Event
	i := NewInteractor()
	i.AddListener(EventListenerFunc(func(e entity.Event) { seen = e }))

	i.Broadcast(entity.NewEvent(entity.ActionDidChange, 42))

	assert.Equal(t, entity.ActionDidChange, seen.Action())
	assert.Equal(t, 42, seen.Payload())
}

func TestInteractor_NilListenerIgnored(t *testing.T) {
	i := NewInteractor()
	remove := i.AddListener(nil)
	remove()
	assert.Nil(t, i.Listeners())
}
