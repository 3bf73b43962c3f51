package rib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/riblet/internal/domain/entity"
)

type countingBuilder struct {
	builds int
}

func (b *countingBuilder) Build() *Riblet {
	b.builds++
	return New(b)
}

func TestBuild_NoCache(t *testing.T) {
	b := &countingBuilder{}
	u1 := b.Build()
	u2 := b.Build()

	assert.NotSame(t, u1, u2)
	assert.NotEqual(t, u1.ID, u2.ID)
	assert.Equal(t, 2, b.builds)
	assert.Same(t, b, u1.Builder)
}

func TestBuildWithParent_BubblesToParent(t *testing.T) {
	parent := (&countingBuilder{}).Build()
	var bubbled []entity.Action
	parent.Interactor.AddListener(EventListenerFunc(func(e entity.Event) {
		bubbled = append(bubbled, e.Action())
	}))

	child := BuildWithParent(&countingBuilder{}, parent.Interactor)
	require.Len(t, child.Interactor.Listeners(), 1)

	child.Interactor.Broadcast(entity.NewEvent(entity.ActionWillChange, nil))
	child.Interactor.Broadcast(entity.NewEvent(entity.ActionDidChange, nil))

	assert.Equal(t, []entity.Action{entity.ActionWillChange, entity.ActionDidChange}, bubbled)
}

func TestBuildWithParent_ChainsThroughGenerations(t *testing.T) {
	root := (&countingBuilder{}).Build()
	var got []any
	root.Interactor.AddListener(EventListenerFunc(func(e entity.Event) {
		got = append(got, e.Payload())
	}))

	mid := BuildWithParent(&countingBuilder{}, root.Interactor)
	leafUnit := BuildWithParent(&countingBuilder{}, mid.Interactor)

	leafUnit.Interactor.Broadcast(entity.NewEvent(entity.ActionDidChange, "reload"))

	assert.Equal(t, []any{"reload"}, got)
}

func TestBuildWithParent_NilParent(t *testing.T) {
	child := BuildWithParent(&countingBuilder{}, nil)
	assert.Nil(t, child.Interactor.Listeners())
}

func TestBuildWithParent_SameParentTwiceYieldsDistinctUnits(t *testing.T) {
	parent := (&countingBuilder{}).Build()
	b := &countingBuilder{}

	u1 := BuildWithParent(b, parent.Interactor)
	u2 := BuildWithParent(b, parent.Interactor)

	assert.False(t, u1.Equal(u2))
}
