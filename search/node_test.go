package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_PathAndActions(t *testing.T) {
	root := newRoot(keyState("r"))
	a := root.child(Transition{Action: Action{Name: "left", Priority: 1}, State: keyState("a")})
	b := a.child(Transition{Action: Action{Name: "up", Priority: 2}, State: keyState("b")})

	assert.Equal(t, 2, b.Depth)
	assert.Equal(t, []*Node{root, a, b}, b.Steps())
	assert.Equal(t, []Action{StartAction, {Name: "left", Priority: 1}, {Name: "up", Priority: 2}}, b.Actions())

	// Path is restartable
	for range 2 {
		var keys []string
		for n := range b.Path() {
			keys = append(keys, n.State.Key())
		}
		assert.Equal(t, []string{"r", "a", "b"}, keys)
	}

	// early break stops the walk
	count := 0
	for range b.Path() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestNode_Root(t *testing.T) {
	root := newRoot(keyState("only"))
	assert.Nil(t, root.Parent)
	assert.Zero(t, root.Depth)
	assert.True(t, root.Action.IsStart())
	assert.Equal(t, "start", root.Action.String())
	assert.Len(t, root.Steps(), 1)
}

func TestResult_Accessors(t *testing.T) {
	r := Result{Outcome: Unreachable}
	assert.False(t, r.Found())
	assert.Equal(t, -1, r.Steps())
	assert.ErrorIs(t, r.Err(), ErrNoSolution)

	goal := newRoot(keyState("g"))
	r = Result{Outcome: Solved, Goal: goal, Path: goal.Steps()}
	assert.True(t, r.Found())
	assert.Zero(t, r.Steps())
	assert.NoError(t, r.Err())
}
