package undofsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryStack(t *testing.T) {
	var h history

	_, ok := h.pop()
	assert.False(t, ok)

	h.push(stateA)
	h.push(stateB)
	h.push(stateC)
	assert.Equal(t, 3, h.len())
	assert.Equal(t, []StateID{stateA, stateB, stateC}, h.snapshot())

	id, ok := h.pop()
	assert.True(t, ok)
	assert.Equal(t, stateC, id)

	id, _ = h.pop()
	assert.Equal(t, stateB, id)
	assert.Equal(t, 1, h.len())

	h.clear()
	assert.Equal(t, 0, h.len())
	assert.Empty(t, h.snapshot())
}
