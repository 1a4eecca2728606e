package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sap1/cpu"
)

func stepAt(addr uint8) cpu.Step {
	return cpu.Step{Address: addr}
}

func TestHistory_Push(t *testing.T) {
	assert := assert.New(t)

	h := &History{}
	assert.True(h.Empty())
	assert.False(h.Full())

	h.Push(stepAt(3))
	assert.False(h.Empty())
	assert.Equal(1, len(h.Steps))
	assert.Equal(uint8(3), h.Steps[0].Address)
}

func TestHistory_Peek(t *testing.T) {
	assert := assert.New(t)

	h := &History{}
	step, ok := h.Peek()
	assert.False(ok)
	assert.Equal(cpu.Step{}, step)

	h.Push(stepAt(1))
	h.Push(stepAt(2))

	step, ok = h.Peek()
	assert.True(ok)
	assert.Equal(uint8(2), step.Address)
	assert.Equal(2, len(h.Steps))
}

func TestHistory_Overflow(t *testing.T) {
	assert := assert.New(t)

	h := &History{}
	for n := range HISTORY_LIMIT {
		assert.False(h.Full())
		h.Push(stepAt(uint8(n)))
	}
	assert.True(h.Full())

	h.Push(stepAt(0x42))
	assert.True(h.Full())
	assert.Equal(HISTORY_LIMIT, len(h.Steps))
	assert.Equal(uint8(1), h.Steps[0].Address)
	assert.Equal(uint8(0x42), h.Steps[HISTORY_LIMIT-1].Address)
}

func TestHistory_Reset(t *testing.T) {
	assert := assert.New(t)

	h := &History{}
	h.Reset()
	assert.True(h.Empty())

	h.Push(stepAt(1))
	h.Push(stepAt(2))
	h.Reset()
	assert.True(h.Empty())
	assert.Equal(0, len(h.Steps))
}
