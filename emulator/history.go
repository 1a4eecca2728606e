package emulator

import (
	"github.com/ezrec/sap1/cpu"
)

const (
	HISTORY_LIMIT = 16 // Maximum history depth
)

// History holds the most recent steps, oldest first.
type History struct {
	Steps []cpu.Step
}

// Push appends a step, dropping the oldest if full.
func (h *History) Push(step cpu.Step) {
	if h.Full() {
		copy(h.Steps, h.Steps[1:])
		h.Steps = h.Steps[:len(h.Steps)-1]
	}
	h.Steps = append(h.Steps, step)
}

func (h *History) Empty() bool {
	return len(h.Steps) == 0
}

func (h *History) Full() bool {
	return len(h.Steps) == HISTORY_LIMIT
}

// Peek returns the most recent step.
func (h *History) Peek() (step cpu.Step, ok bool) {
	if h.Empty() {
		return
	}

	return h.Steps[len(h.Steps)-1], true
}

func (h *History) Reset() {
	if len(h.Steps) > 0 {
		h.Steps = h.Steps[:0]
	}
}
