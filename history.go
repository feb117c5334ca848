package undofsm

// history is a LIFO stack of visited states, oldest at the bottom
type history struct {
	items []StateID
}

func (h *history) push(id StateID) {
	h.items = append(h.items, id)
}

// pop removes and returns the most recent entry
func (h *history) pop() (StateID, bool) {
	n := len(h.items)
	if n == 0 {
		return "", false
	}
	id := h.items[n-1]
	h.items = h.items[:n-1]
	return id, true
}

func (h *history) len() int {
	return len(h.items)
}

func (h *history) clear() {
	h.items = nil
}

// snapshot returns a copy of the stack, oldest first
func (h *history) snapshot() []StateID {
	out := make([]StateID, len(h.items))
	copy(out, h.items)
	return out
}
