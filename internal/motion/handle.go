package motion

// Handle lets a caller wait for an entrance or exit sequence to settle.
// Handles returned for no-op operations (no configuration, no exit state)
// are already settled. Stop abandons outstanding handles without signalling
// them; only natural completion resolves a handle.
type Handle struct {
	done    chan struct{}
	settled bool
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

func settledHandle() *Handle {
	h := newHandle()
	h.resolve()
	return h
}

func (h *Handle) resolve() {
	if h.settled {
		return
	}
	h.settled = true
	close(h.done)
}

// Done returns a channel closed when the sequence settles.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Settled reports completion without blocking.
func (h *Handle) Settled() bool {
	return h != nil && h.settled
}
