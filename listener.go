package slide

// ProgressFunc receives the overlay's drag progress: 0 when fully visible,
// 1 when fully hidden.
type ProgressFunc func(progress float64)

type progressListener struct {
	id uint32
	fn ProgressFunc
}

// listenerRegistry keeps progress listeners in registration order.
type listenerRegistry struct {
	entries []progressListener
	scratch []progressListener // dispatch snapshot, reused across frames
	nextID  uint32
}

// ListenerHandle identifies a registered progress listener.
type ListenerHandle struct {
	id  uint32
	reg *listenerRegistry
}

// Remove unregisters the listener. Removing during a dispatch takes effect
// from the next dispatch; the in-flight one still reaches every listener
// that was registered when it began.
func (h ListenerHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.id)
}

func (r *listenerRegistry) add(fn ProgressFunc) ListenerHandle {
	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, progressListener{id: id, fn: fn})
	return ListenerHandle{id: id, reg: r}
}

func (r *listenerRegistry) remove(id uint32) {
	for i := range r.entries {
		if r.entries[i].id == id {
			copy(r.entries[i:], r.entries[i+1:])
			r.entries[len(r.entries)-1] = progressListener{}
			r.entries = r.entries[:len(r.entries)-1]
			return
		}
	}
}

// dispatch calls every listener with p, iterating a snapshot so listeners
// may add or remove registrations while being notified.
func (r *listenerRegistry) dispatch(p float64) {
	if len(r.entries) == 0 {
		return
	}
	snap := append(r.scratch[:0], r.entries...)
	r.scratch = nil // a nested dispatch must not share the buffer
	for _, l := range snap {
		l.fn(p)
	}
	clear(snap)
	r.scratch = snap[:0]
}
