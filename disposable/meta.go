package disposable

import "github.com/delaneyj/coldsignal/lock"

// Meta holds a single replaceable disposable. Setting a new one disposes the
// previous; once Meta itself is disposed anything set afterwards is disposed
// immediately.
type Meta struct {
	mu       lock.Mutex
	current  Disposable
	disposed bool
}

func NewMeta() *Meta {
	return &Meta{mu: lock.New()}
}

func (m *Meta) Set(d Disposable) {
	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		if d != nil {
			d.Dispose()
		}
		return
	}
	prev := m.current
	m.current = d
	m.mu.Unlock()

	if prev != nil {
		prev.Dispose()
	}
}

// Get returns the held disposable, nil once disposed.
func (m *Meta) Get() (d Disposable) {
	lock.Guard(m.mu, func() {
		d = m.current
	})
	return d
}

func (m *Meta) Dispose() {
	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		return
	}
	m.disposed = true
	current := m.current
	m.current = nil
	m.mu.Unlock()

	if current != nil {
		current.Dispose()
	}
}
