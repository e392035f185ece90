package disposable

import (
	"reflect"

	"github.com/delaneyj/coldsignal/lock"
	mapset "github.com/deckarep/golang-set/v2"
)

// Set disposes all of its members together. Members are compared by
// identity; a member whose type is not comparable, such as Func, is boxed
// in an Action on the way in and can no longer be removed.
type Set struct {
	mu       lock.Mutex
	members  mapset.Set[Disposable]
	disposed bool
}

func NewSet(members ...Disposable) *Set {
	s := &Set{
		mu:      lock.New(),
		members: mapset.NewThreadUnsafeSet[Disposable](),
	}
	for _, d := range members {
		if d != nil {
			s.members.Add(hashable(d))
		}
	}
	return s
}

func isComparable(d Disposable) bool {
	return reflect.TypeOf(d).Comparable()
}

func hashable(d Disposable) Disposable {
	if isComparable(d) {
		return d
	}
	return NewAction(d.Dispose)
}

// Add stores d, or disposes it right away if the set is already disposed.
func (s *Set) Add(d Disposable) {
	if d == nil {
		return
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		d.Dispose()
		return
	}
	s.members.Add(hashable(d))
	s.mu.Unlock()
}

// Remove forgets d without disposing it.
func (s *Set) Remove(d Disposable) {
	if d == nil || !isComparable(d) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members.Remove(d)
}

func (s *Set) Len() (n int) {
	lock.Guard(s.mu, func() {
		n = s.members.Cardinality()
	})
	return n
}

func (s *Set) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	members := s.members.ToSlice()
	s.members.Clear()
	s.mu.Unlock()

	for _, d := range members {
		d.Dispose()
	}
}
