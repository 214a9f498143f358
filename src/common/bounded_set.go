package common

// BoundedSet is a set of string keys that never grows beyond a fixed
// capacity. When the set is full, an arbitrary member is evicted before the
// new key is inserted. It is not an LRU: the evicted member is whichever key
// map iteration yields first, so callers get bounded memory but no recency
// guarantee.
type BoundedSet struct {
	capacity int
	items    map[string]struct{}
}

// NewBoundedSet creates an empty BoundedSet with the given capacity.
func NewBoundedSet(capacity int) *BoundedSet {
	return &BoundedSet{
		capacity: capacity,
		items:    make(map[string]struct{}),
	}
}

// Add inserts a key, evicting arbitrary members first if the set is at
// capacity. A set with no capacity drops everything.
func (s *BoundedSet) Add(key string) {
	if s.capacity <= 0 {
		return
	}
	for len(s.items) >= s.capacity {
		s.pop()
	}
	s.items[key] = struct{}{}
}

// Contains reports whether key is a member of the set.
func (s *BoundedSet) Contains(key string) bool {
	_, ok := s.items[key]
	return ok
}

// Len returns the number of members.
func (s *BoundedSet) Len() int {
	return len(s.items)
}

// Capacity returns the maximum number of members.
func (s *BoundedSet) Capacity() int {
	return s.capacity
}

// pop removes an arbitrary member.
func (s *BoundedSet) pop() {
	for k := range s.items {
		delete(s.items, k)
		return
	}
}
