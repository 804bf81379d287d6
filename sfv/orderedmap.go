package sfv

// OrderedMap is an insertion-ordered associative container. Overwriting an
// existing key's value does not change that key's position; removing a key
// shifts subsequent entries forward. Both of those properties rule out a
// plain Go map (no order at all) and most off-the-shelf ordered-map
// libraries (which move an overwritten key to the end).
//
// Representation mirrors the linear parameter lists the teacher builds its
// decorator parameters on (core/decorators/params.go's []DecoratorParam,
// scanned linearly by name on every Extract* call): a flat slice of
// entries, scanned linearly on put/get/remove. Structured-field maps are
// small in practice (RFC 9651 itself never shows more than a handful of
// parameters or dictionary members), so O(n) lookup beats the constant
// overhead of a hash index plus a side list to track order.
type OrderedMap[K comparable, V any] struct {
	entries []entry[K, V]
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{}
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

func (m *OrderedMap[K, V]) indexOf(key K) int {
	for i := range m.entries {
		if m.entries[i].key == key {
			return i
		}
	}
	return -1
}

// Get returns the value stored for key and whether it was present.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	if i := m.indexOf(key); i >= 0 {
		return m.entries[i].value, true
	}
	return zero, false
}

// Contains reports whether key is present.
func (m *OrderedMap[K, V]) Contains(key K) bool {
	if m == nil {
		return false
	}
	return m.indexOf(key) >= 0
}

// Put inserts or overwrites the value for key, returning the previous value
// and whether one existed. Overwriting preserves the key's original
// position; a new key is appended.
func (m *OrderedMap[K, V]) Put(key K, value V) (V, bool) {
	if i := m.indexOf(key); i >= 0 {
		old := m.entries[i].value
		m.entries[i].value = value
		return old, true
	}
	var zero V
	m.entries = append(m.entries, entry[K, V]{key: key, value: value})
	return zero, false
}

// Remove deletes key if present, shifting subsequent entries forward, and
// returns the removed value and whether it was present.
func (m *OrderedMap[K, V]) Remove(key K) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	i := m.indexOf(key)
	if i < 0 {
		return zero, false
	}
	old := m.entries[i].value
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	return old, true
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	keys := make([]K, len(m.entries))
	for i := range m.entries {
		keys[i] = m.entries[i].key
	}
	return keys
}

// Range calls f for each (key, value) pair in insertion order, stopping
// early if f returns false.
func (m *OrderedMap[K, V]) Range(f func(key K, value V) bool) {
	if m == nil {
		return
	}
	for _, e := range m.entries {
		if !f(e.key, e.value) {
			return
		}
	}
}

// MapValues returns a new OrderedMap with every value transformed by f,
// preserving key order.
func MapValues[K comparable, V, W any](m *OrderedMap[K, V], f func(K, V) W) *OrderedMap[K, W] {
	out := NewOrderedMap[K, W]()
	m.Range(func(k K, v V) bool {
		out.entries = append(out.entries, entry[K, W]{key: k, value: f(k, v)})
		return true
	})
	return out
}

// Equal reports whether m and other contain the same keys in the same
// order with equal values under eq.
func (m *OrderedMap[K, V]) Equal(other *OrderedMap[K, V], eq func(a, b V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i := range m.entries {
		oe := other.entries[i]
		if m.entries[i].key != oe.key || !eq(m.entries[i].value, oe.value) {
			return false
		}
	}
	return true
}
