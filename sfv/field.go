package sfv

// List is a ListField: a sequence of ItemOrInnerList (spec.md §3).
type List []ItemOrInnerList

// Dictionary is a DictionaryField: an ordered mapping from Key to
// ItemOrInnerList (spec.md §3).
type Dictionary = OrderedMap[Key, ItemOrInnerList]

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary { return NewOrderedMap[Key, ItemOrInnerList]() }

// EqualList reports whether two Lists are structurally identical.
func EqualList(a, b List) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// EqualDictionary reports whether two Dictionaries are structurally
// identical: same keys, in the same order, with equal values.
func EqualDictionary(a, b *Dictionary) bool {
	return a.Equal(b, func(x, y ItemOrInnerList) bool { return x.Equal(y) })
}

// Equal is the structural-equality helper named in SPEC_FULL.md §2/§3: it
// compares two field values of the same kind (Item, List, or Dictionary),
// without requiring callers to reach into OrderedMap/slice internals or a
// reflection-based deep-equal that would also compare unexported cursor
// state. Used to state invariant 3 (spec.md §8) directly in tests.
func Equal[T interface {
	Item | List | *Dictionary
}](a, b T) bool {
	switch av := any(a).(type) {
	case Item:
		return av.Equal(any(b).(Item))
	case List:
		return EqualList(av, any(b).(List))
	case *Dictionary:
		return EqualDictionary(av, any(b).(*Dictionary))
	default:
		return false
	}
}
