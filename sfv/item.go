package sfv

// Parameters is an ordered mapping from Key to bare item, attached to an
// Item or InnerList. Parameter values are bare items only — no nested
// parameters (spec.md §3).
type Parameters = OrderedMap[Key, BareItem]

// NewParameters returns an empty Parameters map.
func NewParameters() *Parameters { return NewOrderedMap[Key, BareItem]() }

// Item is a bare item with its parameters (spec.md §3).
type Item struct {
	Value  BareItem
	Params *Parameters
}

// NewItem constructs an Item with the given bare item and no parameters.
func NewItem(v BareItem) Item {
	return Item{Value: v, Params: NewParameters()}
}

// paramsEqual compares two Parameters maps for equality.
func paramsEqual(a, b *Parameters) bool {
	if a.Len() != b.Len() {
		return false
	}
	return a.Equal(b, func(x, y BareItem) bool { return x.Equal(y) })
}

// Equal reports whether two Items are structurally identical: same bare
// item and the same parameters in the same order.
func (i Item) Equal(o Item) bool {
	return i.Value.Equal(o.Value) && paramsEqual(i.Params, o.Params)
}
