package sfv

// BareInnerList is an ordered sequence of Item (spec.md §3).
type BareInnerList []Item

// InnerList is a BareInnerList with its own parameters (spec.md §3).
type InnerList struct {
	Items  BareInnerList
	Params *Parameters
}

// NewInnerList constructs an InnerList with no parameters.
func NewInnerList(items ...Item) InnerList {
	return InnerList{Items: items, Params: NewParameters()}
}

// Equal reports whether two InnerLists are structurally identical.
func (l InnerList) Equal(o InnerList) bool {
	if len(l.Items) != len(o.Items) {
		return false
	}
	for i := range l.Items {
		if !l.Items[i].Equal(o.Items[i]) {
			return false
		}
	}
	return paramsEqual(l.Params, o.Params)
}

// ItemOrInnerList is the discriminated union spec.md §3 defines: either a
// plain Item or a parenthesized InnerList. A bool discriminant plus two
// payload fields is preferred here, the same way BareItemKind is, over an
// interface hierarchy — there are exactly two variants and no behavior
// beyond equality/serialization differs enough to warrant dynamic dispatch.
type ItemOrInnerList struct {
	IsInnerList bool
	Item        Item
	InnerList   InnerList
}

// AsItem wraps an Item as an ItemOrInnerList.
func AsItem(i Item) ItemOrInnerList { return ItemOrInnerList{Item: i} }

// AsInnerList wraps an InnerList as an ItemOrInnerList.
func AsInnerList(l InnerList) ItemOrInnerList { return ItemOrInnerList{IsInnerList: true, InnerList: l} }

// Equal reports whether two ItemOrInnerList values are structurally identical.
func (v ItemOrInnerList) Equal(o ItemOrInnerList) bool {
	if v.IsInnerList != o.IsInnerList {
		return false
	}
	if v.IsInnerList {
		return v.InnerList.Equal(o.InnerList)
	}
	return v.Item.Equal(o.Item)
}
