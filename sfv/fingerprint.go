package sfv

import (
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint is a content hash of a parsed field's canonical form,
// letting callers dedupe or cache structured field values without storing
// the bytes themselves. It mirrors the teacher's two-step
// canonicalize-then-hash pattern (core/planfmt/canonical.go +
// core/planfmt/writer.go's BLAKE2b-256 digest): first reduce the tree to a
// small, order-stable CBOR envelope, then hash that envelope, rather than
// hashing the RFC 9651 bytes directly — the serializer's own canonical
// bytes are already order-stable, but routing through CBOR means the
// fingerprint only changes when the tree's *value* changes, independent of
// any future change to the text grammar's canonical spelling.
type Fingerprint [32]byte

type fpBareItem struct {
	Kind byte
	Bool bool
	Int  int64
	Dec  [2]int64 // mantissa, exponent
	Str  string
	Tok  string
	Byte string
	Date int64
	Disp string
}

type fpParam struct {
	Key   string
	Value fpBareItem
}

type fpItem struct {
	Value  fpBareItem
	Params []fpParam
}

type fpInnerList struct {
	Items  []fpItem
	Params []fpParam
}

type fpEntry struct {
	IsInnerList bool
	Item        fpItem
	InnerList   fpInnerList
}

func toFPBareItem(v BareItem) fpBareItem {
	out := fpBareItem{Kind: byte(v.Kind)}
	switch v.Kind {
	case KindBoolean:
		out.Bool, _ = v.Bool()
	case KindInteger:
		out.Int, _ = v.Int()
	case KindDecimal:
		d, _ := v.Dec()
		c := d.Canonicalize()
		out.Dec = [2]int64{c.Mantissa(), int64(c.Exponent())}
	case KindString:
		out.Str, _ = v.Str()
	case KindToken:
		t, _ := v.Tok()
		out.Tok = string(t)
	case KindByteSequence:
		out.Byte, _ = v.ByteSeq()
	case KindDate:
		out.Date, _ = v.Date()
	case KindDisplayString:
		ds, _ := v.Disp()
		out.Disp = string(ds)
	}
	return out
}

func toFPParams(params *Parameters) []fpParam {
	out := make([]fpParam, 0, params.Len())
	params.Range(func(k Key, v BareItem) bool {
		out = append(out, fpParam{Key: string(k), Value: toFPBareItem(v)})
		return true
	})
	return out
}

func toFPItem(item Item) fpItem {
	return fpItem{Value: toFPBareItem(item.Value), Params: toFPParams(item.Params)}
}

func toFPInnerList(il InnerList) fpInnerList {
	items := make([]fpItem, len(il.Items))
	for i, it := range il.Items {
		items[i] = toFPItem(it)
	}
	return fpInnerList{Items: items, Params: toFPParams(il.Params)}
}

func toFPEntry(v ItemOrInnerList) fpEntry {
	if v.IsInnerList {
		return fpEntry{IsInnerList: true, InnerList: toFPInnerList(v.InnerList)}
	}
	return fpEntry{Item: toFPItem(v.Item)}
}

func hashCanonical(v any) (Fingerprint, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return Fingerprint{}, err
	}
	data, err := encMode.Marshal(v)
	if err != nil {
		return Fingerprint{}, err
	}
	return blake2b.Sum256(data), nil
}

// FingerprintItem computes the Fingerprint of a parsed Item.
func FingerprintItem(item Item) (Fingerprint, error) {
	return hashCanonical(toFPItem(item))
}

// FingerprintList computes the Fingerprint of a parsed List.
func FingerprintList(list List) (Fingerprint, error) {
	entries := make([]fpEntry, len(list))
	for i, v := range list {
		entries[i] = toFPEntry(v)
	}
	return hashCanonical(entries)
}

// FingerprintDictionary computes the Fingerprint of a parsed Dictionary.
func FingerprintDictionary(dict *Dictionary) (Fingerprint, error) {
	type kv struct {
		Key   string
		Value fpEntry
	}
	out := make([]kv, 0, dict.Len())
	dict.Range(func(k Key, v ItemOrInnerList) bool {
		out = append(out, kv{Key: string(k), Value: toFPEntry(v)})
		return true
	})
	return hashCanonical(out)
}
