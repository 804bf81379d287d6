package sfv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/sfv/sfv"
)

// (a) spec.md §8: "Sec-CH-Example, Sec-CH-Example-2" as a list.
func TestListOfTokens(t *testing.T) {
	list, err := sfv.ParseList([]byte("Sec-CH-Example, Sec-CH-Example-2"))
	require.NoError(t, err)
	require.Len(t, list, 2)

	first, ok := list[0].Item.Value.Tok()
	require.True(t, ok)
	assert.Equal(t, "Sec-CH-Example", string(first))

	out, err := sfv.WriteList(list)
	require.NoError(t, err)
	assert.Equal(t, "Sec-CH-Example, Sec-CH-Example-2", string(out))
}

// (b) spec.md §8: dictionary with parameters and an inner list.
func TestDictionaryWithParametersAndInnerList(t *testing.T) {
	input := `primary=bar;q=1.0, secondary=baz;q=0.5;fallback=last, acceptablejurisdictions=(AU;q=1.0 GB;q=0.9 FR);fallback="primary"`
	dict, err := sfv.ParseDictionary([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, []sfv.Key{"primary", "secondary", "acceptablejurisdictions"}, dict.Keys())

	secondary, ok := dict.Get("secondary")
	require.True(t, ok)
	require.False(t, secondary.IsInnerList)
	assert.Equal(t, []sfv.Key{"q", "fallback"}, secondary.Item.Params.Keys())

	q, _ := secondary.Item.Params.Get("q")
	dec, ok := q.Dec()
	require.True(t, ok)
	assert.Equal(t, "0.5", dec.String())

	fallback, _ := secondary.Item.Params.Get("fallback")
	tok, ok := fallback.Tok()
	require.True(t, ok)
	assert.Equal(t, "last", string(tok))

	aj, ok := dict.Get("acceptablejurisdictions")
	require.True(t, ok)
	require.True(t, aj.IsInnerList)
	require.Len(t, aj.InnerList.Items, 3)
	assert.Equal(t, []sfv.Key{"fallback"}, aj.InnerList.Params.Keys())
	fb, _ := aj.InnerList.Params.Get("fallback")
	str, ok := fb.Str()
	require.True(t, ok)
	assert.Equal(t, "primary", str)
}

// (c) spec.md §8: "5;bar=baz" round-trips.
func TestItemWithParameterRoundTrips(t *testing.T) {
	item, err := sfv.ParseItem([]byte("5;bar=baz"))
	require.NoError(t, err)

	n, ok := item.Value.Int()
	require.True(t, ok)
	assert.EqualValues(t, 5, n)

	bar, ok := item.Params.Get("bar")
	require.True(t, ok)
	tok, ok := bar.Tok()
	require.True(t, ok)
	assert.Equal(t, "baz", string(tok))

	out, err := sfv.WriteItem(item)
	require.NoError(t, err)
	assert.Equal(t, "5;bar=baz", string(out))
}

// (d) spec.md §8: "987654321.123" as an item.
func TestDecimalItem(t *testing.T) {
	item, err := sfv.ParseItem([]byte("987654321.123"))
	require.NoError(t, err)

	dec, ok := item.Value.Dec()
	require.True(t, ok)
	assert.EqualValues(t, 987654321123, dec.Mantissa())
	assert.EqualValues(t, -3, dec.Exponent())

	out, err := sfv.WriteItem(item)
	require.NoError(t, err)
	assert.Equal(t, "987654321.123", string(out))
}

// (e) spec.md §8: byte sequence is never decoded.
func TestByteSequenceNeverDecoded(t *testing.T) {
	item, err := sfv.ParseItem([]byte(":AQIDBA==:"))
	require.NoError(t, err)
	bs, ok := item.Value.ByteSeq()
	require.True(t, ok)
	assert.Equal(t, "AQIDBA==", bs)

	out, err := sfv.WriteItem(item)
	require.NoError(t, err)
	assert.Equal(t, ":AQIDBA==:", string(out))
}

// (f) spec.md §8: display string decode/encode and UTF-8 validation.
func TestDisplayString(t *testing.T) {
	item, err := sfv.ParseItem([]byte(`%"f%c3%bc%c3%bc"`))
	require.NoError(t, err)
	ds, ok := item.Value.Disp()
	require.True(t, ok)
	assert.Equal(t, "füü", string(ds))

	out, err := sfv.WriteItem(item)
	require.NoError(t, err)
	assert.Equal(t, `%"f%c3%bc%c3%bc"`, string(out))
}

func TestDisplayStringInvalidUTF8(t *testing.T) {
	_, err := sfv.ParseItem([]byte(`%"f%c3%28"`))
	require.Error(t, err)
	kind, ok := sfv.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, sfv.ErrInvalidDisplayString, kind)
}

// (g) spec.md §8: malformed lists.
func TestInvalidListSeparators(t *testing.T) {
	_, err := sfv.ParseList([]byte("1,,42"))
	require.Error(t, err)
	kind, _ := sfv.KindOf(err)
	assert.Equal(t, sfv.ErrInvalidList, kind)

	_, err = sfv.ParseList([]byte("1, 42,"))
	require.Error(t, err)
	kind, _ = sfv.KindOf(err)
	assert.Equal(t, sfv.ErrInvalidList, kind)
}

// (h) spec.md §8: inner lists.
func TestInnerList(t *testing.T) {
	list, err := sfv.ParseList([]byte("(1 2 3)"))
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, list[0].IsInnerList)
	assert.Len(t, list[0].InnerList.Items, 3)
	assert.Equal(t, 0, list[0].InnerList.Params.Len())

	_, err = sfv.ParseList([]byte("(1 2 3"))
	require.Error(t, err)
	kind, _ := sfv.KindOf(err)
	assert.Equal(t, sfv.ErrInvalidInnerList, kind)
}

func TestNonCanonicalInputsParseSuccessfully(t *testing.T) {
	// Leading spaces, tabs/mixed OWS around commas.
	_, err := sfv.ParseItem([]byte("  5"))
	require.NoError(t, err)

	list, err := sfv.ParseList([]byte("1,\t2 ,3"))
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestTrailingBytesRejected(t *testing.T) {
	_, err := sfv.ParseItem([]byte("5 garbage"))
	require.Error(t, err)
	kind, _ := sfv.KindOf(err)
	assert.Equal(t, sfv.ErrInvalidTrailingBytes, kind)
}

func TestEmptyByteSequenceParses(t *testing.T) {
	item, err := sfv.ParseItem([]byte("::"))
	require.NoError(t, err)
	bs, ok := item.Value.ByteSeq()
	require.True(t, ok)
	assert.Equal(t, "", bs)
}

func TestDateItem(t *testing.T) {
	item, err := sfv.ParseItem([]byte("@1659578233"))
	require.NoError(t, err)
	d, ok := item.Value.Date()
	require.True(t, ok)
	assert.EqualValues(t, 1659578233, d)

	out, err := sfv.WriteItem(item)
	require.NoError(t, err)
	assert.Equal(t, "@1659578233", string(out))
}

func TestDictionaryBooleanTrueShorthand(t *testing.T) {
	dict, err := sfv.ParseDictionary([]byte("a, b;x=1"))
	require.NoError(t, err)

	a, ok := dict.Get("a")
	require.True(t, ok)
	b, ok := a.Item.Value.Bool()
	require.True(t, ok)
	assert.True(t, b)

	out, err := sfv.WriteDictionary(dict)
	require.NoError(t, err)
	assert.Equal(t, "a, b;x=1", string(out))
}
