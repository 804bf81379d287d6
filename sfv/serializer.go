package sfv

import (
	"bytes"
	"strconv"

	"github.com/aledsdavies/sfv/internal/bytesx"
)

// Writer renders a parse tree into canonical RFC 9651 bytes (spec.md §4.4).
// It borrows the tree read-only and writes into an internal scratch buffer
// that is cleared at the start of every public entry point, the same
// buffer-reuse shape the teacher's planfmt.Writer uses around its own
// bytes.Buffer (core/planfmt/writer.go) — one allocation amortized across
// however many field values a caller serializes with the same Writer.
// Concurrent use of the same Writer is unsupported (spec.md §5); distinct
// Writers are fully independent.
type Writer struct {
	buf bytes.Buffer
}

// WriteItem renders item into canonical bytes (spec.md §4.4 entry point).
func (w *Writer) WriteItem(item Item) ([]byte, error) {
	w.buf.Reset()
	if err := w.writeItem(&w.buf, item); err != nil {
		return nil, err
	}
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())
	return out, nil
}

// WriteList renders list into canonical bytes; an empty list serializes to
// empty bytes (spec.md §4.4 entry point).
func (w *Writer) WriteList(list List) ([]byte, error) {
	w.buf.Reset()
	for i, v := range list {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		if err := w.writeItemOrInnerList(&w.buf, v); err != nil {
			return nil, err
		}
	}
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())
	return out, nil
}

// WriteDictionary renders dict into canonical bytes; an empty dictionary
// serializes to empty bytes (spec.md §4.4 entry point).
func (w *Writer) WriteDictionary(dict *Dictionary) ([]byte, error) {
	w.buf.Reset()
	first := true
	var outerErr error
	dict.Range(func(key Key, value ItemOrInnerList) bool {
		if !first {
			w.buf.WriteString(", ")
		}
		first = false
		if err := writeKey(&w.buf, key); err != nil {
			outerErr = err
			return false
		}
		if !value.IsInnerList {
			if b, ok := value.Item.Value.Bool(); ok && b {
				if err := writeParameters(&w.buf, value.Item.Params); err != nil {
					outerErr = err
					return false
				}
				return true
			}
		}
		w.buf.WriteByte(bytesx.Equals)
		if err := w.writeItemOrInnerList(&w.buf, value); err != nil {
			outerErr = err
			return false
		}
		return true
	})
	if outerErr != nil {
		return nil, outerErr
	}
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())
	return out, nil
}

// Package-level convenience wrappers, one fresh Writer per call, for
// callers who don't need to amortize the scratch buffer across calls.

// WriteItem renders item into canonical bytes.
func WriteItem(item Item) ([]byte, error) { return (&Writer{}).WriteItem(item) }

// WriteList renders list into canonical bytes.
func WriteList(list List) ([]byte, error) { return (&Writer{}).WriteList(list) }

// WriteDictionary renders dict into canonical bytes.
func WriteDictionary(dict *Dictionary) ([]byte, error) { return (&Writer{}).WriteDictionary(dict) }

func (w *Writer) writeItemOrInnerList(buf *bytes.Buffer, v ItemOrInnerList) error {
	if v.IsInnerList {
		return w.writeInnerList(buf, v.InnerList)
	}
	return w.writeItem(buf, v.Item)
}

func (w *Writer) writeInnerList(buf *bytes.Buffer, il InnerList) error {
	buf.WriteByte(bytesx.LParen)
	for i, item := range il.Items {
		if i > 0 {
			buf.WriteByte(bytesx.SP)
		}
		if err := w.writeItem(buf, item); err != nil {
			return err
		}
	}
	buf.WriteByte(bytesx.RParen)
	return writeParameters(buf, il.Params)
}

func (w *Writer) writeItem(buf *bytes.Buffer, item Item) error {
	if err := writeBareItem(buf, item.Value); err != nil {
		return err
	}
	return writeParameters(buf, item.Params)
}

func writeParameters(buf *bytes.Buffer, params *Parameters) error {
	var outerErr error
	params.Range(func(key Key, value BareItem) bool {
		buf.WriteByte(bytesx.Semicolon)
		if err := writeKey(buf, key); err != nil {
			outerErr = err
			return false
		}
		if b, ok := value.Bool(); ok && b {
			return true
		}
		buf.WriteByte(bytesx.Equals)
		if err := writeBareItem(buf, value); err != nil {
			outerErr = err
			return false
		}
		return true
	})
	return outerErr
}

func writeKey(buf *bytes.Buffer, key Key) error {
	if !IsValidKey(string(key)) {
		return newErr(ErrInvalidKey, -1, "%q is not a valid key", key)
	}
	buf.WriteString(string(key))
	return nil
}

func writeBareItem(buf *bytes.Buffer, v BareItem) error {
	switch v.Kind {
	case KindBoolean:
		b, _ := v.Bool()
		if b {
			buf.WriteString("?1")
		} else {
			buf.WriteString("?0")
		}
		return nil
	case KindInteger:
		n, _ := v.Int()
		if n > maxIntegerMagnitude || n < -maxIntegerMagnitude {
			return newErr(ErrInvalidIntegerOrDecimal, -1, "integer %d out of range", n)
		}
		buf.WriteString(strconv.FormatInt(n, 10))
		return nil
	case KindDecimal:
		d, _ := v.Dec()
		s, err := d.Format()
		if err != nil {
			return err
		}
		buf.WriteString(s)
		return nil
	case KindString:
		s, _ := v.Str()
		return writeString(buf, s)
	case KindToken:
		t, _ := v.Tok()
		if !IsValidToken(string(t)) {
			return newErr(ErrInvalidToken, -1, "%q is not a valid token", t)
		}
		buf.WriteString(string(t))
		return nil
	case KindByteSequence:
		bs, _ := v.ByteSeq()
		buf.WriteByte(bytesx.Colon)
		buf.WriteString(bs)
		buf.WriteByte(bytesx.Colon)
		return nil
	case KindDate:
		d, _ := v.Date()
		if d > maxIntegerMagnitude || d < -maxIntegerMagnitude {
			return newErr(ErrInvalidDate, -1, "date %d out of range", d)
		}
		buf.WriteByte(bytesx.At)
		buf.WriteString(strconv.FormatInt(d, 10))
		return nil
	case KindDisplayString:
		ds, _ := v.Disp()
		return writeDisplayString(buf, string(ds))
	default:
		return newErr(ErrInvalidItem, -1, "unknown bare item kind %v", v.Kind)
	}
}

func writeString(buf *bytes.Buffer, s string) error {
	buf.WriteByte(bytesx.DoubleQuote)
	for i := 0; i < len(s); i++ {
		b := s[i]
		if !bytesx.IsPrintable(b) {
			return newErr(ErrInvalidString, i, "byte 0x%02x not allowed in string", b)
		}
		if b == bytesx.DoubleQuote || b == bytesx.Backslash {
			buf.WriteByte(bytesx.Backslash)
		}
		buf.WriteByte(b)
	}
	buf.WriteByte(bytesx.DoubleQuote)
	return nil
}

const lcHexDigits = "0123456789abcdef"

func writeDisplayString(buf *bytes.Buffer, s string) error {
	buf.WriteByte(bytesx.Percent)
	buf.WriteByte(bytesx.DoubleQuote)
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == bytesx.Percent || b == bytesx.DoubleQuote || b <= 0x1F || b >= 0x7F {
			buf.WriteByte(bytesx.Percent)
			buf.WriteByte(lcHexDigits[b>>4])
			buf.WriteByte(lcHexDigits[b&0x0F])
			continue
		}
		buf.WriteByte(b)
	}
	buf.WriteByte(bytesx.DoubleQuote)
	return nil
}
