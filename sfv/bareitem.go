package sfv

import "fmt"

// BareItemKind discriminates the tagged union BareItem implements. spec.md
// §9 notes that implementations without native sum types should use "a
// discriminant plus union payload" — this is that approach, chosen over a
// sealed-interface hierarchy because bare items are pure data with no
// per-kind behavior beyond equality and formatting, both of which read more
// plainly as a single switch than as eight small types.
type BareItemKind int

const (
	KindBoolean BareItemKind = iota
	KindInteger
	KindDecimal
	KindString
	KindToken
	KindByteSequence
	KindDate
	KindDisplayString
)

func (k BareItemKind) String() string {
	switch k {
	case KindBoolean:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindDecimal:
		return "Decimal"
	case KindString:
		return "String"
	case KindToken:
		return "Token"
	case KindByteSequence:
		return "ByteSequence"
	case KindDate:
		return "Date"
	case KindDisplayString:
		return "DisplayString"
	default:
		return "Unknown"
	}
}

// BareItem is the tagged union of the eight primitive value kinds spec.md
// §3 defines. Only the field matching Kind is meaningful; constructors
// below are the supported way to build one, so that is never violated from
// within this package.
type BareItem struct {
	Kind BareItemKind

	boolVal    bool
	intVal     int64
	decVal     Decimal
	strVal     string
	tokVal     Token
	byteSeqVal string // undecoded base64 ASCII, never validated beyond char class
	dateVal    int64
	dispVal    DisplayString
}

// BoolItem constructs a Boolean bare item.
func BoolItem(b bool) BareItem { return BareItem{Kind: KindBoolean, boolVal: b} }

// IntItem constructs an Integer bare item, validating the magnitude bound
// from spec.md §3 (|n| <= 999,999,999,999,999).
func IntItem(n int64) (BareItem, error) {
	if n > maxIntegerMagnitude || n < -maxIntegerMagnitude {
		return BareItem{}, newErr(ErrInvalidIntegerOrDecimal, -1, "integer %d out of range", n)
	}
	return BareItem{Kind: KindInteger, intVal: n}, nil
}

// DecimalItem constructs a Decimal bare item.
func DecimalItem(d Decimal) BareItem { return BareItem{Kind: KindDecimal, decVal: d} }

// StringItem constructs a String bare item, validating that every byte is
// in [0x20, 0x7E] per spec.md §3.
func StringItem(s string) (BareItem, error) {
	for i := 0; i < len(s); i++ {
		if !isPrintableByte(s[i]) {
			return BareItem{}, newErr(ErrInvalidString, i, "string byte 0x%02x outside [0x20, 0x7E]", s[i])
		}
	}
	return BareItem{Kind: KindString, strVal: s}, nil
}

// TokenItem constructs a Token bare item, validating the Token grammar.
func TokenItem(t Token) (BareItem, error) {
	if !IsValidToken(string(t)) {
		return BareItem{}, newErr(ErrInvalidToken, -1, "%q is not a valid token", t)
	}
	return BareItem{Kind: KindToken, tokVal: t}, nil
}

// ByteSequenceItem constructs a ByteSequence bare item from an undecoded
// base64 ASCII string; the core never decodes it (spec.md §3/§4.3).
func ByteSequenceItem(base64 string) (BareItem, error) {
	for i := 0; i < len(base64); i++ {
		if !isBase64CharByte(base64[i]) {
			return BareItem{}, newErr(ErrInvalidByteSequence, i, "byte 0x%02x is not valid base64 alphabet", base64[i])
		}
	}
	return BareItem{Kind: KindByteSequence, byteSeqVal: base64}, nil
}

// DateItem constructs a Date bare item (RFC 9651 only): signed seconds
// since the Unix epoch, same magnitude bound as Integer.
func DateItem(seconds int64) (BareItem, error) {
	if seconds > maxIntegerMagnitude || seconds < -maxIntegerMagnitude {
		return BareItem{}, newErr(ErrInvalidDate, -1, "date %d out of range", seconds)
	}
	return BareItem{Kind: KindDate, dateVal: seconds}, nil
}

// DisplayStringItem constructs a DisplayString bare item (RFC 9651 only).
func DisplayStringItem(ds DisplayString) BareItem {
	return BareItem{Kind: KindDisplayString, dispVal: ds}
}

func isPrintableByte(b byte) bool { return b >= 0x20 && b <= 0x7E }

func isBase64CharByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '+' || b == '/' || b == '='
}

// Bool returns the Boolean payload and whether Kind was Boolean.
func (b BareItem) Bool() (bool, bool) { return b.boolVal, b.Kind == KindBoolean }

// Int returns the Integer payload and whether Kind was Integer.
func (b BareItem) Int() (int64, bool) { return b.intVal, b.Kind == KindInteger }

// Dec returns the Decimal payload and whether Kind was Decimal.
func (b BareItem) Dec() (Decimal, bool) { return b.decVal, b.Kind == KindDecimal }

// Str returns the String payload and whether Kind was String.
func (b BareItem) Str() (string, bool) { return b.strVal, b.Kind == KindString }

// Tok returns the Token payload and whether Kind was Token.
func (b BareItem) Tok() (Token, bool) { return b.tokVal, b.Kind == KindToken }

// ByteSeq returns the undecoded base64 payload and whether Kind was ByteSequence.
func (b BareItem) ByteSeq() (string, bool) { return b.byteSeqVal, b.Kind == KindByteSequence }

// Date returns the Date payload (seconds since epoch) and whether Kind was Date.
func (b BareItem) Date() (int64, bool) { return b.dateVal, b.Kind == KindDate }

// Disp returns the DisplayString payload and whether Kind was DisplayString.
func (b BareItem) Disp() (DisplayString, bool) { return b.dispVal, b.Kind == KindDisplayString }

// Equal reports whether a and b denote the same bare item. Decimal
// equality canonicalizes first, matching the serializer's own notion of
// "the same value" (invariant 2, spec.md §8).
func (a BareItem) Equal(b BareItem) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindBoolean:
		return a.boolVal == b.boolVal
	case KindInteger:
		return a.intVal == b.intVal
	case KindDecimal:
		return a.decVal.Equal(b.decVal)
	case KindString:
		return a.strVal == b.strVal
	case KindToken:
		return a.tokVal == b.tokVal
	case KindByteSequence:
		return a.byteSeqVal == b.byteSeqVal
	case KindDate:
		return a.dateVal == b.dateVal
	case KindDisplayString:
		return a.dispVal == b.dispVal
	default:
		return false
	}
}

func (a BareItem) String() string {
	switch a.Kind {
	case KindBoolean:
		return fmt.Sprintf("Boolean(%v)", a.boolVal)
	case KindInteger:
		return fmt.Sprintf("Integer(%d)", a.intVal)
	case KindDecimal:
		return fmt.Sprintf("Decimal(%s)", a.decVal)
	case KindString:
		return fmt.Sprintf("String(%q)", a.strVal)
	case KindToken:
		return fmt.Sprintf("Token(%s)", a.tokVal)
	case KindByteSequence:
		return fmt.Sprintf("ByteSequence(%s)", a.byteSeqVal)
	case KindDate:
		return fmt.Sprintf("Date(%d)", a.dateVal)
	case KindDisplayString:
		return fmt.Sprintf("DisplayString(%q)", a.dispVal)
	default:
		return "Unknown"
	}
}
