package sfv

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/sfv/internal/bytesx"
)

// parseBareItem dispatches on the next byte per spec.md §4.3's "BareItem
// dispatch" table.
func (p *Parser) parseBareItem() (BareItem, error) {
	b, ok := p.peek()
	if !ok {
		return BareItem{}, newErr(ErrInvalidItem, p.pos, "unexpected end of input")
	}
	switch {
	case b == bytesx.Minus || bytesx.IsDigit(b):
		return p.parseIntegerOrDecimal(false)
	case b == bytesx.DoubleQuote:
		return p.parseString()
	case b == bytesx.Colon:
		return p.parseByteSequence()
	case b == bytesx.Question:
		return p.parseBoolean()
	case bytesx.IsTokenStart(b):
		return p.parseToken()
	case b == bytesx.At:
		return p.parseDate()
	case b == bytesx.Percent:
		return p.parseDisplayString()
	default:
		return BareItem{}, newErr(ErrInvalidItem, p.pos, "byte 0x%02x does not begin a bare item", b)
	}
}

// parseIntegerOrDecimal realizes spec.md §4.3's "Integer/Decimal parse":
// an optional leading '-', accumulated digits, and an optional '.'
// switching to decimal mode. dateMode forbids the '.' branch per the Date
// dispatch rule ("then integer, decimal forbidden").
func (p *Parser) parseIntegerOrDecimal(dateMode bool) (BareItem, error) {
	start := p.pos
	kind := ErrInvalidIntegerOrDecimal
	if dateMode {
		kind = ErrInvalidDate
	}

	neg := false
	if b, ok := p.peek(); ok && b == bytesx.Minus {
		neg = true
		p.pos++
	}
	if b, ok := p.peek(); !ok || !bytesx.IsDigit(b) {
		return BareItem{}, newErr(kind, p.pos, "expected digit")
	}

	intDigits := 0
	for {
		b, ok := p.peek()
		if !ok || !bytesx.IsDigit(b) {
			break
		}
		intDigits++
		if intDigits > 15 {
			return BareItem{}, newErr(kind, start, "integer has too many digits")
		}
		p.pos++
	}

	isDecimal := false
	fracDigits := 0
	if b, ok := p.peek(); ok && b == bytesx.Dot && !dateMode {
		if intDigits > 12 {
			return BareItem{}, newErr(ErrInvalidIntegerOrDecimal, start, "decimal integer part longer than 12 digits")
		}
		isDecimal = true
		p.pos++
		for {
			b, ok := p.peek()
			if !ok || !bytesx.IsDigit(b) {
				break
			}
			fracDigits++
			if fracDigits > 3 {
				return BareItem{}, newErr(ErrInvalidIntegerOrDecimal, start, "decimal has too many fractional digits")
			}
			p.pos++
		}
		if fracDigits == 0 {
			return BareItem{}, newErr(ErrInvalidIntegerOrDecimal, start, "decimal point must be followed by a digit")
		}
		if intDigits+fracDigits > 16 {
			return BareItem{}, newErr(ErrInvalidIntegerOrDecimal, start, "decimal has too many total digits")
		}
	}

	digits := string(p.input[start:p.pos])
	digits = strings.TrimPrefix(digits, "-")
	digits = strings.Replace(digits, ".", "", 1)

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return BareItem{}, newErr(kind, start, "malformed number")
	}
	if neg {
		n = -n
	}

	if isDecimal {
		d, derr := NewDecimal(n, int8(-fracDigits))
		if derr != nil {
			return BareItem{}, derr
		}
		return DecimalItem(d), nil
	}
	if dateMode {
		return DateItem(n)
	}
	return IntItem(n)
}

// parseString realizes spec.md §4.3's "String parse": a single forward
// pass counting escapes and locating the closing quote, then either
// returning the raw slice (no escapes) or rebuilding it once (escapes
// present) — matching the one-allocation-for-the-final-string budget
// spec.md §5 calls for.
func (p *Parser) parseString() (BareItem, error) {
	start := p.pos
	if !p.expect(bytesx.DoubleQuote) {
		return BareItem{}, newErr(ErrInvalidString, p.pos, "expected opening '\"'")
	}

	hasEscapes := false
	i := p.pos
	for {
		if i >= len(p.input) {
			return BareItem{}, newErr(ErrInvalidString, start, "unterminated string")
		}
		b := p.input[i]
		if b == bytesx.DoubleQuote {
			break
		}
		if b == bytesx.Backslash {
			hasEscapes = true
			i++
			if i >= len(p.input) {
				return BareItem{}, newErr(ErrInvalidString, start, "dangling escape at end of string")
			}
			next := p.input[i]
			if next != bytesx.DoubleQuote && next != bytesx.Backslash {
				return BareItem{}, newErr(ErrInvalidString, i, "invalid escape '\\%c'", next)
			}
			i++
			continue
		}
		if !bytesx.IsPrintable(b) {
			return BareItem{}, newErr(ErrInvalidString, i, "byte 0x%02x not allowed in string", b)
		}
		i++
	}

	raw := p.input[p.pos:i]
	p.pos = i + 1 // consume closing quote

	if !hasEscapes {
		v, err := StringItem(string(raw))
		if err != nil {
			return BareItem{}, err
		}
		return v, nil
	}

	var sb strings.Builder
	sb.Grow(len(raw))
	for j := 0; j < len(raw); j++ {
		if raw[j] == bytesx.Backslash {
			j++
			sb.WriteByte(raw[j])
			continue
		}
		sb.WriteByte(raw[j])
	}
	v, err := StringItem(sb.String())
	if err != nil {
		return BareItem{}, err
	}
	return v, nil
}

// parseByteSequence realizes spec.md §4.3's "ByteSequence parse": consume
// ':', accept the base64 character class, consume trailing ':'. The
// enclosed bytes are retained verbatim; the core performs no base64
// validation beyond the character class.
func (p *Parser) parseByteSequence() (BareItem, error) {
	start := p.pos
	p.pos++ // consume leading ':'
	i := p.pos
	for i < len(p.input) && isBase64CharByte(p.input[i]) {
		i++
	}
	if i >= len(p.input) || p.input[i] != bytesx.Colon {
		return BareItem{}, newErr(ErrInvalidByteSequence, start, "unterminated byte sequence")
	}
	raw := string(p.input[p.pos:i])
	p.pos = i + 1
	return ByteSequenceItem(raw)
}

// parseBoolean realizes spec.md §4.3's "Boolean parse".
func (p *Parser) parseBoolean() (BareItem, error) {
	start := p.pos
	p.pos++ // consume '?'
	b, ok := p.peek()
	if !ok || (b != '0' && b != '1') {
		return BareItem{}, newErr(ErrInvalidBoolean, start, "expected '?0' or '?1'")
	}
	p.pos++
	return BoolItem(b == '1'), nil
}

// parseToken realizes spec.md §4.3's "Token parse".
func (p *Parser) parseToken() (BareItem, error) {
	start := p.pos
	p.pos++ // first byte already validated by caller's dispatch
	for {
		b, ok := p.peek()
		if !ok || !bytesx.IsTokenPart(b) {
			break
		}
		p.pos++
	}
	return TokenItem(Token(p.input[start:p.pos]))
}

// parseDate realizes spec.md §4.3's "Date parse" (RFC 9651 only): consume
// '@', then an integer (decimal forbidden).
func (p *Parser) parseDate() (BareItem, error) {
	p.pos++ // consume '@'
	return p.parseIntegerOrDecimal(true)
}

// parseDisplayString realizes spec.md §4.3's "DisplayString parse" (RFC
// 9651 only): consume '%"', then loop decoding '%xx' hex escapes and
// copying other printable bytes, validating the assembled bytes as UTF-8
// at the closing '"'.
func (p *Parser) parseDisplayString() (BareItem, error) {
	start := p.pos
	p.pos++ // consume '%'
	if !p.expect(bytesx.DoubleQuote) {
		return BareItem{}, newErr(ErrInvalidDisplayString, start, "expected '%%\"'")
	}

	var buf []byte
	for {
		b, ok := p.peek()
		if !ok {
			return BareItem{}, newErr(ErrInvalidDisplayString, start, "unterminated display string")
		}
		switch {
		case b == bytesx.Percent:
			p.pos++
			hi, ok1 := p.peek()
			if !ok1 || !bytesx.IsLCHex(hi) {
				return BareItem{}, newErr(ErrInvalidDisplayString, p.pos, "invalid hex escape")
			}
			p.pos++
			lo, ok2 := p.peek()
			if !ok2 || !bytesx.IsLCHex(lo) {
				return BareItem{}, newErr(ErrInvalidDisplayString, p.pos, "invalid hex escape")
			}
			p.pos++
			buf = append(buf, bytesx.HexVal(hi)<<4|bytesx.HexVal(lo))
		case b == bytesx.DoubleQuote:
			p.pos++
			ds, err := NewDisplayString(string(buf))
			if err != nil {
				return BareItem{}, err
			}
			return DisplayStringItem(ds), nil
		case b <= 0x1F || b >= 0x7F:
			return BareItem{}, newErr(ErrInvalidDisplayString, p.pos, "byte 0x%02x not allowed in display string", b)
		default:
			buf = append(buf, b)
			p.pos++
		}
	}
}
