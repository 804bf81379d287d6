package sfv

import (
	"errors"
	"fmt"
)

// Kind enumerates the single flat error taxonomy the parser, serializer,
// and dictionary lookups raise. Unlike the teacher's ParseError/ErrorType
// pair (which nests a bracket tracker and code-snippet renderer on top of
// the error kind), structured field values have no multi-line source to
// annotate — an offset into the field value is all the context there is.
// ErrKeyNotFound carries no offset (Offset is -1): a missing dictionary
// member isn't a position in the input, but per spec.md §6 it's still a
// parse-class failure from the CLI's point of view, so it shares this type
// rather than being a plain error.
type Kind int

const (
	ErrInvalidTrailingBytes Kind = iota
	ErrInvalidList
	ErrInvalidDictionary
	ErrInvalidInnerList
	ErrInvalidItem
	ErrInvalidKey
	ErrInvalidIntegerOrDecimal
	ErrInvalidString
	ErrInvalidByteSequence
	ErrInvalidBoolean
	ErrInvalidToken
	ErrInvalidDate
	ErrInvalidDisplayString
	ErrKeyNotFound
)

func (k Kind) String() string {
	switch k {
	case ErrInvalidTrailingBytes:
		return "InvalidTrailingBytes"
	case ErrInvalidList:
		return "InvalidList"
	case ErrInvalidDictionary:
		return "InvalidDictionary"
	case ErrInvalidInnerList:
		return "InvalidInnerList"
	case ErrInvalidItem:
		return "InvalidItem"
	case ErrInvalidKey:
		return "InvalidKey"
	case ErrInvalidIntegerOrDecimal:
		return "InvalidIntegerOrDecimal"
	case ErrInvalidString:
		return "InvalidString"
	case ErrInvalidByteSequence:
		return "InvalidByteSequence"
	case ErrInvalidBoolean:
		return "InvalidBoolean"
	case ErrInvalidToken:
		return "InvalidToken"
	case ErrInvalidDate:
		return "InvalidDate"
	case ErrInvalidDisplayString:
		return "InvalidDisplayString"
	case ErrKeyNotFound:
		return "KeyNotFound"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned by every parse and serialize
// entry point in this package. Offset is a byte position into the input
// for grammar errors found by the parser, the index of the offending byte
// within the value for the String and ByteSequence byte checks (in the
// constructors and in the serializer), and -1 otherwise.
type Error struct {
	Kind    Kind
	Offset  int
	Message string
}

func (e *Error) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (at byte %d)", e.Kind, e.Message, e.Offset)
}

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, &sfv.Error{Kind: sfv.ErrInvalidToken}); the
// target's Offset and Message are ignored. See also KindOf.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(kind Kind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind carried by err if err is (or wraps) an *Error,
// and false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
