// Package sfv parses and serializes HTTP Structured Field Values as
// defined by RFC 9651 (and the earlier draft that omits Date and Display
// String). It transforms a byte sequence representing one HTTP header
// field value into a typed parse tree (ParseItem, ParseList,
// ParseDictionary) and inverts that transformation back into canonical
// bytes (WriteItem, WriteList, WriteDictionary).
//
// The package performs no I/O, no concurrency, and no buffering across
// field continuations — callers join continuation lines with ", " before
// parsing, per RFC 9651 §4.
package sfv
