package sfv

import "github.com/aledsdavies/sfv/internal/bytesx"

// Key is a non-empty ASCII string with first byte in [a-z*] and remaining
// bytes in [a-z0-9_.*-]. Used as dictionary keys and parameter names.
type Key string

// IsValidKey reports whether s satisfies the Key grammar (spec.md §3).
func IsValidKey(s string) bool {
	if len(s) == 0 {
		return false
	}
	if !bytesx.IsKeyStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !bytesx.IsKeyPart(s[i]) {
			return false
		}
	}
	return true
}

// Token is a non-empty ASCII string: first byte in [A-Za-z*], remaining
// bytes from tchar union {':', '/'} (spec.md §3). Higher layers use
// IsValidToken to decide between Token and String when mapping ambient
// strings, per spec.md §4.5.
type Token string

// IsValidToken reports whether s satisfies the Token grammar.
func IsValidToken(s string) bool {
	if len(s) == 0 {
		return false
	}
	if !bytesx.IsTokenStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !bytesx.IsTokenPart(s[i]) {
			return false
		}
	}
	return true
}
