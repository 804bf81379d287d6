package sfv

import "github.com/aledsdavies/sfv/internal/bytesx"

// parseKey realizes spec.md §4.3's "Key parse": first byte lowercase
// letter or '*', remaining run [a-z0-9_.*-]*.
func (p *Parser) parseKey() (Key, error) {
	start := p.pos
	b, ok := p.peek()
	if !ok || !bytesx.IsKeyStart(b) {
		return "", newErr(ErrInvalidKey, p.pos, "expected key start byte")
	}
	p.pos++
	for {
		b, ok := p.peek()
		if !ok || !bytesx.IsKeyPart(b) {
			break
		}
		p.pos++
	}
	return Key(p.input[start:p.pos]), nil
}

// parseParameters realizes spec.md §4.3's "Parameters parse": repeatedly
// consume ';', strip SP, parse a Key, and either '=' + bare item or an
// implicit Boolean(true). Later occurrences overwrite earlier values but
// preserve original position, delegated to OrderedMap semantics.
func (p *Parser) parseParameters() (*Parameters, error) {
	params := NewParameters()
	for {
		b, ok := p.peek()
		if !ok || b != bytesx.Semicolon {
			return params, nil
		}
		p.pos++
		p.skipSP()
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}

		var value BareItem
		if b, ok := p.peek(); ok && b == bytesx.Equals {
			p.pos++
			value, err = p.parseBareItem()
			if err != nil {
				return nil, err
			}
		} else {
			value = BoolItem(true)
		}
		params.Put(key, value)
	}
}
