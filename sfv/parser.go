package sfv

import (
	"fmt"

	"github.com/aledsdavies/sfv/internal/bytesx"
)

// Parser is a single-pass, cursor-driven recursive-descent parser over an
// input byte slice, producing one of {Item, List, Dictionary} (spec.md
// §4.3). A Parser instance holds its cursor privately; concurrent use of
// the same instance is unsupported, but distinct instances are fully
// independent (spec.md §5).
type Parser struct {
	input []byte
	pos   int
}

// newParser returns a Parser positioned at the start of input.
func newParser(input []byte) *Parser {
	return &Parser{input: input}
}

func (p *Parser) eof() bool { return p.pos >= len(p.input) }

func (p *Parser) peek() (byte, bool) {
	if p.eof() {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *Parser) peekAt(offset int) (byte, bool) {
	i := p.pos + offset
	if i < 0 || i >= len(p.input) {
		return 0, false
	}
	return p.input[i], true
}

func (p *Parser) advance() byte {
	b := p.input[p.pos]
	p.pos++
	return b
}

// expect consumes b if it is the next byte, reporting ok.
func (p *Parser) expect(b byte) bool {
	if c, ok := p.peek(); ok && c == b {
		p.pos++
		return true
	}
	return false
}

func (p *Parser) skipSP() {
	for {
		b, ok := p.peek()
		if !ok || b != bytesx.SP {
			return
		}
		p.pos++
	}
}

func (p *Parser) skipOWS() {
	for {
		b, ok := p.peek()
		if !ok || !bytesx.IsOWS(b) {
			return
		}
		p.pos++
	}
}

// mustAdvance panics if a list/dictionary/inner-list member parse returned
// without consuming any bytes. Every sub-parser called from a member loop
// either errors out or consumes at least one byte; a violation here means
// one of them has a bug that would otherwise spin the loop forever.
func (p *Parser) mustAdvance(start int, what string) {
	if p.pos <= start {
		panic(fmt.Sprintf("sfv: %s did not advance the cursor past byte %d", what, start))
	}
}

// ParseItem parses bytes as an Item (spec.md §4.3 entry point).
func ParseItem(input []byte) (Item, error) {
	p := newParser(input)
	p.skipSP()
	item, err := p.parseItem()
	if err != nil {
		return Item{}, err
	}
	p.skipSP()
	if !p.eof() {
		return Item{}, newErr(ErrInvalidTrailingBytes, p.pos, "unparsed bytes after item")
	}
	return item, nil
}

// ParseList parses bytes as a List (spec.md §4.3 entry point).
func ParseList(input []byte) (List, error) {
	p := newParser(input)
	p.skipSP()
	list, err := p.parseList()
	if err != nil {
		return nil, err
	}
	p.skipSP()
	if !p.eof() {
		return nil, newErr(ErrInvalidTrailingBytes, p.pos, "unparsed bytes after list")
	}
	return list, nil
}

// ParseDictionary parses bytes as a Dictionary (spec.md §4.3 entry point).
func ParseDictionary(input []byte) (*Dictionary, error) {
	p := newParser(input)
	p.skipSP()
	dict, err := p.parseDictionary()
	if err != nil {
		return nil, err
	}
	p.skipSP()
	if !p.eof() {
		return nil, newErr(ErrInvalidTrailingBytes, p.pos, "unparsed bytes after dictionary")
	}
	return dict, nil
}

// parseList realizes the List grammar from spec.md §4.3: loop parsing an
// ItemOrInnerList, stripping OWS, and requiring a comma between entries
// with no trailing comma.
func (p *Parser) parseList() (List, error) {
	var list List
	if p.eof() {
		return list, nil
	}
	for {
		start := p.pos
		v, err := p.parseItemOrInnerList()
		if err != nil {
			return nil, err
		}
		p.mustAdvance(start, "parseItemOrInnerList")
		list = append(list, v)

		p.skipOWS()
		if p.eof() {
			break
		}
		if !p.expect(bytesx.Comma) {
			return nil, newErr(ErrInvalidList, p.pos, "expected ',' between list members")
		}
		p.skipOWS()
		if p.eof() {
			return nil, newErr(ErrInvalidList, p.pos, "trailing comma in list")
		}
		if b, _ := p.peek(); b == bytesx.Comma {
			return nil, newErr(ErrInvalidList, p.pos, "empty list member")
		}
	}
	return list, nil
}

// parseDictionary realizes the Dictionary grammar from spec.md §4.3.
func (p *Parser) parseDictionary() (*Dictionary, error) {
	dict := NewDictionary()
	if p.eof() {
		return dict, nil
	}
	for {
		start := p.pos
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.mustAdvance(start, "parseKey")

		var value ItemOrInnerList
		if b, ok := p.peek(); ok && b == bytesx.Equals {
			p.pos++
			value, err = p.parseItemOrInnerList()
			if err != nil {
				return nil, err
			}
		} else {
			params, err := p.parseParameters()
			if err != nil {
				return nil, err
			}
			value = AsItem(Item{Value: BoolItem(true), Params: params})
		}
		dict.Put(key, value)

		p.skipOWS()
		if p.eof() {
			break
		}
		if !p.expect(bytesx.Comma) {
			return nil, newErr(ErrInvalidDictionary, p.pos, "expected ',' between dictionary members")
		}
		p.skipOWS()
		if p.eof() {
			return nil, newErr(ErrInvalidDictionary, p.pos, "trailing comma in dictionary")
		}
	}
	return dict, nil
}

// parseItemOrInnerList dispatches on the next byte: '(' begins an
// InnerList, anything else begins an Item (spec.md §4.3).
func (p *Parser) parseItemOrInnerList() (ItemOrInnerList, error) {
	if b, ok := p.peek(); ok && b == bytesx.LParen {
		il, err := p.parseInnerList()
		if err != nil {
			return ItemOrInnerList{}, err
		}
		return AsInnerList(il), nil
	}
	item, err := p.parseItem()
	if err != nil {
		return ItemOrInnerList{}, err
	}
	return AsItem(item), nil
}

// parseInnerList realizes the InnerList grammar from spec.md §4.3.
func (p *Parser) parseInnerList() (InnerList, error) {
	start := p.pos
	if !p.expect(bytesx.LParen) {
		return InnerList{}, newErr(ErrInvalidInnerList, p.pos, "expected '('")
	}
	var items BareInnerList
	for {
		p.skipSP()
		if b, ok := p.peek(); ok && b == bytesx.RParen {
			p.pos++
			params, err := p.parseParameters()
			if err != nil {
				return InnerList{}, err
			}
			return InnerList{Items: items, Params: params}, nil
		}
		if p.eof() {
			return InnerList{}, newErr(ErrInvalidInnerList, start, "unterminated inner list")
		}
		itemStart := p.pos
		item, err := p.parseItem()
		if err != nil {
			return InnerList{}, err
		}
		p.mustAdvance(itemStart, "parseItem")
		items = append(items, item)

		b, ok := p.peek()
		if !ok || (b != bytesx.SP && b != bytesx.RParen) {
			return InnerList{}, newErr(ErrInvalidInnerList, p.pos, "expected space or ')' after inner list item")
		}
	}
}

// parseItem realizes the Item grammar from spec.md §4.3: a bare item
// followed by its parameters.
func (p *Parser) parseItem() (Item, error) {
	v, err := p.parseBareItem()
	if err != nil {
		return Item{}, err
	}
	params, err := p.parseParameters()
	if err != nil {
		return Item{}, err
	}
	return Item{Value: v, Params: params}, nil
}
