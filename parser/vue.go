package parser

import (
	"github.com/markuplang/parse/ast"
	"github.com/markuplang/parse/internal/loc"
)

// tryParseVueDirective attempts the Vue directive attribute shape,
// restoring the cursor and reporting failure if the leading prefix does not
// match (§4.6).
func (p *Parser) tryParseVueDirective() (ast.VueDirective, bool) {
	snap := p.cur.snapshot()
	attr, err := p.parseVueDirective()
	if err != nil {
		p.cur.restore(snap)
		return ast.VueDirective{}, false
	}
	return attr, true
}

// parseVueDirective parses `:`/`@`/`#`/`v-name` optionally followed by an
// `arg_and_modifiers` attribute name and a `= value` (§4.6).
func (p *Parser) parseVueDirective() (ast.VueDirective, *SyntaxError) {
	begin := p.cur.offset()
	var name string
	punctuation := false
	switch _, c, ok := p.cur.peek(); {
	case ok && (c == ':' || c == '@' || c == '#'):
		p.cur.advance()
		name = string(c)
		punctuation = true
	case p.consumeLiteral("v-"):
		ident, err := p.parseIdentifier()
		if err != nil {
			return ast.VueDirective{}, err
		}
		name = "v-" + ident
	default:
		return ast.VueDirective{}, p.emitError(ExpectVueDirective)
	}

	var argAndModifiers *string
	_, nc, hasNext := p.cur.peek()
	if punctuation || (hasNext && isAttrNameChar(nc)) {
		arg, err := p.parseAttrName()
		if err != nil {
			return ast.VueDirective{}, err
		}
		argAndModifiers = &arg
	}

	var value *string
	snap := p.cur.snapshot()
	p.cur.skipWhitespace()
	if p.cur.advanceIfChar('=') {
		p.cur.skipWhitespace()
		v, err := p.parseAttrValue()
		if err != nil {
			return ast.VueDirective{}, err
		}
		value = &v
	} else {
		p.cur.restore(snap)
	}

	return ast.VueDirective{
		Name:            name,
		ArgAndModifiers: argAndModifiers,
		Value:           value,
		Range:           loc.NewRange(begin, p.cur.pos),
	}, nil
}

// parseVueInterpolation requires "{{" and parses a mustache interpolation
// whose body is stored verbatim, including surrounding whitespace.
func (p *Parser) parseVueInterpolation() (ast.VueInterpolation, *SyntaxError) {
	begin := p.cur.offset()
	expr, err := p.parseMustacheInterpolation()
	if err != nil {
		return ast.VueInterpolation{}, err
	}
	return ast.VueInterpolation{Expr: expr, Range: loc.NewRange(begin, p.cur.pos)}, nil
}
