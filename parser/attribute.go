package parser

import (
	"github.com/markuplang/parse/ast"
	"github.com/markuplang/parse/internal/loc"
)

// parseAttr dispatches to the dialect-appropriate attribute shape, trying
// the dialect's special form first and falling back to native on failure
// (§4.6).
func (p *Parser) parseAttr() (ast.Attribute, *SyntaxError) {
	switch p.dialect {
	case ast.Vue:
		if attr, ok := p.tryParseVueDirective(); ok {
			return attr, nil
		}
	case ast.Svelte:
		if attr, ok := p.tryParseSvelteAttribute(); ok {
			return attr, nil
		}
	case ast.Astro:
		if attr, ok := p.tryParseAstroAttribute(); ok {
			return attr, nil
		}
	}
	return p.parseNativeAttr()
}

// parseNativeAttr parses a plain HTML attribute: a name, optionally
// followed by `= value` (§4.2, §4.6).
func (p *Parser) parseNativeAttr() (ast.Attribute, *SyntaxError) {
	begin := p.cur.offset()
	name, err := p.parseAttrName()
	if err != nil {
		return nil, err
	}
	var value *string
	snap := p.cur.snapshot()
	p.cur.skipWhitespace()
	if p.cur.advanceIfChar('=') {
		p.cur.skipWhitespace()
		v, err := p.parseAttrValue()
		if err != nil {
			return nil, err
		}
		value = &v
	} else {
		p.cur.restore(snap)
	}
	return ast.NativeAttribute{
		Name:  name,
		Value: value,
		Range: loc.NewRange(begin, p.cur.pos),
	}, nil
}
