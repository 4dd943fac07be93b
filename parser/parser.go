// Package parser implements the hand-written, single-pass, recursive-descent
// parser shared by all six dialects. It never tokenises: every routine reads
// characters directly from a cursor and returns either an AST node
// referencing a slice of the input, or a *SyntaxError.
package parser

import (
	"github.com/markuplang/parse/ast"
	"github.com/markuplang/parse/internal/handler"
	"github.com/markuplang/parse/internal/loc"
)

// Parser holds the state a parse run needs: the cursor, the active dialect,
// whether an Astro front-matter fence has been seen yet, and an optional
// diagnostics sink.
type Parser struct {
	src                 string
	cur                 cursor
	dialect             ast.Dialect
	hasAstroFrontMatter bool
	handler             *handler.Handler
}

// Option configures a Parse call.
type Option func(*Parser)

// WithHandler attaches a diagnostics sink that records non-fatal parse
// oddities (see package handler). Passing nil is equivalent to omitting the
// option.
func WithHandler(h *handler.Handler) Option {
	return func(p *Parser) {
		p.handler = h
	}
}

func newParser(src string, dialect ast.Dialect, opts ...Option) *Parser {
	p := &Parser{src: src, cur: newCursor(src), dialect: dialect}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// emitError builds a *SyntaxError of kind at the cursor's current offset.
func (p *Parser) emitError(kind ErrorKind) *SyntaxError {
	return &SyntaxError{Kind: kind, Pos: p.cur.offset()}
}

// Parse turns src into a Root for the given dialect, or returns the first
// syntax error encountered. The returned tree's string fields all borrow
// slices of src; src must outlive the tree.
func Parse(src string, dialect ast.Dialect, opts ...Option) (*ast.Root, *SyntaxError) {
	p := newParser(src, dialect, opts...)
	return p.parseRoot()
}

// parseRoot implements §4.14: dispatch repeatedly until the cursor is
// exhausted.
func (p *Parser) parseRoot() (*ast.Root, *SyntaxError) {
	var children []ast.Node
	for !p.cur.eof() {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	return &ast.Root{Children: children}, nil
}

// parseNode is the entry point for parsing any non-text construct, per the
// dispatch table in §4.7.
func (p *Parser) parseNode() (ast.Node, *SyntaxError) {
	_, c, ok := p.cur.peek()
	if !ok {
		return nil, p.emitError(ExpectElement)
	}

	switch {
	case c == '<':
		return p.dispatchAngle()
	case c == '{':
		return p.dispatchBrace()
	case c == '-' && p.dialect == ast.Astro && !p.hasAstroFrontMatter && p.peekLiteralAt(1, "--"):
		fm, err := p.parseAstroFrontMatter()
		if err != nil {
			return nil, err
		}
		return fm, nil
	default:
		node, err := p.parseTextNode()
		if err != nil {
			return nil, err
		}
		return node, nil
	}
}

// dispatchAngle handles the `<` branch of §4.7.
func (p *Parser) dispatchAngle() (ast.Node, *SyntaxError) {
	_, next, ok := p.cur.peekAt(1)
	if !ok {
		node, err := p.parseTextNode()
		if err != nil {
			return nil, err
		}
		return node, nil
	}

	switch {
	case isTagNameChar(next):
		el, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		return el, nil
	case next == '!':
		switch p.dialect {
		case ast.Html, ast.Astro, ast.Jinja, ast.Vento:
			if cm, ok := p.tryParseComment(); ok {
				return cm, nil
			}
			if dt, ok := p.tryParseDoctype(); ok {
				return dt, nil
			}
			node, err := p.parseTextNode()
			if err != nil {
				return nil, err
			}
			return node, nil
		default:
			cm, err := p.parseComment()
			if err != nil {
				return nil, err
			}
			return cm, nil
		}
	case next == '>' && p.dialect == ast.Astro:
		el, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		return el, nil
	default:
		node, err := p.parseTextNode()
		if err != nil {
			return nil, err
		}
		return node, nil
	}
}

// tryParseComment attempts a comment, restoring the cursor on failure.
func (p *Parser) tryParseComment() (ast.Comment, bool) {
	snap := p.cur.snapshot()
	cm, err := p.parseComment()
	if err != nil {
		p.cur.restore(snap)
		return ast.Comment{}, false
	}
	return cm, true
}

// tryParseDoctype attempts a doctype, restoring the cursor on failure.
func (p *Parser) tryParseDoctype() (ast.Doctype, bool) {
	snap := p.cur.snapshot()
	begin := p.cur.offset()
	if err := p.parseDoctype(); err != nil {
		p.cur.restore(snap)
		return ast.Doctype{}, false
	}
	return ast.Doctype{Range: loc.NewRange(begin, p.cur.pos)}, true
}

// dispatchBrace handles the `{` branch of §4.7.
func (p *Parser) dispatchBrace() (ast.Node, *SyntaxError) {
	_, next, hasNext := p.cur.peekAt(1)

	switch p.dialect {
	case ast.Vue:
		if hasNext && next == '{' {
			node, err := p.parseVueInterpolation()
			if err != nil {
				return nil, err
			}
			return node, nil
		}
	case ast.Jinja:
		switch {
		case hasNext && next == '{':
			node, err := p.parseJinjaInterpolation()
			if err != nil {
				return nil, err
			}
			return node, nil
		case hasNext && next == '#':
			node, err := p.parseJinjaComment()
			if err != nil {
				return nil, err
			}
			return node, nil
		case hasNext && next == '%':
			return p.parseJinjaTagOrBlock()
		}
	case ast.Vento:
		if hasNext && next == '{' {
			return p.parseVentoTagOrBlock()
		}
	case ast.Svelte:
		switch {
		case hasNext && next == '#':
			return p.dispatchSvelteBlock()
		case hasNext && next == '@':
			node, err := p.parseSvelteAtTag()
			if err != nil {
				return nil, err
			}
			return node, nil
		default:
			node, err := p.parseSvelteInterpolation()
			if err != nil {
				return nil, err
			}
			return node, nil
		}
	case ast.Astro:
		node, err := p.parseAstroExpr()
		if err != nil {
			return nil, err
		}
		return node, nil
	}

	node, err := p.parseTextNode()
	if err != nil {
		return nil, err
	}
	return node, nil
}

// dispatchSvelteBlock tries each Svelte block kind in turn; if every
// alternative fails, it reports UnknownSvelteBlock at the offset of `#`
// (§4.7).
func (p *Parser) dispatchSvelteBlock() (ast.Node, *SyntaxError) {
	hashPos, _, _ := p.cur.peekAt(1)

	snap := p.cur.snapshot()
	if block, err := p.parseSvelteIfBlock(); err == nil {
		return block, nil
	}
	p.cur.restore(snap)

	if block, err := p.parseSvelteEachBlock(); err == nil {
		return block, nil
	}
	p.cur.restore(snap)

	if block, err := p.parseSvelteAwaitBlock(); err == nil {
		return block, nil
	}
	p.cur.restore(snap)

	if block, err := p.parseSvelteKeyBlock(); err == nil {
		return block, nil
	}
	p.cur.restore(snap)

	return nil, &SyntaxError{Kind: UnknownSvelteBlock, Pos: hashPos}
}
