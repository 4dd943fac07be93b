package parser

import (
	"github.com/markuplang/parse/ast"
	"github.com/markuplang/parse/internal/loc"
)

// parseBracedExprBody scans an expression body starting just past an
// already-consumed opening `{`: it skips leading whitespace, then scans to
// the matching `}` at brace depth zero, tracking only brace nesting (§4.10).
// The closing brace is consumed; the returned slice excludes both the
// leading whitespace and both braces.
func (p *Parser) parseBracedExprBody(onUnterminated ErrorKind) (string, *SyntaxError) {
	p.cur.skipWhitespace()
	start := p.cur.pos
	depth := 0
	for {
		i, c, ok := p.cur.advance()
		if !ok {
			return "", p.emitError(onUnterminated)
		}
		if c == '{' {
			depth++
			continue
		}
		if c == '}' {
			if depth == 0 {
				return p.src[start:i], nil
			}
			depth--
		}
	}
}

// parseSvelteInterpolation requires `{` and scans the `{expr}` inline
// expression form.
func (p *Parser) parseSvelteInterpolation() (ast.SvelteInterpolation, *SyntaxError) {
	begin := p.cur.offset()
	if !p.cur.advanceIfChar('{') {
		return ast.SvelteInterpolation{}, p.emitError(ExpectSvelteInterpolation)
	}
	expr, err := p.parseBracedExprBody(ExpectSvelteInterpolation)
	if err != nil {
		return ast.SvelteInterpolation{}, err
	}
	return ast.SvelteInterpolation{Expr: expr, Range: loc.NewRange(begin, p.cur.pos)}, nil
}

// tryParseSvelteAttribute attempts the `{expr}`/`name={expr}` attribute
// shapes, restoring the cursor on failure (§4.6).
func (p *Parser) tryParseSvelteAttribute() (ast.SvelteAttribute, bool) {
	snap := p.cur.snapshot()
	attr, err := p.parseSvelteAttribute()
	if err != nil {
		p.cur.restore(snap)
		return ast.SvelteAttribute{}, false
	}
	return attr, true
}

func (p *Parser) parseSvelteAttribute() (ast.SvelteAttribute, *SyntaxError) {
	begin := p.cur.offset()
	var name *string
	if _, c, ok := p.cur.peek(); !ok || c != '{' {
		n, err := p.parseAttrName()
		if err != nil {
			return ast.SvelteAttribute{}, err
		}
		p.cur.skipWhitespace()
		if !p.cur.advanceIfChar('=') {
			return ast.SvelteAttribute{}, expectChar('=', p.cur.offset())
		}
		p.cur.skipWhitespace()
		name = &n
	}
	if !p.cur.advanceIfChar('{') {
		return ast.SvelteAttribute{}, expectChar('{', p.cur.offset())
	}
	expr, err := p.parseBracedExprBody(ExpectSvelteAttr)
	if err != nil {
		return ast.SvelteAttribute{}, err
	}
	return ast.SvelteAttribute{Name: name, Expr: expr, Range: loc.NewRange(begin, p.cur.pos)}, nil
}

// parseSvelteAtTag parses `{@name expr}`.
func (p *Parser) parseSvelteAtTag() (ast.SvelteAtTag, *SyntaxError) {
	begin := p.cur.offset()
	if !p.cur.advanceIfChar('{') || !p.cur.advanceIfChar('@') {
		return ast.SvelteAtTag{}, p.emitError(ExpectSvelteAtTag)
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return ast.SvelteAtTag{}, err
	}
	expr, err := p.parseBracedExprBody(ExpectSvelteAtTag)
	if err != nil {
		return ast.SvelteAtTag{}, err
	}
	return ast.SvelteAtTag{Name: name, Expr: expr, Range: loc.NewRange(begin, p.cur.pos)}, nil
}

// parseSvelteBinding parses the left-hand side of a destructuring form: a
// balanced `{...}`/`[...]` group (delimiters included), or a bare identifier.
func (p *Parser) parseSvelteBinding() (string, *SyntaxError) {
	if _, c, ok := p.cur.peek(); ok && (c == '{' || c == '[') {
		closeCh := rune('}')
		if c == '[' {
			closeCh = ']'
		}
		return p.parseInside(c, closeCh, true)
	}
	return p.parseIdentifier()
}

// parseSvelteBlockChildren gathers nodes until the next two characters are
// `{` followed by `/` or `:`, without consuming them. End-of-input is an
// error (§4.9).
func (p *Parser) parseSvelteBlockChildren() ([]ast.Node, *SyntaxError) {
	var children []ast.Node
	for {
		_, c, ok := p.cur.peek()
		if !ok {
			return nil, p.emitError(ExpectSvelteBlockEnd)
		}
		if c == '{' {
			if _, c2, ok2 := p.cur.peekAt(1); ok2 && (c2 == '/' || c2 == ':') {
				return children, nil
			}
		}
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
}

func (p *Parser) consumeSvelteBlockOpen(kw string) bool {
	snap := p.cur.snapshot()
	if !p.cur.advanceIfChar('{') || !p.cur.advanceIfChar('#') || !p.consumeLiteral(kw) {
		p.cur.restore(snap)
		return false
	}
	return true
}

func (p *Parser) consumeSvelteBlockClose(kw string) bool {
	snap := p.cur.snapshot()
	if !p.cur.advanceIfChar('{') || !p.cur.advanceIfChar('/') || !p.consumeLiteral(kw) {
		p.cur.restore(snap)
		return false
	}
	p.cur.skipWhitespace()
	if !p.cur.advanceIfChar('}') {
		p.cur.restore(snap)
		return false
	}
	return true
}

func (p *Parser) consumeSvelteElseIf() bool {
	snap := p.cur.snapshot()
	if !p.cur.advanceIfChar('{') || !p.cur.advanceIfChar(':') || !p.consumeLiteral("else") {
		p.cur.restore(snap)
		return false
	}
	p.cur.skipWhitespace()
	if !p.consumeLiteral("if") {
		p.cur.restore(snap)
		return false
	}
	return true
}

func (p *Parser) consumeSvelteElse() bool {
	snap := p.cur.snapshot()
	if !p.cur.advanceIfChar('{') || !p.cur.advanceIfChar(':') || !p.consumeLiteral("else") {
		p.cur.restore(snap)
		return false
	}
	p.cur.skipWhitespace()
	if !p.cur.advanceIfChar('}') {
		p.cur.restore(snap)
		return false
	}
	return true
}

func (p *Parser) consumeSvelteThenOpen() bool {
	snap := p.cur.snapshot()
	if !p.cur.advanceIfChar('{') || !p.cur.advanceIfChar(':') || !p.consumeLiteral("then") {
		p.cur.restore(snap)
		return false
	}
	return true
}

func (p *Parser) consumeSvelteCatchOpen() bool {
	snap := p.cur.snapshot()
	if !p.cur.advanceIfChar('{') || !p.cur.advanceIfChar(':') || !p.consumeLiteral("catch") {
		p.cur.restore(snap)
		return false
	}
	return true
}

// scanSvelteExprUpToKeyword scans verbatim, tracking brace depth, until the
// whitespace-delimited keyword kw is found at depth zero; it consumes the
// keyword and returns the expression text before it (§4.9, each block).
func (p *Parser) scanSvelteExprUpToKeyword(kw string, onEOF ErrorKind) (string, *SyntaxError) {
	start := p.cur.pos
	depth := 0
	for {
		pos, c, ok := p.cur.peek()
		if !ok {
			return "", p.emitError(onEOF)
		}
		switch {
		case c == '{':
			p.cur.advance()
			depth++
		case c == '}' && depth > 0:
			p.cur.advance()
			depth--
		case depth == 0 && isASCIIWhitespace(c):
			snap := p.cur.snapshot()
			p.cur.skipWhitespace()
			if p.consumeLiteral(kw) {
				if _, nc, nok := p.cur.peek(); !nok || isASCIIWhitespace(nc) || nc == '}' || nc == '(' {
					return p.src[start:pos], nil
				}
			}
			p.cur.restore(snap)
			p.cur.advance()
		default:
			p.cur.advance()
		}
	}
}

// scanSvelteAwaitExpr scans the `{#await expr [then|catch] ...}` expression,
// stopping at whichever of `then`/`catch` appears first at depth zero, or at
// the block's own closing `}` when neither appears.
func (p *Parser) scanSvelteAwaitExpr() (expr string, stopKeyword string, err *SyntaxError) {
	start := p.cur.pos
	depth := 0
	for {
		pos, c, ok := p.cur.peek()
		if !ok {
			return "", "", p.emitError(ExpectSvelteBlockEnd)
		}
		switch {
		case c == '{':
			p.cur.advance()
			depth++
		case c == '}':
			if depth == 0 {
				return p.src[start:pos], "", nil
			}
			p.cur.advance()
			depth--
		case depth == 0 && isASCIIWhitespace(c):
			matched := ""
			for _, kw := range [2]string{"then", "catch"} {
				snap := p.cur.snapshot()
				p.cur.skipWhitespace()
				if p.consumeLiteral(kw) {
					if _, nc, nok := p.cur.peek(); !nok || isASCIIWhitespace(nc) || nc == '}' {
						matched = kw
						break
					}
				}
				p.cur.restore(snap)
			}
			if matched != "" {
				return p.src[start:pos], matched, nil
			}
			p.cur.advance()
		default:
			p.cur.advance()
		}
	}
}

// parseSvelteIfBlock parses `{#if expr}...{:else if expr}...{:else}...{/if}`.
func (p *Parser) parseSvelteIfBlock() (ast.SvelteIfBlock, *SyntaxError) {
	begin := p.cur.offset()
	if !p.consumeSvelteBlockOpen("if") {
		return ast.SvelteIfBlock{}, p.emitError(ExpectSvelteIfBlock)
	}
	expr, err := p.parseBracedExprBody(ExpectSvelteIfBlock)
	if err != nil {
		return ast.SvelteIfBlock{}, err
	}
	children, err := p.parseSvelteBlockChildren()
	if err != nil {
		return ast.SvelteIfBlock{}, err
	}

	var elseIfs []ast.SvelteElseIf
	var elseChildren []ast.Node
	for p.consumeSvelteElseIf() {
		expr2, err := p.parseBracedExprBody(ExpectSvelteElseIfBlock)
		if err != nil {
			return ast.SvelteIfBlock{}, err
		}
		kids, err := p.parseSvelteBlockChildren()
		if err != nil {
			return ast.SvelteIfBlock{}, err
		}
		elseIfs = append(elseIfs, ast.SvelteElseIf{Expr: expr2, Children: kids})
	}
	if p.consumeSvelteElse() {
		kids, err := p.parseSvelteBlockChildren()
		if err != nil {
			return ast.SvelteIfBlock{}, err
		}
		elseChildren = kids
	}
	if !p.consumeSvelteBlockClose("if") {
		return ast.SvelteIfBlock{}, p.emitError(ExpectSvelteBlockEnd)
	}
	return ast.SvelteIfBlock{
		Expr: expr, Children: children, ElseIfBlocks: elseIfs, ElseChildren: elseChildren,
		Range: loc.NewRange(begin, p.cur.pos),
	}, nil
}

// parseSvelteEachBlock parses `{#each expr as binding(, index)? (key)?}...{:else}...{/each}`.
func (p *Parser) parseSvelteEachBlock() (ast.SvelteEachBlock, *SyntaxError) {
	begin := p.cur.offset()
	if !p.consumeSvelteBlockOpen("each") {
		return ast.SvelteEachBlock{}, p.emitError(ExpectSvelteEachBlock)
	}
	p.cur.skipWhitespace()
	expr, err := p.scanSvelteExprUpToKeyword("as", ExpectSvelteEachBlock)
	if err != nil {
		return ast.SvelteEachBlock{}, err
	}
	p.cur.skipWhitespace()
	binding, err := p.parseSvelteBinding()
	if err != nil {
		return ast.SvelteEachBlock{}, err
	}

	var index *string
	snap := p.cur.snapshot()
	p.cur.skipWhitespace()
	if p.cur.advanceIfChar(',') {
		p.cur.skipWhitespace()
		idx, err := p.parseIdentifier()
		if err != nil {
			return ast.SvelteEachBlock{}, err
		}
		index = &idx
	} else {
		p.cur.restore(snap)
	}

	var key *string
	snap2 := p.cur.snapshot()
	p.cur.skipWhitespace()
	if _, c, ok := p.cur.peek(); ok && c == '(' {
		k, err := p.parseInside('(', ')', false)
		if err != nil {
			return ast.SvelteEachBlock{}, err
		}
		key = &k
	} else {
		p.cur.restore(snap2)
	}

	p.cur.skipWhitespace()
	if !p.cur.advanceIfChar('}') {
		return ast.SvelteEachBlock{}, p.emitError(ExpectSvelteEachBlock)
	}

	children, err := p.parseSvelteBlockChildren()
	if err != nil {
		return ast.SvelteEachBlock{}, err
	}

	var elseChildren []ast.Node
	if p.consumeSvelteElse() {
		kids, err := p.parseSvelteBlockChildren()
		if err != nil {
			return ast.SvelteEachBlock{}, err
		}
		elseChildren = kids
	}

	if !p.consumeSvelteBlockClose("each") {
		return ast.SvelteEachBlock{}, p.emitError(ExpectSvelteBlockEnd)
	}

	return ast.SvelteEachBlock{
		Expr: expr, Binding: binding, Index: index, Key: key,
		Children: children, ElseChildren: elseChildren,
		Range: loc.NewRange(begin, p.cur.pos),
	}, nil
}

// parseSvelteAwaitBlock parses `{#await expr [then binding]? [catch binding]?}`
// followed by children, optional explicit `{:then}`/`{:catch}` sections, and
// `{/await}`. Heap-allocated per the AST's SvelteAwaitBlock indirection.
func (p *Parser) parseSvelteAwaitBlock() (*ast.SvelteAwaitBlock, *SyntaxError) {
	begin := p.cur.offset()
	if !p.consumeSvelteBlockOpen("await") {
		return nil, p.emitError(ExpectSvelteBlockEnd)
	}
	p.cur.skipWhitespace()
	expr, stopKw, err := p.scanSvelteAwaitExpr()
	if err != nil {
		return nil, err
	}

	var thenBinding, catchBinding *string
	switch stopKw {
	case "then":
		p.cur.skipWhitespace()
		if _, c, ok := p.cur.peek(); ok && c != '}' {
			b, err := p.parseSvelteBinding()
			if err != nil {
				return nil, err
			}
			thenBinding = &b
		}
	case "catch":
		p.cur.skipWhitespace()
		if _, c, ok := p.cur.peek(); ok && c != '}' {
			b, err := p.parseSvelteBinding()
			if err != nil {
				return nil, err
			}
			catchBinding = &b
		}
	}
	p.cur.skipWhitespace()
	if !p.cur.advanceIfChar('}') {
		return nil, p.emitError(ExpectSvelteBlockEnd)
	}

	children, err := p.parseSvelteBlockChildren()
	if err != nil {
		return nil, err
	}

	var thenBlock *ast.SvelteThenBlock
	if p.consumeSvelteThenOpen() {
		p.cur.skipWhitespace()
		binding, err := p.parseSvelteBinding()
		if err != nil {
			return nil, err
		}
		p.cur.skipWhitespace()
		if !p.cur.advanceIfChar('}') {
			return nil, p.emitError(ExpectSvelteThenBlock)
		}
		kids, err := p.parseSvelteBlockChildren()
		if err != nil {
			return nil, err
		}
		thenBlock = &ast.SvelteThenBlock{Binding: binding, Children: kids}
	}

	var catchBlock *ast.SvelteCatchBlock
	if p.consumeSvelteCatchOpen() {
		p.cur.skipWhitespace()
		var binding *string
		if _, c, ok := p.cur.peek(); ok && c != '}' {
			b, err := p.parseSvelteBinding()
			if err != nil {
				return nil, err
			}
			binding = &b
		}
		p.cur.skipWhitespace()
		if !p.cur.advanceIfChar('}') {
			return nil, p.emitError(ExpectSvelteCatchBlock)
		}
		kids, err := p.parseSvelteBlockChildren()
		if err != nil {
			return nil, err
		}
		catchBlock = &ast.SvelteCatchBlock{Binding: binding, Children: kids}
	}

	if !p.consumeSvelteBlockClose("await") {
		return nil, p.emitError(ExpectSvelteBlockEnd)
	}

	return &ast.SvelteAwaitBlock{
		Expr: expr, ThenBinding: thenBinding, CatchBinding: catchBinding,
		Children: children, ThenBlock: thenBlock, CatchBlock: catchBlock,
		Range: loc.NewRange(begin, p.cur.pos),
	}, nil
}

// parseSvelteKeyBlock parses `{#key expr}...{/key}`.
func (p *Parser) parseSvelteKeyBlock() (ast.SvelteKeyBlock, *SyntaxError) {
	begin := p.cur.offset()
	if !p.consumeSvelteBlockOpen("key") {
		return ast.SvelteKeyBlock{}, p.emitError(ExpectSvelteKeyBlock)
	}
	expr, err := p.parseBracedExprBody(ExpectSvelteKeyBlock)
	if err != nil {
		return ast.SvelteKeyBlock{}, err
	}
	children, err := p.parseSvelteBlockChildren()
	if err != nil {
		return ast.SvelteKeyBlock{}, err
	}
	if !p.consumeSvelteBlockClose("key") {
		return ast.SvelteKeyBlock{}, p.emitError(ExpectSvelteBlockEnd)
	}
	return ast.SvelteKeyBlock{Expr: expr, Children: children, Range: loc.NewRange(begin, p.cur.pos)}, nil
}
