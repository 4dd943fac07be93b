package parser

import (
	"github.com/markuplang/parse/ast"
	"github.com/markuplang/parse/internal/loc"
)

// tryParseAstroAttribute attempts the `{expr}`/`name={expr}` attribute
// shapes, restoring the cursor on failure (§4.6).
func (p *Parser) tryParseAstroAttribute() (ast.AstroAttribute, bool) {
	snap := p.cur.snapshot()
	attr, err := p.parseAstroAttribute()
	if err != nil {
		p.cur.restore(snap)
		return ast.AstroAttribute{}, false
	}
	return attr, true
}

func (p *Parser) parseAstroAttribute() (ast.AstroAttribute, *SyntaxError) {
	begin := p.cur.offset()
	var name *string
	if _, c, ok := p.cur.peek(); !ok || c != '{' {
		n, err := p.parseAttrName()
		if err != nil {
			return ast.AstroAttribute{}, err
		}
		p.cur.skipWhitespace()
		if !p.cur.advanceIfChar('=') {
			return ast.AstroAttribute{}, expectChar('=', p.cur.offset())
		}
		p.cur.skipWhitespace()
		name = &n
	}
	if !p.cur.advanceIfChar('{') {
		return ast.AstroAttribute{}, expectChar('{', p.cur.offset())
	}
	expr, err := p.parseBracedExprBody(ExpectAstroAttr)
	if err != nil {
		return ast.AstroAttribute{}, err
	}
	return ast.AstroAttribute{Name: name, Expr: expr, Range: loc.NewRange(begin, p.cur.pos)}, nil
}

// parseAstroExpr parses `{ ...script... <tag>...</tag> ...script... }`,
// alternating raw script fragments with runs of template markup (§4.11).
func (p *Parser) parseAstroExpr() (ast.AstroExpr, *SyntaxError) {
	begin := p.cur.offset()
	if !p.cur.advanceIfChar('{') {
		return ast.AstroExpr{}, p.emitError(ExpectAstroExpr)
	}
	var children []ast.AstroExprChild
	depth := 0
	accStart := p.cur.pos

	for {
		pos, c, ok := p.cur.peek()
		if !ok {
			return ast.AstroExpr{}, p.emitError(ExpectAstroExpr)
		}
		switch {
		case c == '{':
			p.cur.advance()
			depth++
		case c == '}':
			if depth == 0 {
				text := p.src[accStart:pos]
				if text != "" {
					children = append(children, ast.AstroExprChild{Kind: ast.AstroExprScript, Script: text})
				}
				p.cur.advance()
				return ast.AstroExpr{Children: children, Range: loc.NewRange(begin, p.cur.pos)}, nil
			}
			p.cur.advance()
			depth--
		case c == '<':
			if _, nc, nok := p.cur.peekAt(1); nok && (isTagNameChar(nc) || nc == '!' || nc == '>') {
				text := p.src[accStart:pos]
				if text != "" {
					if isAllASCIIWhitespace(text) {
						if len(children) > 0 && children[len(children)-1].Kind == ast.AstroExprTemplate {
							last := &children[len(children)-1]
							last.Template = append(last.Template, ast.TextNode{Raw: text, LineBreaks: countNewlines(text)})
						}
					} else {
						children = append(children, ast.AstroExprChild{Kind: ast.AstroExprScript, Script: text})
					}
				}
				node, err := p.parseNode()
				if err != nil {
					return ast.AstroExpr{}, err
				}
				if len(children) == 0 || children[len(children)-1].Kind == ast.AstroExprScript {
					children = append(children, ast.AstroExprChild{Kind: ast.AstroExprTemplate})
				}
				last := &children[len(children)-1]
				last.Template = append(last.Template, node)
				accStart = p.cur.pos
			} else {
				p.cur.advance()
			}
		default:
			p.cur.advance()
		}
	}
}

// isAllASCIIWhitespace reports whether s contains only ASCII whitespace
// (and is non-empty checks are the caller's responsibility).
func isAllASCIIWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isASCIIWhitespace(rune(s[i])) {
			return false
		}
	}
	return true
}

func countNewlines(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}

// astroDelim tags what a parseAstroFrontMatter stack entry is tracking.
type astroDelim byte

const (
	astroDelimSingleQuote  astroDelim = 'q'
	astroDelimDoubleQuote  astroDelim = 'd'
	astroDelimBacktick     astroDelim = 'b'
	astroDelimBrace        astroDelim = '{'
	astroDelimLineComment  astroDelim = 'l'
	astroDelimBlockComment astroDelim = 'c'
)

// parseAstroFrontMatter requires the prefix "---" and scans to the next
// top-level "---", tracking a delimiter stack for quotes, template-literal
// interpolation, braces, and comments so that a `---` inside any of those
// does not terminate the front matter early (§4.12).
func (p *Parser) parseAstroFrontMatter() (ast.AstroFrontMatter, *SyntaxError) {
	begin := p.cur.offset()
	if !p.consumeLiteral("---") {
		return ast.AstroFrontMatter{}, p.emitError(ExpectAstroFrontMatter)
	}
	start := p.cur.pos
	var stack []astroDelim
	end := len(p.src)
	closed := false

	for {
		if len(stack) == 0 && p.consumeLiteral("---") {
			end = p.cur.pos - 3
			closed = true
			break
		}
		_, c, ok := p.cur.peek()
		if !ok {
			end = len(p.src)
			break
		}

		var top astroDelim
		if len(stack) > 0 {
			top = stack[len(stack)-1]
		}

		switch top {
		case astroDelimLineComment:
			p.cur.advance()
			if c == '\n' {
				stack = stack[:len(stack)-1]
			}
		case astroDelimBlockComment:
			if c == '*' && p.peekLiteralAt(1, "/") {
				p.cur.advance()
				p.cur.advance()
				stack = stack[:len(stack)-1]
			} else {
				p.cur.advance()
			}
		case astroDelimSingleQuote, astroDelimDoubleQuote, astroDelimBacktick:
			quoteChar := map[astroDelim]rune{
				astroDelimSingleQuote: '\'',
				astroDelimDoubleQuote: '"',
				astroDelimBacktick:    '`',
			}[top]
			switch {
			case c == '\\':
				p.cur.advance()
				p.cur.advance()
			case c == quoteChar:
				p.cur.advance()
				stack = stack[:len(stack)-1]
			case top == astroDelimBacktick && c == '$' && p.peekLiteralAt(1, "{"):
				p.cur.advance()
				p.cur.advance()
				stack = append(stack, astroDelimBrace)
			default:
				p.cur.advance()
			}
		default:
			switch {
			case c == '/' && p.peekLiteralAt(1, "/"):
				p.cur.advance()
				p.cur.advance()
				stack = append(stack, astroDelimLineComment)
			case c == '/' && p.peekLiteralAt(1, "*"):
				p.cur.advance()
				p.cur.advance()
				stack = append(stack, astroDelimBlockComment)
			case c == '\'':
				p.cur.advance()
				stack = append(stack, astroDelimSingleQuote)
			case c == '"':
				p.cur.advance()
				stack = append(stack, astroDelimDoubleQuote)
			case c == '`':
				p.cur.advance()
				stack = append(stack, astroDelimBacktick)
			case c == '{':
				p.cur.advance()
				stack = append(stack, astroDelimBrace)
			case c == '}':
				p.cur.advance()
				if len(stack) > 0 && stack[len(stack)-1] == astroDelimBrace {
					stack = stack[:len(stack)-1]
				}
			default:
				p.cur.advance()
			}
		}
	}

	p.hasAstroFrontMatter = true
	if !closed {
		p.handler.Warn(loc.WARNING_UNTERMINATED_FRONT_MATTER, "unterminated front matter fence", loc.NewRange(begin, p.cur.pos))
	}
	return ast.AstroFrontMatter{Raw: p.src[start:end], Range: loc.NewRange(begin, p.cur.pos)}, nil
}
