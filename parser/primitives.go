package parser

import (
	"github.com/markuplang/parse/ast"
	"github.com/markuplang/parse/internal/loc"
)

// parseTagName consumes one or more tag-name characters (§4.2). In Astro,
// if the next character is '>', the tag name is the empty string — the
// fragment shorthand `<>`.
func (p *Parser) parseTagName() (string, *SyntaxError) {
	start, _, ok := p.cur.advanceIf(isTagNameChar)
	if !ok {
		if p.dialect == ast.Astro {
			if _, r, ok := p.cur.peek(); ok && r == '>' {
				return "", nil
			}
		}
		return "", p.emitError(ExpectTagName)
	}
	for {
		if _, _, ok := p.cur.advanceIf(isTagNameChar); !ok {
			break
		}
	}
	return p.src[start:p.cur.pos], nil
}

// parseAttrName consumes one or more attribute-name characters (§4.2).
func (p *Parser) parseAttrName() (string, *SyntaxError) {
	start, _, ok := p.cur.advanceIf(isAttrNameChar)
	if !ok {
		return "", p.emitError(ExpectAttrName)
	}
	for {
		if _, _, ok := p.cur.advanceIf(isAttrNameChar); !ok {
			break
		}
	}
	return p.src[start:p.cur.pos], nil
}

// parseAttrValue consumes a quoted or unquoted attribute value (§4.2).
func (p *Parser) parseAttrValue() (string, *SyntaxError) {
	if _, quote, ok := p.cur.peek(); ok && (quote == '"' || quote == '\'') {
		p.cur.advance()
		start := p.cur.pos
		end := start
		for {
			i, c, ok := p.cur.advance()
			if !ok {
				end = len(p.src)
				break
			}
			if c == quote {
				end = i
				break
			}
		}
		return p.src[start:end], nil
	}

	start, _, ok := p.cur.advanceIf(isUnquotedAttrValueChar)
	if !ok {
		return "", p.emitError(ExpectAttrValue)
	}
	for {
		if _, _, ok := p.cur.advanceIf(isUnquotedAttrValueChar); !ok {
			break
		}
	}
	return p.src[start:p.cur.pos], nil
}

// parseIdentifier consumes one or more identifier characters (§4.2).
func (p *Parser) parseIdentifier() (string, *SyntaxError) {
	start, _, ok := p.cur.advanceIf(isIdentifierChar)
	if !ok {
		return "", p.emitError(ExpectIdentifier)
	}
	for {
		if _, _, ok := p.cur.advanceIf(isIdentifierChar); !ok {
			break
		}
	}
	return p.src[start:p.cur.pos], nil
}

// parseComment requires "<!--" and reads until the first "-->", closing
// silently at end of input with no error (§4.2, §7).
func (p *Parser) parseComment() (ast.Comment, *SyntaxError) {
	begin := p.cur.offset()
	if !p.consumeLiteral("<!--") {
		return ast.Comment{}, p.emitError(ExpectComment)
	}
	start := p.cur.pos
	end := len(p.src)
	closed := false
	for {
		i, c, ok := p.cur.advance()
		if !ok {
			break
		}
		if c == '-' {
			snap := p.cur.snapshot()
			if p.cur.advanceIfChar('-') && p.cur.advanceIfChar('>') {
				end = i
				closed = true
				break
			}
			p.cur.restore(snap)
		}
	}
	if !closed {
		p.handler.Warn(loc.WARNING_UNTERMINATED_HTML_COMMENT, "unterminated HTML comment", loc.NewRange(begin, p.cur.pos))
	}
	return ast.Comment{Raw: p.src[start:end], Range: loc.NewRange(begin, p.cur.pos)}, nil
}

// parseDoctype matches a case-insensitive `<!DOCTYPE html>` (§4.2).
func (p *Parser) parseDoctype() *SyntaxError {
	if !p.consumeLiteral("<!") {
		return p.emitError(ExpectDoctype)
	}
	if !p.consumeLiteralFold("doctype") {
		return p.emitError(ExpectDoctype)
	}
	p.cur.skipWhitespace()
	if !p.consumeLiteralFold("html") {
		return p.emitError(ExpectDoctype)
	}
	p.cur.skipWhitespace()
	if !p.cur.advanceIfChar('>') {
		return p.emitError(ExpectDoctype)
	}
	return nil
}

// parseMustacheInterpolation requires "{{" and reads until the first "}}",
// closing silently at end of input (§4.2, §7).
func (p *Parser) parseMustacheInterpolation() (string, *SyntaxError) {
	begin := p.cur.offset()
	if !p.consumeLiteral("{{") {
		return "", p.emitError(ExpectMustacheInterpolation)
	}
	start := p.cur.pos
	end := len(p.src)
	closed := false
	for {
		i, c, ok := p.cur.advance()
		if !ok {
			break
		}
		if c == '}' && p.cur.advanceIfChar('}') {
			end = i
			closed = true
			break
		}
	}
	if !closed {
		p.handler.Warn(loc.WARNING_UNTERMINATED_MUSTACHE, "unterminated interpolation", loc.NewRange(begin, p.cur.pos))
	}
	return p.src[start:end], nil
}

// parseInside requires the next character to equal open, then scans
// forward tracking balanced open/close nesting, and returns the slice
// between them (with or without the delimiters per inclusive). It consumes
// both the open and close characters regardless of inclusive.
func (p *Parser) parseInside(open, closeCh rune, inclusive bool) (string, *SyntaxError) {
	openPos, _, ok := p.cur.advanceIf(func(r rune) bool { return r == open })
	if !ok {
		return "", expectChar(open, p.cur.offset())
	}
	var start int
	if inclusive {
		start = openPos
	} else {
		start = p.cur.pos
	}
	end := start
	stack := 0
	for {
		i, c, ok := p.cur.advance()
		if !ok {
			break
		}
		if c == open {
			stack++
		} else if c == closeCh {
			if stack == 0 {
				if inclusive {
					end = p.cur.pos
				} else {
					end = i
				}
				break
			}
			stack--
		}
	}
	return p.src[start:end], nil
}

// parseTextNode consumes a contiguous run of text up to the next construct
// boundary for the active dialect (§4.3).
func (p *Parser) parseTextNode() (ast.TextNode, *SyntaxError) {
	begin := p.cur.offset()
	start, first, ok := p.cur.advanceIf(func(r rune) bool {
		if p.dialect == ast.Svelte {
			return r != '{'
		}
		return true
	})
	if !ok {
		return ast.TextNode{}, p.emitError(ExpectTextNode)
	}

	if p.dialect == ast.Vue && first == '{' {
		if _, r, ok := p.cur.peek(); ok && r == '{' {
			return ast.TextNode{}, p.emitError(ExpectTextNode)
		}
	}

	lineBreaks := 0
	if first == '\n' {
		lineBreaks = 1
	}
	end := len(p.src)
loop:
	for {
		i, c, ok := p.cur.peek()
		if !ok {
			end = len(p.src)
			break
		}
		switch c {
		case '{':
			if p.textBraceIsBoundary() {
				end = i
				break loop
			}
			p.cur.advance()
		case '<':
			if p.textAngleIsBoundary() {
				end = i
				break loop
			}
			p.cur.advance()
		case '-':
			if p.dialect == ast.Astro && !p.hasAstroFrontMatter && p.peekLiteralAt(1, "--") {
				end = i
				break loop
			}
			p.cur.advance()
		default:
			if c == '\n' {
				lineBreaks++
			}
			p.cur.advance()
		}
	}

	return ast.TextNode{
		Raw:        p.src[start:end],
		LineBreaks: lineBreaks,
		Range:      loc.NewRange(begin, p.cur.pos),
	}, nil
}

// textBraceIsBoundary implements §4.3's dialect-dependent rule for whether
// a `{` the text scanner just peeked ends the text node.
func (p *Parser) textBraceIsBoundary() bool {
	switch p.dialect {
	case ast.Html:
		return false
	case ast.Vue, ast.Vento:
		return p.peekLiteralAt(1, "{")
	case ast.Svelte, ast.Astro:
		return true
	case ast.Jinja:
		_, r, ok := p.cur.peekAt(1)
		return ok && (r == '%' || r == '{' || r == '#')
	}
	return false
}

// textAngleIsBoundary implements §4.3's rule for whether a `<` the text
// scanner just peeked ends the text node.
func (p *Parser) textAngleIsBoundary() bool {
	_, r, ok := p.cur.peekAt(1)
	if !ok {
		return false
	}
	if isTagNameChar(r) || r == '/' || r == '!' {
		return true
	}
	return r == '>' && p.dialect == ast.Astro
}

// peekLiteralAt reports whether the runes starting n positions ahead of the
// current (unconsumed) position match want, without consuming anything.
func (p *Parser) peekLiteralAt(n int, want string) bool {
	cp := p.cur
	for i := 0; i < n; i++ {
		if _, _, ok := cp.advance(); !ok {
			return false
		}
	}
	for _, wr := range want {
		_, r, ok := cp.advance()
		if !ok || r != wr {
			return false
		}
	}
	return true
}

// parseRawTextNode consumes until the next "</" followed by a
// case-insensitive match of tagName, without parsing any nested structure
// (§4.4). Used for script/style/pre/textarea content.
func (p *Parser) parseRawTextNode(tagName string) (ast.TextNode, *SyntaxError) {
	begin := p.cur.offset()
	start := begin
	lineBreaks := 0
	end := len(p.src)
	for {
		i, c, ok := p.cur.peek()
		if !ok {
			end = len(p.src)
			break
		}
		if c == '<' {
			snap := p.cur.snapshot()
			p.cur.advance()
			if p.cur.advanceIfChar('/') && p.consumeLiteralFoldNoAdvanceCheck(tagName) {
				p.cur.restore(snap)
				end = i
				break
			}
			p.cur.restore(snap)
			p.cur.advance()
			continue
		}
		if c == '\n' {
			lineBreaks++
		}
		p.cur.advance()
	}
	return ast.TextNode{
		Raw:        p.src[start:end],
		LineBreaks: lineBreaks,
		Range:      loc.NewRange(begin, end),
	}, nil
}

// consumeLiteralFoldNoAdvanceCheck reports whether the upcoming runes match
// want case-insensitively, consuming them if so — used after "</" has
// already been consumed. Like consumeLiteralFold, it does not check what
// follows the matched runes (the caller only cares whether the raw-text
// element's name matches, not where the rest of the close tag goes;
// parseElementChildren re-parses the close tag properly afterward).
func (p *Parser) consumeLiteralFoldNoAdvanceCheck(want string) bool {
	snap := p.cur.snapshot()
	for _, wr := range want {
		_, r, ok := p.cur.advance()
		if !ok || !eqRuneFold(r, wr) {
			p.cur.restore(snap)
			return false
		}
	}
	return true
}

func eqRuneFold(a, b rune) bool {
	if a == b {
		return true
	}
	al, bl := asciiLowerRune(a), asciiLowerRune(b)
	return al == bl
}

func asciiLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// consumeLiteral consumes want verbatim (case-sensitive), restoring the
// cursor and returning false if it does not match.
func (p *Parser) consumeLiteral(want string) bool {
	snap := p.cur.snapshot()
	for _, wr := range want {
		_, r, ok := p.cur.advance()
		if !ok || r != wr {
			p.cur.restore(snap)
			return false
		}
	}
	return true
}

// consumeLiteralFold consumes want case-insensitively.
func (p *Parser) consumeLiteralFold(want string) bool {
	snap := p.cur.snapshot()
	for _, wr := range want {
		_, r, ok := p.cur.advance()
		if !ok || !eqRuneFold(r, wr) {
			p.cur.restore(snap)
			return false
		}
	}
	return true
}

