package parser

import (
	"github.com/markuplang/parse/ast"
	"github.com/markuplang/parse/internal/loc"
)

// jinjaBlockKeywords names the tag keywords that open a paired block rather
// than standing alone (§4.8).
var jinjaBlockKeywords = map[string]bool{
	"for": true, "if": true, "macro": true, "call": true, "filter": true,
	"block": true, "apply": true, "autoescape": true, "embed": true, "with": true,
}

// parseJinjaComment requires "{#" and reads until the first "#}", closing
// silently at end of input (§4.8).
func (p *Parser) parseJinjaComment() (ast.JinjaComment, *SyntaxError) {
	begin := p.cur.offset()
	if !p.consumeLiteral("{#") {
		return ast.JinjaComment{}, p.emitError(ExpectJinjaTag)
	}
	start := p.cur.pos
	end := len(p.src)
	closed := false
	for {
		i, c, ok := p.cur.advance()
		if !ok {
			break
		}
		if c == '#' && p.cur.advanceIfChar('}') {
			end = i
			closed = true
			break
		}
	}
	if !closed {
		p.handler.Warn(loc.WARNING_UNTERMINATED_JINJA_COMMENT, "unterminated Jinja comment", loc.NewRange(begin, p.cur.pos))
	}
	return ast.JinjaComment{Raw: p.src[start:end], Range: loc.NewRange(begin, p.cur.pos)}, nil
}

// parseJinjaInterpolation requires "{{" and parses a mustache interpolation.
func (p *Parser) parseJinjaInterpolation() (ast.JinjaInterpolation, *SyntaxError) {
	begin := p.cur.offset()
	expr, err := p.parseMustacheInterpolation()
	if err != nil {
		return ast.JinjaInterpolation{}, err
	}
	return ast.JinjaInterpolation{Expr: expr, Range: loc.NewRange(begin, p.cur.pos)}, nil
}

// parseJinjaTagRaw requires "{%" and reads the tag content verbatim up to
// the first literal "%}", closing silently at end of input (§4.8, §7).
func (p *Parser) parseJinjaTagRaw() (ast.JinjaTag, *SyntaxError) {
	begin := p.cur.offset()
	if !p.consumeLiteral("{%") {
		return ast.JinjaTag{}, p.emitError(ExpectJinjaTag)
	}
	start := p.cur.pos
	end := len(p.src)
	closed := false
	for {
		i, c, ok := p.cur.advance()
		if !ok {
			break
		}
		if c == '%' && p.cur.advanceIfChar('}') {
			end = i
			closed = true
			break
		}
	}
	if !closed {
		p.handler.Warn(loc.WARNING_UNTERMINATED_JINJA_TAG, "unterminated Jinja tag", loc.NewRange(begin, p.cur.pos))
	}
	return ast.JinjaTag{Content: p.src[start:end], Range: loc.NewRange(begin, p.cur.pos)}, nil
}

// jinjaTagName extracts the tag's leading whitespace-separated token, after
// stripping any leading '+'/'-' whitespace-control marker and whitespace.
func jinjaTagName(content string) string {
	i := 0
	for i < len(content) && (content[i] == '+' || content[i] == '-') {
		i++
	}
	for i < len(content) && isASCIIWhitespace(rune(content[i])) {
		i++
	}
	j := i
	for j < len(content) && !isASCIIWhitespace(rune(content[j])) {
		j++
	}
	return content[i:j]
}

// parseJinjaChildrenUntilTag gathers nodes until "{%" is peeked, without
// consuming it.
func (p *Parser) parseJinjaChildrenUntilTag() ([]ast.Node, *SyntaxError) {
	var children []ast.Node
	for {
		_, c, ok := p.cur.peek()
		if !ok {
			return nil, p.emitError(ExpectJinjaBlockEnd)
		}
		if c == '{' {
			if _, c2, ok2 := p.cur.peekAt(1); ok2 && c2 == '%' {
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

// parseJinjaTagOrBlock parses a "{% ... %}" construct and, if its tag name
// opens a block, the entire paired block (§4.8). The result is either an
// ast.JinjaTag (standalone) or an ast.JinjaBlock.
func (p *Parser) parseJinjaTagOrBlock() (ast.Node, *SyntaxError) {
	begin := p.cur.offset()
	tag, err := p.parseJinjaTagRaw()
	if err != nil {
		return nil, err
	}
	name := jinjaTagName(tag.Content)
	if jinjaBlockKeywords[name] {
		block, err := p.parseJinjaBlockBody(begin, tag, name)
		if err != nil {
			return nil, err
		}
		return block, nil
	}
	return tag, nil
}

// parseJinjaBlockBody consumes the body of a block whose opener has already
// been parsed: children, interleaved elif/elseif/else branches for if/for,
// nested tags-or-blocks, and the matching `end<name>` closer.
func (p *Parser) parseJinjaBlockBody(begin int, opener ast.JinjaTag, openerName string) (ast.JinjaBlock, *SyntaxError) {
	body := []ast.JinjaTagOrChildren{{Kind: ast.JinjaBodyTag, Tag: opener}}
	for {
		children, err := p.parseJinjaChildrenUntilTag()
		if err != nil {
			return ast.JinjaBlock{}, err
		}
		if len(children) > 0 {
			body = append(body, ast.JinjaTagOrChildren{Kind: ast.JinjaBodyChildren, Children: children})
		}

		tag, err := p.parseJinjaTagRaw()
		if err != nil {
			return ast.JinjaBlock{}, err
		}
		name := jinjaTagName(tag.Content)

		if closed, ok := matchCloserName(jinjaCloserPattern, name); ok && closed == openerName {
			body = append(body, ast.JinjaTagOrChildren{Kind: ast.JinjaBodyTag, Tag: tag})
			break
		}
		if (openerName == "if" || openerName == "for") && (name == "elif" || name == "elseif" || name == "else") {
			body = append(body, ast.JinjaTagOrChildren{Kind: ast.JinjaBodyTag, Tag: tag})
			continue
		}

		var nested ast.Node
		if jinjaBlockKeywords[name] {
			nestedBlock, err := p.parseJinjaBlockBody(tag.Range.Loc.Start, tag, name)
			if err != nil {
				return ast.JinjaBlock{}, err
			}
			nested = nestedBlock
		} else {
			nested = tag
		}
		body = append(body, ast.JinjaTagOrChildren{Kind: ast.JinjaBodyChildren, Children: []ast.Node{nested}})
	}
	return ast.JinjaBlock{Body: body, Range: loc.NewRange(begin, p.cur.pos)}, nil
}
