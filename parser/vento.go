package parser

import (
	"strings"

	"github.com/markuplang/parse/ast"
	"github.com/markuplang/parse/internal/loc"
)

// ventoReservedTokens lists the leading tokens that keep a `{{ tag }}` from
// being classified as a plain interpolation (§4.13).
var ventoReservedTokens = map[string]bool{
	"if": true, "else": true, "for": true, "set": true, "include": true,
	"layout": true, "async": true, "function": true, "import": true, "export": true,
}

func isVentoInterpolationToken(tagName string) bool {
	return !ventoReservedTokens[tagName]
}

// splitFirstToken splits s into its leading whitespace-delimited token and
// the remainder (with the separating whitespace stripped from the front of
// the remainder).
func splitFirstToken(s string) (string, string) {
	i := 0
	for i < len(s) && !isASCIIWhitespace(rune(s[i])) {
		i++
	}
	tok := s[:i]
	for i < len(s) && isASCIIWhitespace(rune(s[i])) {
		i++
	}
	return tok, s[i:]
}

// ventoBlockName reports whether (tagName, rest) opens a Vento block, and
// if so, which block name governs its closer (§4.13).
func ventoBlockName(tagName, rest string) (string, bool) {
	switch tagName {
	case "for", "layout", "function":
		return tagName, true
	case "if":
		return "if", true
	case "set":
		if !strings.Contains(rest, "=") {
			return "set", true
		}
		return "", false
	case "export":
		restTrim := strings.TrimSpace(rest)
		if restTrim == "function" || strings.HasPrefix(restTrim, "function(") || strings.HasPrefix(restTrim, "function ") {
			return "export function", true
		}
		if !strings.Contains(rest, "=") {
			return "export", true
		}
		return "", false
	case "async":
		restTrim := strings.TrimSpace(rest)
		if restTrim == "function" || strings.HasPrefix(restTrim, "function(") || strings.HasPrefix(restTrim, "function ") {
			return "async function", true
		}
		return "", false
	}
	return "", false
}

// normalizeVentoBlockName collapses the three "function"-family block names
// to the single closer spelling they share.
func normalizeVentoBlockName(name string) string {
	if name == "function" || name == "async function" || name == "export function" {
		return "function"
	}
	return name
}

// resolveVentoTag classifies already-scanned `{{ ... }}` content into a
// comment, eval, block, interpolation, or standalone tag (§4.13). begin and
// tagRange describe the whole `{{ ... }}` span.
func (p *Parser) resolveVentoTag(raw string, begin int, tagRange loc.Range) (ast.Node, *SyntaxError) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, "#") && strings.HasSuffix(trimmed, "#") {
		return ast.VentoComment{Raw: trimmed[1 : len(trimmed)-1], Range: tagRange}, nil
	}
	if strings.HasPrefix(trimmed, ">") {
		return ast.VentoEval{Raw: strings.TrimSpace(trimmed[1:]), Range: tagRange}, nil
	}

	tagName, rest := splitFirstToken(trimmed)
	if blockName, isBlock := ventoBlockName(tagName, rest); isBlock {
		return p.parseVentoBlockBody(begin, ast.VentoTag{Tag: raw, Range: tagRange}, blockName)
	}
	if isVentoInterpolationToken(tagName) {
		return ast.VentoInterpolation{Expr: raw, Range: tagRange}, nil
	}
	return ast.VentoTag{Tag: raw, Range: tagRange}, nil
}

// parseVentoTagOrBlock requires "{{" and dispatches on the scanned content
// (§4.13). Called from the node dispatcher.
func (p *Parser) parseVentoTagOrBlock() (ast.Node, *SyntaxError) {
	begin := p.cur.offset()
	raw, err := p.parseMustacheInterpolation()
	if err != nil {
		return nil, err
	}
	return p.resolveVentoTag(raw, begin, loc.NewRange(begin, p.cur.pos))
}

// parseVentoChildrenUntilTag gathers nodes until "{{" is peeked, without
// consuming it. End-of-input inside a block is an error (§4.13).
func (p *Parser) parseVentoChildrenUntilTag() ([]ast.Node, *SyntaxError) {
	var children []ast.Node
	for {
		_, c, ok := p.cur.peek()
		if !ok {
			return nil, p.emitError(ExpectVentoBlockEnd)
		}
		if c == '{' {
			if _, c2, ok2 := p.cur.peekAt(1); ok2 && c2 == '{' {
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

// parseVentoBlockBody consumes the body of a block whose opener has already
// been scanned: children, a single optional `else` branch for `if`, nested
// tags-or-blocks, and the matching `{{ /<name> }}` closer.
func (p *Parser) parseVentoBlockBody(begin int, opener ast.VentoTag, blockName string) (ast.VentoBlock, *SyntaxError) {
	normName := normalizeVentoBlockName(blockName)
	body := []ast.VentoTagOrChildren{{Kind: ast.VentoBodyTag, Tag: opener}}
	for {
		children, err := p.parseVentoChildrenUntilTag()
		if err != nil {
			return ast.VentoBlock{}, err
		}
		if len(children) > 0 {
			body = append(body, ast.VentoTagOrChildren{Kind: ast.VentoBodyChildren, Children: children})
		}

		tagBegin := p.cur.offset()
		raw, err := p.parseMustacheInterpolation()
		if err != nil {
			return ast.VentoBlock{}, err
		}
		tagRange := loc.NewRange(tagBegin, p.cur.pos)
		trimmed := strings.TrimSpace(raw)
		tag := ast.VentoTag{Tag: raw, Range: tagRange}

		if closed, ok := matchCloserName(ventoCloserPattern, trimmed); ok {
			if normalizeVentoBlockName(closed) == normName {
				body = append(body, ast.VentoTagOrChildren{Kind: ast.VentoBodyTag, Tag: tag})
				break
			}
		}
		if blockName == "if" && trimmed == "else" {
			body = append(body, ast.VentoTagOrChildren{Kind: ast.VentoBodyTag, Tag: tag})
			continue
		}

		nested, err := p.resolveVentoTag(raw, tagBegin, tagRange)
		if err != nil {
			return ast.VentoBlock{}, err
		}
		body = append(body, ast.VentoTagOrChildren{Kind: ast.VentoBodyChildren, Children: []ast.Node{nested}})
	}
	return ast.VentoBlock{Body: body, Range: loc.NewRange(begin, p.cur.pos)}, nil
}
