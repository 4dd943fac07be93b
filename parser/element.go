package parser

import (
	"github.com/markuplang/parse/ast"
	"github.com/markuplang/parse/internal/loc"
)

// parseElement parses an open tag, its attributes, and — unless the tag is
// void or self-closing — its children and matching close tag (§4.5).
func (p *Parser) parseElement() (ast.Element, *SyntaxError) {
	begin := p.cur.offset()
	if !p.cur.advanceIfChar('<') {
		return ast.Element{}, p.emitError(ExpectElement)
	}
	tagName, err := p.parseTagName()
	if err != nil {
		return ast.Element{}, err
	}
	voidElement := isVoidTagName(tagName)

	attrs, firstAttrSameLine, closeKind, err := p.parseOpenTag()
	if err != nil {
		return ast.Element{}, err
	}

	if closeKind == openTagSelfClosing {
		return ast.Element{
			TagName:           tagName,
			Attrs:             attrs,
			FirstAttrSameLine: firstAttrSameLine,
			SelfClosing:       true,
			VoidElement:       voidElement,
			Range:             loc.NewRange(begin, p.cur.pos),
		}, nil
	}
	if voidElement {
		return ast.Element{
			TagName:           tagName,
			Attrs:             attrs,
			FirstAttrSameLine: firstAttrSameLine,
			VoidElement:       voidElement,
			Range:             loc.NewRange(begin, p.cur.pos),
		}, nil
	}

	children, err := p.parseElementChildren(tagName)
	if err != nil {
		return ast.Element{}, err
	}

	return ast.Element{
		TagName:           tagName,
		Attrs:             attrs,
		FirstAttrSameLine: firstAttrSameLine,
		Children:          children,
		VoidElement:       voidElement,
		Range:             loc.NewRange(begin, p.cur.pos),
	}, nil
}

type openTagClose uint8

const (
	openTagEnd openTagClose = iota
	openTagSelfClosing
)

// parseOpenTag consumes the attribute loop of §4.5 step 2, stopping once
// the open tag's '>' (or self-closing '/>') has been consumed.
func (p *Parser) parseOpenTag() ([]ast.Attribute, bool, openTagClose, *SyntaxError) {
	var attrs []ast.Attribute
	firstAttrSameLine := true
	for {
		_, c, ok := p.cur.peek()
		if !ok {
			return nil, false, 0, p.emitError(ExpectCloseTag)
		}
		switch {
		case c == '/':
			p.cur.advance()
			if !p.cur.advanceIfChar('>') {
				return nil, false, 0, p.emitError(ExpectSelfCloseTag)
			}
			return attrs, firstAttrSameLine, openTagSelfClosing, nil
		case c == '>':
			p.cur.advance()
			return attrs, firstAttrSameLine, openTagEnd, nil
		case c == '\n':
			if len(attrs) == 0 {
				firstAttrSameLine = false
			}
			p.cur.advance()
		case isASCIIWhitespace(c):
			p.cur.advance()
		default:
			attr, err := p.parseAttr()
			if err != nil {
				return nil, false, 0, err
			}
			attrs = append(attrs, attr)
		}
	}
}

// parseElementChildren consumes §4.5 steps 3-4: the raw-text prelude for
// script/style/pre/textarea, then the child loop up to the matching close
// tag.
func (p *Parser) parseElementChildren(tagName string) ([]ast.Node, *SyntaxError) {
	var children []ast.Node
	if isRawTextTagName(tagName) {
		tn, err := p.parseRawTextNode(tagName)
		if err != nil {
			return nil, err
		}
		if tn.Raw != "" {
			children = append(children, tn)
		}
	}

	for {
		_, c, ok := p.cur.peek()
		if !ok {
			return nil, p.emitError(ExpectCloseTag)
		}
		if c == '<' {
			snap := p.cur.snapshot()
			p.cur.advance()
			if slashPos, _, ok := p.cur.advanceIf(func(r rune) bool { return r == '/' }); ok {
				closeTagName, err := p.parseTagName()
				if err != nil {
					return nil, err
				}
				if !tagNameEqualFold(closeTagName, tagName) {
					return nil, &SyntaxError{Kind: ExpectCloseTag, Pos: slashPos}
				}
				p.cur.skipWhitespace()
				if !p.cur.advanceIfChar('>') {
					return nil, p.emitError(ExpectCloseTag)
				}
				return children, nil
			}
			p.cur.restore(snap)
			node, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			children = append(children, node)
			continue
		}

		if isRawTextTagName(tagName) {
			tn, err := p.parseRawTextNode(tagName)
			if err != nil {
				return nil, err
			}
			children = append(children, tn)
			continue
		}
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
}
