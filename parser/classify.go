package parser

import "golang.org/x/net/html/atom"

// isASCIIWhitespace matches the whitespace the grammar skips between
// attributes, directive prefixes, and block keywords.
func isASCIIWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// isTagNameChar matches characters allowed in an element's tag name.
func isTagNameChar(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_', r == '.', r == ':', r == '\\':
		return true
	case r > 127:
		return true
	}
	return false
}

// isAttrNameChar matches characters allowed in an attribute name: anything
// but whitespace and the five characters that would otherwise terminate it.
func isAttrNameChar(r rune) bool {
	if isASCIIWhitespace(r) {
		return false
	}
	switch r {
	case '"', '\'', '>', '/', '=':
		return false
	}
	return true
}

// isUnquotedAttrValueChar matches characters allowed in an unquoted
// attribute value.
func isUnquotedAttrValueChar(r rune) bool {
	if isASCIIWhitespace(r) {
		return false
	}
	switch r {
	case '"', '\'', '=', '<', '>', '`':
		return false
	}
	return true
}

// isIdentifierChar matches characters allowed in a bare identifier (Svelte
// bindings, `{@name ...}` tag names, and so on).
func isIdentifierChar(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_', r == '\\':
		return true
	case r > 127:
		return true
	}
	return false
}

// voidElements lists the HTML elements whose syntax forbids an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "command": true,
	"embed": true, "hr": true, "img": true, "input": true, "keygen": true,
	"link": true, "meta": true, "param": true, "source": true, "track": true,
	"wbr": true,
}

// rawTextElements lists the elements whose content is consumed verbatim
// rather than parsed as further markup (§4.4).
var rawTextElements = map[string]bool{
	"script": true, "style": true, "pre": true, "textarea": true,
}

func isRawTextTagName(name string) bool {
	return rawTextElements[asciiLower(name)]
}

func isVoidTagName(name string) bool {
	return voidElements[asciiLower(name)]
}

// asciiLower lowercases only the ASCII range, matching the grammar's
// case-insensitive tag-name comparisons (`eq_ignore_ascii_case` in the
// reference grammar) without touching non-ASCII tag-name characters.
func asciiLower(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}

// eqFoldASCII reports whether a and b are equal, ASCII case-insensitively.
func eqFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return asciiLower(a) == asciiLower(b)
}

// tagNameEqualFold reports whether two tag names refer to the same element,
// case-insensitively. Known HTML tag names are compared via their interned
// atom.Atom (a single uint32 comparison); anything atom doesn't recognize
// (custom elements, framework components) falls back to a plain
// case-folded byte comparison.
func tagNameEqualFold(a, b string) bool {
	la, lb := asciiLower(a), asciiLower(b)
	if aa, ab := atom.Lookup([]byte(la)), atom.Lookup([]byte(lb)); aa != 0 && ab != 0 {
		return aa == ab
	}
	return la == lb
}
