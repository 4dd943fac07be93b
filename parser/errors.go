package parser

import "fmt"

// ErrorKind identifies what the parser expected but did not find. The set
// is extensible: new dialect constructs get new kinds rather than reusing
// an existing one loosely.
type ErrorKind uint8

const (
	ExpectElement ErrorKind = iota
	ExpectTagName
	ExpectCloseTag
	ExpectSelfCloseTag
	ExpectAttrName
	ExpectAttrValue
	ExpectChar
	ExpectComment
	ExpectDoctype
	ExpectIdentifier
	ExpectTextNode
	ExpectMustacheInterpolation
	ExpectVueDirective
	ExpectSvelteInterpolation
	ExpectSvelteAttr
	ExpectSvelteAtTag
	ExpectSvelteIfBlock
	ExpectSvelteElseIfBlock
	ExpectSvelteBlockEnd
	ExpectSvelteThenBlock
	ExpectSvelteCatchBlock
	ExpectSvelteEachBlock
	ExpectSvelteKeyBlock
	UnknownSvelteBlock
	ExpectAstroAttr
	ExpectAstroExpr
	ExpectAstroFrontMatter
	ExpectJinjaTag
	ExpectJinjaBlockEnd
	ExpectVentoBlockEnd
)

var errorKindNames = [...]string{
	ExpectElement:               "ExpectElement",
	ExpectTagName:                "ExpectTagName",
	ExpectCloseTag:               "ExpectCloseTag",
	ExpectSelfCloseTag:           "ExpectSelfCloseTag",
	ExpectAttrName:               "ExpectAttrName",
	ExpectAttrValue:              "ExpectAttrValue",
	ExpectChar:                   "ExpectChar",
	ExpectComment:                "ExpectComment",
	ExpectDoctype:                "ExpectDoctype",
	ExpectIdentifier:             "ExpectIdentifier",
	ExpectTextNode:               "ExpectTextNode",
	ExpectMustacheInterpolation:  "ExpectMustacheInterpolation",
	ExpectVueDirective:           "ExpectVueDirective",
	ExpectSvelteInterpolation:    "ExpectSvelteInterpolation",
	ExpectSvelteAttr:             "ExpectSvelteAttr",
	ExpectSvelteAtTag:            "ExpectSvelteAtTag",
	ExpectSvelteIfBlock:          "ExpectSvelteIfBlock",
	ExpectSvelteElseIfBlock:      "ExpectSvelteElseIfBlock",
	ExpectSvelteBlockEnd:         "ExpectSvelteBlockEnd",
	ExpectSvelteThenBlock:        "ExpectSvelteThenBlock",
	ExpectSvelteCatchBlock:       "ExpectSvelteCatchBlock",
	ExpectSvelteEachBlock:        "ExpectSvelteEachBlock",
	ExpectSvelteKeyBlock:         "ExpectSvelteKeyBlock",
	UnknownSvelteBlock:           "UnknownSvelteBlock",
	ExpectAstroAttr:              "ExpectAstroAttr",
	ExpectAstroExpr:              "ExpectAstroExpr",
	ExpectAstroFrontMatter:       "ExpectAstroFrontMatter",
	ExpectJinjaTag:               "ExpectJinjaTag",
	ExpectJinjaBlockEnd:          "ExpectJinjaBlockEnd",
	ExpectVentoBlockEnd:          "ExpectVentoBlockEnd",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "Unknown"
}

// SyntaxError is the only failure mode a parse can return: a kind plus the
// byte offset into the source where it was first detected.
type SyntaxError struct {
	Kind ErrorKind
	Pos  int
	// Char is set only when Kind == ExpectChar, naming the specific
	// character that was required.
	Char rune
}

func (e *SyntaxError) Error() string {
	if e.Kind == ExpectChar {
		return fmt.Sprintf("expected %q at byte %d", e.Char, e.Pos)
	}
	return fmt.Sprintf("%s at byte %d", e.Kind, e.Pos)
}

func expectChar(c rune, pos int) *SyntaxError {
	return &SyntaxError{Kind: ExpectChar, Pos: pos, Char: c}
}
