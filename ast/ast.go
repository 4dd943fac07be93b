// Package ast defines the tree a parse produces: a Root holding an ordered
// sequence of Nodes, each borrowing string slices from the original source
// text. Nothing in this package allocates a copy of source text; every
// string field is a substring of the input handed to parser.Parse, and the
// tree's lifetime is bounded by that input's.
package ast

import "github.com/markuplang/parse/internal/loc"

// NodeKind discriminates the concrete type behind a Node.
type NodeKind uint8

const (
	KindTextNode NodeKind = iota
	KindElement
	KindComment
	KindDoctype
	KindVueInterpolation
	KindSvelteInterpolation
	KindSvelteIfBlock
	KindSvelteEachBlock
	KindSvelteAwaitBlock
	KindSvelteKeyBlock
	KindSvelteAtTag
	KindAstroExpr
	KindAstroFrontMatter
	KindJinjaInterpolation
	KindJinjaTag
	KindJinjaBlock
	KindJinjaComment
	KindVentoInterpolation
	KindVentoTag
	KindVentoBlock
	KindVentoComment
	KindVentoEval
)

var nodeKindNames = [...]string{
	KindTextNode:           "TextNode",
	KindElement:            "Element",
	KindComment:            "Comment",
	KindDoctype:            "Doctype",
	KindVueInterpolation:   "VueInterpolation",
	KindSvelteInterpolation: "SvelteInterpolation",
	KindSvelteIfBlock:      "SvelteIfBlock",
	KindSvelteEachBlock:    "SvelteEachBlock",
	KindSvelteAwaitBlock:   "SvelteAwaitBlock",
	KindSvelteKeyBlock:     "SvelteKeyBlock",
	KindSvelteAtTag:        "SvelteAtTag",
	KindAstroExpr:          "AstroExpr",
	KindAstroFrontMatter:   "AstroFrontMatter",
	KindJinjaInterpolation: "JinjaInterpolation",
	KindJinjaTag:           "JinjaTag",
	KindJinjaBlock:         "JinjaBlock",
	KindJinjaComment:       "JinjaComment",
	KindVentoInterpolation: "VentoInterpolation",
	KindVentoTag:           "VentoTag",
	KindVentoBlock:         "VentoBlock",
	KindVentoComment:       "VentoComment",
	KindVentoEval:          "VentoEval",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// Node is any construct that can appear in a Root's or an Element's
// children. It is a tagged union implemented as a Go interface rather than
// a sum type: every concrete node type below implements it, and a type
// switch on Kind() (or a Go type switch on the Node itself) recovers the
// concrete payload.
type Node interface {
	Kind() NodeKind
}

// Root is the result of a successful parse: the ordered top-level nodes of
// the document.
type Root struct {
	Children []Node
}

// TextNode is a contiguous run of source text that contains no construct
// boundary for the active dialect. LineBreaks always equals the number of
// '\n' bytes in Raw.
type TextNode struct {
	Raw        string
	LineBreaks int
	Range      loc.Range
}

func (TextNode) Kind() NodeKind { return KindTextNode }

// Element is an HTML-like tag, shared verbatim across all six dialects;
// only its Attrs vary in shape per dialect (see Attribute).
type Element struct {
	TagName           string
	Attrs             []Attribute
	FirstAttrSameLine bool
	Children          []Node
	SelfClosing       bool
	VoidElement       bool
	Range             loc.Range
}

func (Element) Kind() NodeKind { return KindElement }

// Comment is the text strictly between "<!--" and "-->".
type Comment struct {
	Raw   string
	Range loc.Range
}

func (Comment) Kind() NodeKind { return KindComment }

// Doctype is a payload-less `<!DOCTYPE html>` marker.
type Doctype struct {
	Range loc.Range
}

func (Doctype) Kind() NodeKind { return KindDoctype }

// VueInterpolation is Vue's `{{ expr }}` mustache interpolation.
type VueInterpolation struct {
	Expr  string
	Range loc.Range
}

func (VueInterpolation) Kind() NodeKind { return KindVueInterpolation }

// SvelteInterpolation is Svelte's `{expr}` inline expression.
type SvelteInterpolation struct {
	Expr  string
	Range loc.Range
}

func (SvelteInterpolation) Kind() NodeKind { return KindSvelteInterpolation }

// SvelteElseIf is one `{:else if expr}` branch of a SvelteIfBlock.
type SvelteElseIf struct {
	Expr     string
	Children []Node
}

// SvelteIfBlock is `{#if expr}...{:else if expr}...{:else}...{/if}`.
type SvelteIfBlock struct {
	Expr         string
	Children     []Node
	ElseIfBlocks []SvelteElseIf
	ElseChildren []Node // nil when no `{:else}` branch is present
	Range        loc.Range
}

func (SvelteIfBlock) Kind() NodeKind { return KindSvelteIfBlock }

// SvelteEachBlock is `{#each expr as binding, index (key)}...{:else}...{/each}`.
type SvelteEachBlock struct {
	Expr         string
	Binding      string
	Index        *string
	Key          *string
	Children     []Node
	ElseChildren []Node // nil when no `{:else}` branch is present
	Range        loc.Range
}

func (SvelteEachBlock) Kind() NodeKind { return KindSvelteEachBlock }

// SvelteThenBlock is an explicit `{:then binding}` section of an await block.
type SvelteThenBlock struct {
	Binding  string
	Children []Node
}

// SvelteCatchBlock is an explicit `{:catch binding?}` section of an await block.
type SvelteCatchBlock struct {
	Binding  *string
	Children []Node
}

// SvelteAwaitBlock is `{#await expr [then binding] [catch binding]}...{/await}`,
// heap-indirected (used behind a pointer in Node) because its optional
// Then/Catch sub-blocks would otherwise inflate every other node variant's
// size.
type SvelteAwaitBlock struct {
	Expr         string
	ThenBinding  *string
	CatchBinding *string
	Children     []Node
	ThenBlock    *SvelteThenBlock
	CatchBlock   *SvelteCatchBlock
	Range        loc.Range
}

func (*SvelteAwaitBlock) Kind() NodeKind { return KindSvelteAwaitBlock }

// SvelteKeyBlock is `{#key expr}...{/key}`.
type SvelteKeyBlock struct {
	Expr     string
	Children []Node
	Range    loc.Range
}

func (SvelteKeyBlock) Kind() NodeKind { return KindSvelteKeyBlock }

// SvelteAtTag is `{@name expr}`, e.g. `{@html expr}` or `{@const expr}`.
type SvelteAtTag struct {
	Name  string
	Expr  string
	Range loc.Range
}

func (SvelteAtTag) Kind() NodeKind { return KindSvelteAtTag }

// AstroExprChildKind discriminates AstroExprChild's payload.
type AstroExprChildKind uint8

const (
	AstroExprScript AstroExprChildKind = iota
	AstroExprTemplate
)

// AstroExprChild is one alternating segment of an AstroExpr: either a raw
// script fragment or a run of template (markup) children. Within a single
// AstroExpr.Children, no two consecutive entries share a Kind.
type AstroExprChild struct {
	Kind     AstroExprChildKind
	Script   string // valid when Kind == AstroExprScript
	Template []Node // valid when Kind == AstroExprTemplate
}

// AstroExpr is Astro's `{ ...script... <tag>...</tag> ...script... }`
// braced expression, which may embed template markup inline.
type AstroExpr struct {
	Children []AstroExprChild
	Range    loc.Range
}

func (AstroExpr) Kind() NodeKind { return KindAstroExpr }

// AstroFrontMatter is the text strictly between an Astro document's
// opening and closing `---` fences.
type AstroFrontMatter struct {
	Raw   string
	Range loc.Range
}

func (AstroFrontMatter) Kind() NodeKind { return KindAstroFrontMatter }

// JinjaInterpolation is Jinja's `{{ expr }}` mustache interpolation.
type JinjaInterpolation struct {
	Expr  string
	Range loc.Range
}

func (JinjaInterpolation) Kind() NodeKind { return KindJinjaInterpolation }

// JinjaTag is the text between `{%` and `%}`, stored verbatim (including
// any leading `+`/`-` whitespace-control markers and surrounding spaces).
type JinjaTag struct {
	Content string
	Range   loc.Range
}

func (JinjaTag) Kind() NodeKind { return KindJinjaTag }

// JinjaTagOrChildrenKind discriminates JinjaTagOrChildren's payload.
type JinjaTagOrChildrenKind uint8

const (
	JinjaBodyTag JinjaTagOrChildrenKind = iota
	JinjaBodyChildren
)

// JinjaTagOrChildren is one element of a JinjaBlock's Body: either a `{% %}`
// tag (an opener, a closer, or an interleaved branch tag like `elif`) or a
// run of child nodes between two such tags.
type JinjaTagOrChildren struct {
	Kind     JinjaTagOrChildrenKind
	Tag      JinjaTag
	Children []Node
}

// JinjaBlock is a paired `{% tag %}...{% endtag %}` construct. Body's first
// element is always the opener tag and its last element is always the
// closer; `if`/`for` blocks may also interleave `elif`/`elseif`/`else` tags
// between runs of children.
type JinjaBlock struct {
	Body  []JinjaTagOrChildren
	Range loc.Range
}

func (JinjaBlock) Kind() NodeKind { return KindJinjaBlock }

// JinjaComment is the text strictly between `{#` and `#}`.
type JinjaComment struct {
	Raw   string
	Range loc.Range
}

func (JinjaComment) Kind() NodeKind { return KindJinjaComment }

// VentoInterpolation is a Vento `{{ expr }}` whose leading token is not a
// recognised block/tag keyword.
type VentoInterpolation struct {
	Expr  string
	Range loc.Range
}

func (VentoInterpolation) Kind() NodeKind { return KindVentoInterpolation }

// VentoTag is the raw text inside a standalone Vento `{{ tag }}`, including
// closer tags like `{{ /if }}` when they appear inside a VentoBlock's Body.
type VentoTag struct {
	Tag   string
	Range loc.Range
}

func (VentoTag) Kind() NodeKind { return KindVentoTag }

// VentoTagOrChildrenKind discriminates VentoTagOrChildren's payload.
type VentoTagOrChildrenKind uint8

const (
	VentoBodyTag VentoTagOrChildrenKind = iota
	VentoBodyChildren
)

// VentoTagOrChildren is one element of a VentoBlock's Body, mirroring
// JinjaTagOrChildren for Vento's `{{ tag }}...{{ /tag }}` blocks.
type VentoTagOrChildren struct {
	Kind     VentoTagOrChildrenKind
	Tag      VentoTag
	Children []Node
}

// VentoBlock is a paired `{{ tag }}...{{ /tag }}` construct (`for`, `if`,
// `layout`, `set`, `export`, `function`, and the `async function`/`export
// function` spellings). `if` supports a single interleaved `else` branch.
type VentoBlock struct {
	Body  []VentoTagOrChildren
	Range loc.Range
}

func (VentoBlock) Kind() NodeKind { return KindVentoBlock }

// VentoComment is a Vento `{{# comment #}}`.
type VentoComment struct {
	Raw   string
	Range loc.Range
}

func (VentoComment) Kind() NodeKind { return KindVentoComment }

// VentoEval is a Vento `{{> expression }}` raw evaluation tag.
type VentoEval struct {
	Raw   string
	Range loc.Range
}

func (VentoEval) Kind() NodeKind { return KindVentoEval }

// AttributeKind discriminates Attribute's concrete type.
type AttributeKind uint8

const (
	AttrNative AttributeKind = iota
	AttrVueDirective
	AttrSvelte
	AttrAstro
)

// Attribute is any of the four attribute shapes an Element can carry. Which
// shapes are reachable depends on dialect (see the attribute dispatcher in
// package parser).
type Attribute interface {
	AttributeKind() AttributeKind
}

// NativeAttribute is a plain HTML attribute, with or without a value.
type NativeAttribute struct {
	Name  string
	Value *string
	Range loc.Range
}

func (NativeAttribute) AttributeKind() AttributeKind { return AttrNative }

// VueDirective is a Vue `v-*`/`:`/`@`/`#` attribute.
type VueDirective struct {
	Name            string
	ArgAndModifiers *string
	Value           *string
	Range           loc.Range
}

func (VueDirective) AttributeKind() AttributeKind { return AttrVueDirective }

// SvelteAttribute is a Svelte `name={expr}` attribute or its `{expr}`
// shorthand form (Name is nil for the shorthand).
type SvelteAttribute struct {
	Name  *string
	Expr  string
	Range loc.Range
}

func (SvelteAttribute) AttributeKind() AttributeKind { return AttrSvelte }

// AstroAttribute is an Astro `name={expr}` attribute or its `{expr}`
// shorthand form (Name is nil for the shorthand).
type AstroAttribute struct {
	Name  *string
	Expr  string
	Range loc.Range
}

func (AstroAttribute) AttributeKind() AttributeKind { return AttrAstro }
