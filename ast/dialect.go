package ast

import "github.com/iancoleman/strcase"

// Dialect selects which of the six supported grammars a source text is
// parsed as. All dialects share HTML element and attribute syntax; each
// adds its own interpolation, directive, block, comment, or front-matter
// constructs on top.
type Dialect uint8

const (
	Html Dialect = iota
	Vue
	Svelte
	Astro
	Jinja
	Vento
)

var dialectNames = [...]string{
	Html:   "html",
	Vue:    "vue",
	Svelte: "svelte",
	Astro:  "astro",
	Jinja:  "jinja",
	Vento:  "vento",
}

func (d Dialect) String() string {
	if int(d) < len(dialectNames) {
		return dialectNames[d]
	}
	return "unknown"
}

// ParseDialect resolves a host-supplied dialect name (e.g. from a file
// extension, a CLI flag, or a config file) to a Dialect. The name is first
// normalized with strcase.ToSnake, so matching is case-insensitive: "Vue",
// "vue", and "VUE" all resolve to Vue. Multi-word spellings such as
// "vue-html" or "VUE_HTML" normalize to "vue_html", which matches no dialect.
func ParseDialect(name string) (Dialect, bool) {
	switch strcase.ToSnake(name) {
	case "html":
		return Html, true
	case "vue":
		return Vue, true
	case "svelte":
		return Svelte, true
	case "astro":
		return Astro, true
	case "jinja", "jinja2":
		return Jinja, true
	case "vento":
		return Vento, true
	default:
		return 0, false
	}
}
