package loc

// DiagnosticCode identifies a non-fatal oddity the parser can report through
// an optional handler, distinct from the hard syntax errors in package
// parser. None of these stop a parse; the grammar always has a silent
// fallback (see parser's end-of-input policy), the code just flags that the
// fallback fired.
type DiagnosticCode int

const (
	ERROR                              DiagnosticCode = 1000
	WARNING                            DiagnosticCode = 2000
	WARNING_UNTERMINATED_HTML_COMMENT  DiagnosticCode = 2001
	WARNING_UNTERMINATED_FRONT_MATTER  DiagnosticCode = 2002
	WARNING_UNTERMINATED_MUSTACHE      DiagnosticCode = 2003
	WARNING_UNTERMINATED_JINJA_TAG     DiagnosticCode = 2004
	WARNING_UNTERMINATED_JINJA_COMMENT DiagnosticCode = 2005
	WARNING_UNTERMINATED_ATTR_VALUE    DiagnosticCode = 2006
	INFO                               DiagnosticCode = 3000
	HINT                               DiagnosticCode = 4000
)
