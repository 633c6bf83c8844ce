package bibfile

import (
	"fmt"
	"strings"
)

// MacroRef names an identifier used in a field value that no @string entry
// defines. The identifier itself is kept as the value text.
type MacroRef struct {
	Key   string
	Field string
	Name  string
}

var monthNames = map[string]string{
	"jan": "January", "feb": "February", "mar": "March",
	"apr": "April", "may": "May", "jun": "June",
	"jul": "July", "aug": "August", "sep": "September",
	"oct": "October", "nov": "November", "dec": "December",
}

// expandValues rewrites BibTeX source so that every field value is a single
// literal. @string macros, month abbreviations and # concatenation are
// evaluated here; braces inside quoted values are preserved. @string,
// @comment and @preamble entries and text outside entries are dropped.
// Entries without a citation key are counted in report and dropped.
func expandValues(src string, report *ParseReport) (string, error) {
	e := &expander{src: src, macros: make(map[string]string), report: report}
	for {
		at := strings.IndexByte(e.src[e.pos:], '@')
		if at < 0 {
			break
		}
		e.pos += at + 1
		if err := e.entry(); err != nil {
			return "", err
		}
	}
	return e.out.String(), nil
}

// fieldAliases renames fields the downstream parser reads as entry keywords.
// toRecord maps them back.
var fieldAliases = map[string]string{
	"comment":  "bibmerge.comment",
	"preamble": "bibmerge.preamble",
	"string":   "bibmerge.string",
}

type expander struct {
	src    string
	pos    int
	macros map[string]string
	report *ParseReport
	out    strings.Builder
}

type expandedField struct {
	name  string
	value string
}

func (e *expander) entry() error {
	e.skipSpace()
	kind := e.ident()
	if kind == "" {
		return nil
	}
	e.skipSpace()
	if e.eof() {
		return nil
	}
	open := e.src[e.pos]
	if open != '{' && open != '(' {
		return nil
	}
	e.pos++
	closer := byte('}')
	if open == '(' {
		closer = ')'
	}

	switch strings.ToLower(kind) {
	case "comment", "preamble":
		return e.skipBody(kind, closer)
	case "string":
		return e.stringEntry(closer)
	}
	return e.regularEntry(kind, closer)
}

// skipBody consumes a balanced entry body without interpreting it.
func (e *expander) skipBody(kind string, closer byte) error {
	start := e.pos
	depth := 0
	for ; !e.eof(); e.pos++ {
		switch c := e.src[e.pos]; {
		case c == closer && depth == 0:
			e.pos++
			return nil
		case c == '{':
			depth++
		case c == '}':
			depth--
		}
	}
	return fmt.Errorf("@%s at line %d: unterminated entry", strings.ToLower(kind), e.lineAt(start))
}

func (e *expander) stringEntry(closer byte) error {
	e.skipSpace()
	name := e.ident()
	if name == "" {
		return fmt.Errorf("@string at line %d: missing macro name", e.line())
	}
	e.skipSpace()
	if !e.consume('=') {
		return fmt.Errorf("@string %s at line %d: expected '='", name, e.line())
	}
	value, err := e.value("@string", name)
	if err != nil {
		return err
	}
	e.skipSpace()
	if !e.consume(closer) {
		return fmt.Errorf("@string %s at line %d: expected %q", name, e.line(), closer)
	}
	e.macros[strings.ToLower(name)] = value
	return nil
}

func (e *expander) regularEntry(kind string, closer byte) error {
	start := e.pos
	for !e.eof() && e.src[e.pos] != ',' && e.src[e.pos] != closer {
		e.pos++
	}
	if e.eof() {
		return fmt.Errorf("@%s at line %d: unterminated entry", kind, e.lineAt(start))
	}
	key := strings.TrimSpace(e.src[start:e.pos])
	label := key
	if label == "" {
		label = fmt.Sprintf("@%s at line %d", kind, e.lineAt(start))
	}

	var fields []expandedField
	for {
		e.skipSpace()
		if e.eof() {
			return fmt.Errorf("entry %s: unterminated entry", label)
		}
		if e.consume(closer) {
			break
		}
		if e.consume(',') {
			continue
		}
		name := e.ident()
		if name == "" {
			return fmt.Errorf("entry %s at line %d: expected field name, found %q", label, e.line(), e.src[e.pos])
		}
		e.skipSpace()
		if !e.consume('=') {
			return fmt.Errorf("entry %s field %s at line %d: expected '='", label, name, e.line())
		}
		value, err := e.value(label, name)
		if err != nil {
			return err
		}
		fields = append(fields, expandedField{name: name, value: value})

		e.skipSpace()
		if e.consume(closer) {
			break
		}
		if !e.consume(',') {
			return fmt.Errorf("entry %s field %s at line %d: expected ',' or %q after value", label, name, e.line(), closer)
		}
	}

	if key == "" {
		e.report.Unkeyed++
		return nil
	}
	fmt.Fprintf(&e.out, "@%s{%s,\n", kind, key)
	for _, f := range fields {
		name := f.name
		if alias, ok := fieldAliases[strings.ToLower(name)]; ok {
			name = alias
		}
		fmt.Fprintf(&e.out, "  %s = %s,\n", name, literal(f.value))
	}
	e.out.WriteString("}\n\n")
	return nil
}

// value evaluates a field expression: braced, quoted, numeric or macro parts
// joined by #.
func (e *expander) value(key, field string) (string, error) {
	var b strings.Builder
	for {
		e.skipSpace()
		if e.eof() {
			return "", fmt.Errorf("entry %s field %s: unexpected end of input", key, field)
		}
		switch c := e.src[e.pos]; c {
		case '{':
			e.pos++
			part, err := e.braced(key, field)
			if err != nil {
				return "", err
			}
			b.WriteString(part)
		case '"':
			e.pos++
			part, err := e.quoted(key, field)
			if err != nil {
				return "", err
			}
			b.WriteString(part)
		default:
			name := e.ident()
			if name == "" {
				return "", fmt.Errorf("entry %s field %s at line %d: unexpected %q", key, field, e.line(), c)
			}
			b.WriteString(e.lookup(key, field, name))
		}
		e.skipSpace()
		if !e.consume('#') {
			return b.String(), nil
		}
	}
}

func (e *expander) braced(key, field string) (string, error) {
	start := e.pos
	depth := 1
	for ; !e.eof(); e.pos++ {
		switch e.src[e.pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				part := e.src[start:e.pos]
				e.pos++
				return part, nil
			}
		}
	}
	return "", fmt.Errorf("entry %s field %s at line %d: unbalanced braces", key, field, e.lineAt(start))
}

func (e *expander) quoted(key, field string) (string, error) {
	start := e.pos
	depth := 0
	for ; !e.eof(); e.pos++ {
		switch e.src[e.pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return "", fmt.Errorf("entry %s field %s at line %d: unbalanced braces", key, field, e.line())
			}
		case '"':
			if depth > 0 || (e.pos > start && e.src[e.pos-1] == '\\') {
				continue
			}
			part := e.src[start:e.pos]
			e.pos++
			return part, nil
		}
	}
	return "", fmt.Errorf("entry %s field %s at line %d: unterminated quoted value", key, field, e.lineAt(start))
}

func (e *expander) lookup(key, field, name string) string {
	if isNumber(name) {
		return name
	}
	lower := strings.ToLower(name)
	if value, ok := e.macros[lower]; ok {
		return value
	}
	if month, ok := monthNames[lower]; ok {
		return month
	}
	e.report.UndefinedMacros = append(e.report.UndefinedMacros, MacroRef{Key: key, Field: field, Name: name})
	return name
}

func (e *expander) ident() string {
	start := e.pos
	for !e.eof() && isIdentByte(e.src[e.pos]) {
		e.pos++
	}
	return e.src[start:e.pos]
}

func (e *expander) skipSpace() {
	for !e.eof() && isSpaceByte(e.src[e.pos]) {
		e.pos++
	}
}

func (e *expander) consume(c byte) bool {
	if e.eof() || e.src[e.pos] != c {
		return false
	}
	e.pos++
	return true
}

func (e *expander) eof() bool {
	return e.pos >= len(e.src)
}

func (e *expander) line() int {
	return e.lineAt(e.pos)
}

func (e *expander) lineAt(pos int) int {
	if pos > len(e.src) {
		pos = len(e.src)
	}
	return strings.Count(e.src[:pos], "\n") + 1
}

// literal renders a value for the downstream parser. Values without braces
// or quotes are emitted quoted, which is lossless and lets them contain a
// bare @; everything else is emitted braced so inner groups survive.
func literal(value string) string {
	if !strings.ContainsAny(value, "{}\"") {
		return `"` + value + `"`
	}
	return "{" + value + "}"
}

func isIdentByte(c byte) bool {
	if isSpaceByte(c) {
		return false
	}
	return !strings.ContainsRune("\"#%'(),={}@", rune(c))
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
