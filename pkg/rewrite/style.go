// Package rewrite converts React-flavored markup in HTML examples to plain HTML.
package rewrite

import (
	"regexp"
	"strings"
)

// styleObjectPattern matches style={{...}}. The body may not contain '}', so a
// body with a nested brace never matches at that position.
var styleObjectPattern = regexp.MustCompile(`style=\{\{([^}]*)\}\}`)

var (
	camelBoundary     = regexp.MustCompile(`([a-z])([A-Z])`)
	singleQuotedValue = regexp.MustCompile(`:[[:space:]]*'([^']*)'`)
	doubleQuotedValue = regexp.MustCompile(`:[[:space:]]*"([^"]*)"`)
	propertySeparator = regexp.MustCompile(`,[[:space:]]*`)
)

// StyleRule is one stage of the style body conversion.
type StyleRule struct {
	Name  string
	Apply func(string) string
}

// StyleRules returns the ordered stages applied to a style object body
// before it is finalized.
func StyleRules() []StyleRule {
	return []StyleRule{
		{Name: "hyphenate", Apply: HyphenateCamelCase},
		{Name: "unquote-single", Apply: UnquoteSingle},
		{Name: "unquote-double", Apply: UnquoteDouble},
		{Name: "separators", Apply: CommasToSemicolons},
		{Name: "strip-quotes", Apply: StripSingleQuotes},
	}
}

// HyphenateCamelCase inserts a hyphen between a lowercase ASCII letter and a
// following uppercase one. The uppercase letter is kept as is, so
// backgroundColor becomes background-Color.
func HyphenateCamelCase(s string) string {
	return camelBoundary.ReplaceAllString(s, "${1}-${2}")
}

// UnquoteSingle turns `key: 'value'` into `key: value`.
func UnquoteSingle(s string) string {
	return singleQuotedValue.ReplaceAllString(s, ": ${1}")
}

// UnquoteDouble turns `key: "value"` into `key: value`.
func UnquoteDouble(s string) string {
	return doubleQuotedValue.ReplaceAllString(s, ": ${1}")
}

// CommasToSemicolons replaces each comma and any whitespace after it with "; ".
func CommasToSemicolons(s string) string {
	return propertySeparator.ReplaceAllLiteralString(s, "; ")
}

// StripSingleQuotes removes every remaining single quote.
func StripSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", "")
}

// finalizeDeclarations trims the body and makes it end in exactly one ';'.
func finalizeDeclarations(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ";")
	return s + ";"
}

// ConvertStyleBody converts the contents of a style object literal into a
// CSS declaration list.
func ConvertStyleBody(body string) string {
	for _, rule := range StyleRules() {
		body = rule.Apply(body)
	}
	return finalizeDeclarations(body)
}

// ConvertStyleObjects replaces every style={{...}} in s with an equivalent
// style="..." attribute. It returns the new text and the number of objects
// converted.
func ConvertStyleObjects(s string) (string, int) {
	matches := styleObjectPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, 0
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		b.WriteString(`style="`)
		b.WriteString(ConvertStyleBody(s[m[2]:m[3]]))
		b.WriteString(`"`)
		last = m[1]
	}
	b.WriteString(s[last:])

	return b.String(), len(matches)
}
