package style

import (
	"regexp"
	"strings"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	varFallback   = regexp.MustCompile(`var\(--,\s*([^)]+)\)`)
	propertyToken = regexp.MustCompile(`\b[a-zA-Z]+:`)
)

// DashCase converts a camelCase property name to dash-case:
// "paddingLeft" -> "padding-left". Dash-cased names pass through.
func DashCase(name string) string {
	return strings.ToLower(camelBoundary.ReplaceAllString(name, "$1-$2"))
}

// Declaration renders one entry as "name: value;".
func Declaration(name, value string) string {
	return name + ": " + value + ";"
}

// Declarations renders every entry of m in order.
func Declarations(m *Map) []string {
	out := make([]string, 0, m.Len())
	m.Each(func(name, value string) {
		out = append(out, Declaration(name, value))
	})
	return out
}

// StripVarFallback replaces every nameless host variable reference with its
// literal fallback: "var(--, #FFF)" -> "#FFF".
func StripVarFallback(text string) string {
	return varFallback.ReplaceAllString(text, "$1")
}

// Normalize is the stylesheet post-pass: it strips nameless variable
// references and dash-cases every alphabetic token that directly precedes a
// colon.
func Normalize(text string) string {
	text = StripVarFallback(text)
	return propertyToken.ReplaceAllStringFunc(text, func(tok string) string {
		return DashCase(tok[:len(tok)-1]) + ":"
	})
}
