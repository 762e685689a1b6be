package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Split cuts s immediately before every ASCII uppercase letter and before
// every '-' or '_', lowercases the segments and drops the delimiters.
// Empty segments are discarded. When nothing survives (symbol-only input
// such as "--") the lowercased input is returned as the single part.
func Split(s string) []string {
	var segments []string
	last := 0
	for i := 0; i < len(s); i++ {
		if !isSplitPoint(s[i]) {
			continue
		}
		if i > last {
			segments = append(segments, s[last:i])
		}
		last = i
	}
	segments = append(segments, s[last:])

	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		p := strings.ToLower(seg)
		p = strings.TrimPrefix(p, "-")
		p = strings.TrimPrefix(p, "_")
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}

	if len(parts) == 0 {
		return []string{strings.ToLower(s)}
	}
	return parts
}

func isSplitPoint(c byte) bool {
	return ('A' <= c && c <= 'Z') || c == '-' || c == '_'
}

// Kebab joins parts with '-'.
func Kebab(parts []string) string {
	return strings.Join(parts, "-")
}

// Snake joins parts with '_'.
func Snake(parts []string) string {
	return strings.Join(parts, "_")
}

// Pascal title-cases every part and concatenates them.
func Pascal(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(Title(p))
	}
	return b.String()
}

// Camel is Pascal with its first letter lowercased.
func Camel(parts []string) string {
	pascal := Pascal(parts)
	r, size := utf8.DecodeRuneInString(pascal)
	if r == utf8.RuneError {
		return pascal
	}
	return string(unicode.ToLower(r)) + pascal[size:]
}

// Title capitalizes the first letter of word and lowercases the rest.
// A Caser keeps internal state, so one is created per call.
func Title(word string) string {
	return cases.Title(language.Und).String(word)
}
