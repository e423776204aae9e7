package keycase

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	wordBoundary    = regexp.MustCompile(`([a-z\d])([A-Z])`)
	underscoreRun   = regexp.MustCompile(`_+[a-z]`)
	lineStart       = regexp.MustCompile(`(?m)^.`)
	trailingUnder   = regexp.MustCompile(`(?m)_$`)
)

// ToSnake converts a camelCase or PascalCase token to snake_case.
// Acronym runs are split before their last capital, hyphens become
// underscores and the result is lowercased. Leading and trailing
// underscores are kept.
// Example: "taskTitle" -> "task_title"
// Example: "HTTPServer" -> "http_server"
func ToSnake(s string) string {
	if s == "" {
		return ""
	}
	s = acronymBoundary.ReplaceAllString(s, "${1}_${2}")
	s = wordBoundary.ReplaceAllString(s, "${1}_${2}")
	s = strings.ReplaceAll(s, "-", "_")
	// cases.Caser keeps state, so one is built per call.
	return cases.Lower(language.Und).String(s)
}

// ToCamel converts a snake_case token to camelCase.
// Each run of underscores before a lowercase ASCII letter is dropped and
// the letter is uppercased. The first character is lowercased and one
// trailing underscore is removed.
// Example: "task_title" -> "taskTitle"
// Example: "value_" -> "value"
func ToCamel(s string) string {
	if s == "" {
		return ""
	}
	s = underscoreRun.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(strings.TrimLeft(m, "_"))
	})
	s = replaceFirst(lineStart, s, func(m string) string {
		return cases.Lower(language.Und).String(m)
	})
	return replaceFirst(trailingUnder, s, func(string) string { return "" })
}

// replaceFirst rewrites only the leftmost match of re in s.
func replaceFirst(re *regexp.Regexp, s string, repl func(string) string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl(s[loc[0]:loc[1]]) + s[loc[1]:]
}

// Convention is a key naming convention.
type Convention int

// Supported conventions.
const (
	Snake Convention = iota + 1
	Camel
)

func (c Convention) String() string {
	switch c {
	case Snake:
		return "snake"
	case Camel:
		return "camel"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// Convert rewrites one key to the convention. Unknown conventions return
// the key unchanged.
func (c Convention) Convert(s string) string {
	switch c {
	case Snake:
		return ToSnake(s)
	case Camel:
		return ToCamel(s)
	default:
		return s
	}
}

// ParseConvention parses "snake" or "camel", ignoring case.
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "snake", "snake_case":
		return Snake, nil
	case "camel", "camelcase":
		return Camel, nil
	default:
		return 0, fmt.Errorf("keycase: unknown convention %q", s)
	}
}
