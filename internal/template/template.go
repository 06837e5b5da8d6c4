// Package template renders boilerplate templates with $name placeholders.
//
// Placeholders come in two spellings, $name and ${name}, which are treated
// identically; $$ escapes a literal dollar sign. Substitution runs in one of
// two modes: strict mode fails on the first unresolved placeholder with an
// error naming it, safe mode leaves unresolved placeholders verbatim in the
// output. Two variables, current_date and current_year, are always
// resolvable; they are injected from the system clock whenever the caller
// does not supply them.
package template

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Vars maps placeholder names to substitution values. Values are
// stringified with fmt.Sprint, so anything printable works.
type Vars map[string]any

// Error reports a missing variable during strict substitution. The message
// enumerates every available variable name to aid debugging.
type Error struct {
	Missing   string
	Available []string
}

func (e *Error) Error() string {
	return fmt.Sprintf(
		"template is missing required variable %q. Available variables: %s",
		e.Missing, strings.Join(e.Available, ", "),
	)
}

// placeholderRe matches a $ followed by an escape, a braced name, or a bare
// name. A match with an empty group is a malformed placeholder ($ followed
// by none of those).
var placeholderRe = regexp.MustCompile(`\$(\$|\{[A-Za-z_][A-Za-z0-9_]*\}|[A-Za-z_][A-Za-z0-9_]*)?`)

// Render substitutes vars into tmpl.
//
// In strict mode (safe=false) a missing variable returns an *Error; a
// malformed placeholder silently degrades the whole render to safe
// substitution instead of failing. In safe mode unresolved and malformed
// placeholders are left untouched. Render has no side effects beyond
// reading the wall clock for default variables.
func Render(tmpl string, vars Vars, safe bool) (string, error) {
	merged := withDefaults(vars)

	if safe {
		return safeSubstitute(tmpl, merged), nil
	}

	var sb strings.Builder
	last := 0
	for _, m := range placeholderRe.FindAllStringSubmatchIndex(tmpl, -1) {
		sb.WriteString(tmpl[last:m[0]])
		last = m[1]

		if m[2] < 0 {
			// Bare $ with nothing substitutable after it. Malformed
			// placeholders never crash a render; fall back to safe
			// substitution for the whole template.
			return safeSubstitute(tmpl, merged), nil
		}

		token := tmpl[m[2]:m[3]]
		if token == "$" {
			sb.WriteString("$")
			continue
		}

		name := strings.Trim(token, "{}")
		value, ok := merged[name]
		if !ok {
			return "", &Error{Missing: name, Available: sortedNames(merged)}
		}
		sb.WriteString(value)
	}
	sb.WriteString(tmpl[last:])
	return sb.String(), nil
}

// safeSubstitute replaces known placeholders and leaves everything else,
// including malformed ones, exactly as written.
func safeSubstitute(tmpl string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		token := match[1:]
		switch {
		case token == "$":
			return "$"
		case token == "":
			return match
		}
		if value, ok := vars[strings.Trim(token, "{}")]; ok {
			return value
		}
		return match
	})
}

// withDefaults stringifies vars and injects current_date and current_year
// when absent. Caller-supplied values are never overridden.
func withDefaults(vars Vars) map[string]string {
	merged := make(map[string]string, len(vars)+2)
	for name, value := range vars {
		merged[name] = fmt.Sprint(value)
	}

	now := time.Now()
	if _, ok := merged["current_date"]; !ok {
		merged["current_date"] = now.Format("2006-01-02")
	}
	if _, ok := merged["current_year"]; !ok {
		merged["current_year"] = now.Format("2006")
	}
	return merged
}

// TitleCase capitalizes the first letter of each space-separated word.
// Generators use it to build display names and titles for template
// variables ("my repo" -> "My Repo").
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func sortedNames(vars map[string]string) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
