// Package utils holds helpers shared by call operations: placeholder expansion of configuration templates and
// error wrapping.
package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/greenvulcano/gvesb-s3"
)

// ErrMalformedTemplate is returned when a template opens a placeholder without closing it.
const ErrMalformedTemplate = gvesb.Error("malformed template")

const (
	propertyPrefix = "@{{"
	envPrefix      = "env{{"
	suffix         = "}}"
)

// PropertySource resolves per-message properties by name. *gvesb.Message satisfies it.
type PropertySource interface {
	Property(name string) (string, bool)
}

// Expander resolves the placeholders in a configuration template.
type Expander interface {
	Expand(template string, props PropertySource) (string, error)
}

// ExpanderFunc adapts a plain function to Expander.
type ExpanderFunc func(template string, props PropertySource) (string, error)

// Expand calls f.
func (f ExpanderFunc) Expand(template string, props PropertySource) (string, error) {
	return f(template, props)
}

// PlaceholderExpander expands two placeholder forms:
//
//	@{{NAME}}    the message property NAME
//	env{{NAME}}  the environment variable NAME
//
// A placeholder that cannot be resolved is left in the output verbatim. Resolved values are not expanded again.
type PlaceholderExpander struct {
	// LookupEnv resolves env{{...}} placeholders. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// NewPlaceholderExpander returns a PlaceholderExpander reading the process environment.
func NewPlaceholderExpander() *PlaceholderExpander {
	return &PlaceholderExpander{LookupEnv: os.LookupEnv}
}

// Expand returns template with every resolvable placeholder replaced.
func (e *PlaceholderExpander) Expand(template string, props PropertySource) (string, error) {
	if !strings.Contains(template, "{{") {
		return template, nil
	}

	var b strings.Builder
	rest := template
	for {
		start, prefix := nextPlaceholder(rest)
		if start < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:start])

		body := rest[start+len(prefix):]
		end := strings.Index(body, suffix)
		if end < 0 {
			offset := len(template) - len(rest) + start
			return "", fmt.Errorf("%w: unterminated %s at offset %d", ErrMalformedTemplate, prefix, offset)
		}

		name := body[:end]
		if value, ok := e.resolve(prefix, name, props); ok {
			b.WriteString(value)
		} else {
			b.WriteString(prefix + name + suffix)
		}
		rest = body[end+len(suffix):]
	}
}

func (e *PlaceholderExpander) resolve(prefix, name string, props PropertySource) (string, bool) {
	if name == "" {
		return "", false
	}
	switch prefix {
	case propertyPrefix:
		if props == nil {
			return "", false
		}
		return props.Property(name)
	case envPrefix:
		lookup := e.LookupEnv
		if lookup == nil {
			lookup = os.LookupEnv
		}
		return lookup(name)
	}
	return "", false
}

// nextPlaceholder returns the index and prefix of the earliest placeholder in s, or -1.
func nextPlaceholder(s string) (int, string) {
	idx, found := -1, ""
	for _, p := range []string{propertyPrefix, envPrefix} {
		if i := strings.Index(s, p); i >= 0 && (idx < 0 || i < idx) {
			idx, found = i, p
		}
	}
	return idx, found
}
