package provider

import (
	"fmt"
	"go/ast"
	"strconv"
	"strings"

	"github.com/latticehq/gatewaygen/ir"
)

// annotationPrefix marks generator annotations in doc comments.
const annotationPrefix = "gateway:"

// annotation is one parsed //gateway: line.
type annotation struct {
	// kind is the word after the prefix: "object", "input", "interface",
	// "enum", "union", "directive", "query", "mutation", "subscription".
	kind string

	// rest is the remainder of the line, trimmed.
	rest string
}

// parseAnnotations extracts //gateway: lines from a doc comment.
func parseAnnotations(doc *ast.CommentGroup) []annotation {
	if doc == nil {
		return nil
	}
	var out []annotation
	for _, c := range doc.List {
		text := strings.TrimPrefix(c.Text, "//")
		text = strings.TrimSpace(text)
		if !strings.HasPrefix(text, annotationPrefix) {
			continue
		}
		text = strings.TrimPrefix(text, annotationPrefix)
		kind, rest, _ := strings.Cut(text, " ")
		out = append(out, annotation{kind: kind, rest: strings.TrimSpace(rest)})
	}
	return out
}

// docText returns the human description from a doc comment: everything
// except annotation lines and the Deprecated paragraph.
func docText(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	var lines []string
	for _, c := range doc.List {
		text := strings.TrimPrefix(c.Text, "//")
		text = strings.TrimSpace(text)
		if strings.HasPrefix(text, annotationPrefix) || strings.HasPrefix(text, "Deprecated:") {
			continue
		}
		lines = append(lines, text)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// deprecation returns the reason from a "Deprecated:" doc line, following
// the standard Go convention. Nil when the symbol is not deprecated.
func deprecation(doc *ast.CommentGroup) *string {
	if doc == nil {
		return nil
	}
	for _, c := range doc.List {
		text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
		if rest, ok := strings.CutPrefix(text, "Deprecated:"); ok {
			reason := strings.TrimSpace(rest)
			return &reason
		}
	}
	return nil
}

// parseOptions parses space-separated key=value pairs from an annotation
// remainder, e.g. "datasource=ProductsLambda arn=arn:aws:...".
func parseOptions(rest string) map[string]string {
	opts := make(map[string]string)
	for _, field := range strings.Fields(rest) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			opts[field] = ""
			continue
		}
		opts[key] = value
	}
	return opts
}

// parseDirective parses a directive application of the form
//
//	@name(arg: value, other: [a, b])
//
// Values may be bare words, quoted strings, integers, booleans, or a
// bracketed list of any of those (rendered as a string list).
func parseDirective(s string) (ir.AppliedDirective, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "@") {
		return ir.AppliedDirective{}, fmt.Errorf("directive must start with '@': %q", s)
	}
	s = s[1:]

	name, rest, hasArgs := strings.Cut(s, "(")
	name = strings.TrimSpace(name)
	if name == "" {
		return ir.AppliedDirective{}, fmt.Errorf("directive has no name: %q", s)
	}
	d := ir.AppliedDirective{Name: name}
	if !hasArgs {
		return d, nil
	}

	rest = strings.TrimSpace(rest)
	if !strings.HasSuffix(rest, ")") {
		return ir.AppliedDirective{}, fmt.Errorf("directive %s: unterminated argument list", name)
	}
	rest = strings.TrimSuffix(rest, ")")

	for _, part := range splitTopLevel(rest) {
		argName, argValue, ok := strings.Cut(part, ":")
		if !ok {
			return ir.AppliedDirective{}, fmt.Errorf("directive %s: argument %q is not name: value", name, part)
		}
		value, err := parseDirectiveValue(strings.TrimSpace(argValue))
		if err != nil {
			return ir.AppliedDirective{}, fmt.Errorf("directive %s: %w", name, err)
		}
		d.Args = append(d.Args, ir.DirectiveArgument{
			Name:  strings.TrimSpace(argName),
			Value: value,
		})
	}
	return d, nil
}

// splitTopLevel splits on commas that are not inside brackets.
func splitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(s[start:]); tail != "" {
		parts = append(parts, tail)
	}
	return parts
}

func parseDirectiveValue(s string) (any, error) {
	if s == "" {
		return nil, fmt.Errorf("empty argument value")
	}
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return nil, fmt.Errorf("unterminated list: %q", s)
		}
		inner := strings.TrimSpace(s[1 : len(s)-1])
		var list []string
		if inner != "" {
			for _, item := range splitTopLevel(inner) {
				list = append(list, unquote(item))
			}
		}
		return list, nil
	}
	if s == "true" || s == "false" {
		return s == "true", nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	return unquote(s), nil
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}
	return s
}

// fieldTag holds the parsed gateway struct tag of one field.
type fieldTag struct {
	skip       bool
	name       string
	nonNull    bool
	nullable   bool
	scalar     string
	deprecated *string
}

// parseFieldTag parses a `gateway:"..."` struct tag value. Options are
// comma-separated: "-", name=x, nonnull, nullable, scalar=Name,
// deprecated=reason. The deprecated reason extends to the end of the tag so
// it may contain commas.
func parseFieldTag(tag string) fieldTag {
	var ft fieldTag
	if tag == "" {
		return ft
	}
	if tag == "-" {
		ft.skip = true
		return ft
	}
	rest := tag
	for rest != "" {
		var part string
		part, rest, _ = strings.Cut(rest, ",")
		key, value, _ := strings.Cut(part, "=")
		switch key {
		case "name":
			ft.name = value
		case "nonnull":
			ft.nonNull = true
		case "nullable":
			ft.nullable = true
		case "scalar":
			ft.scalar = value
		case "deprecated":
			reason := value
			if rest != "" {
				reason = value + "," + rest
				rest = ""
			}
			ft.deprecated = &reason
		}
	}
	return ft
}

// lowerFirst lowercases the first rune, turning a Go identifier into a
// schema field name.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
