// Package sdl renders an IR schema as a schema-definition-language document.
// Rendering is pure and deterministic: types and fields are emitted sorted
// by name, operations sorted by field name, union members in declaration
// order.
package sdl

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/latticehq/gatewaygen/ir"
)

// Render renders the complete SDL document for the schema.
func Render(s *ir.Schema) (string, error) {
	e := &emitter{}
	if err := e.render(s); err != nil {
		return "", err
	}
	return e.buf.String(), nil
}

type emitter struct {
	buf bytes.Buffer
}

func (e *emitter) render(s *ir.Schema) error {
	var blocks []string

	if block := schemaBlock(s.Operations); block != "" {
		blocks = append(blocks, block)
	}

	types := make([]ir.TypeDescriptor, len(s.Types))
	copy(types, s.Types)
	sort.Slice(types, func(i, j int) bool {
		return types[i].TypeName() < types[j].TypeName()
	})

	for _, t := range types {
		block, err := renderType(t)
		if err != nil {
			return err
		}
		blocks = append(blocks, block)
	}

	for _, root := range []ir.RootType{ir.RootQuery, ir.RootMutation, ir.RootSubscription} {
		ops := operationsFor(s.Operations, root)
		if len(ops) == 0 {
			continue
		}
		blocks = append(blocks, renderRootType(root, ops))
	}

	for i, block := range blocks {
		if i > 0 {
			e.buf.WriteString("\n")
		}
		e.buf.WriteString(block)
		e.buf.WriteString("\n")
	}
	return nil
}

// schemaBlock emits the schema declaration naming only the root types
// actually present, in query, mutation, subscription order. Empty when no
// operations exist.
func schemaBlock(ops []ir.OperationDescriptor) string {
	present := make(map[ir.RootType]bool)
	for _, op := range ops {
		present[op.Root] = true
	}
	if len(present) == 0 {
		return ""
	}

	var buf bytes.Buffer
	buf.WriteString("schema {\n")
	if present[ir.RootQuery] {
		buf.WriteString("  query: Query\n")
	}
	if present[ir.RootMutation] {
		buf.WriteString("  mutation: Mutation\n")
	}
	if present[ir.RootSubscription] {
		buf.WriteString("  subscription: Subscription\n")
	}
	buf.WriteString("}")
	return buf.String()
}

// renderType dispatches on the descriptor kind.
func renderType(t ir.TypeDescriptor) (string, error) {
	switch d := t.(type) {
	case *ir.ObjectDescriptor:
		return renderFielded("type", d.Name, d.Description, d.Fields, d.Directives), nil
	case *ir.InputDescriptor:
		return renderFielded("input", d.Name, d.Description, d.Fields, d.Directives), nil
	case *ir.InterfaceDescriptor:
		return renderFielded("interface", d.Name, d.Description, d.Fields, d.Directives), nil
	case *ir.EnumDescriptor:
		return renderEnum(d), nil
	case *ir.UnionDescriptor:
		return renderUnion(d), nil
	default:
		return "", fmt.Errorf("unsupported type kind: %s", t.Kind())
	}
}

// renderFielded emits an object, input, or interface block.
func renderFielded(keyword, name, description string, fields []ir.FieldDescriptor, directives []ir.AppliedDirective) string {
	var buf bytes.Buffer
	writeDescription(&buf, description, "")

	buf.WriteString(keyword)
	buf.WriteString(" ")
	buf.WriteString(name)
	writeDirectives(&buf, directives)
	buf.WriteString(" {\n")

	sorted := make([]ir.FieldDescriptor, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	for _, f := range sorted {
		writeDescription(&buf, f.Description, "  ")
		buf.WriteString("  ")
		buf.WriteString(f.Name)
		buf.WriteString(": ")
		buf.WriteString(f.Type)
		if !f.Nullable {
			buf.WriteString("!")
		}
		writeDirectives(&buf, f.Directives)
		writeDeprecated(&buf, f.Deprecated)
		buf.WriteString("\n")
	}

	buf.WriteString("}")
	return buf.String()
}

// renderEnum emits an enum block. Directives on the enum declaration itself
// are unconditionally suppressed: the gateway platform rejects them.
func renderEnum(d *ir.EnumDescriptor) string {
	var buf bytes.Buffer
	writeDescription(&buf, d.Description, "")

	buf.WriteString("enum ")
	buf.WriteString(d.Name)
	buf.WriteString(" {\n")

	for _, v := range d.Values {
		writeDescription(&buf, v.Description, "  ")
		buf.WriteString("  ")
		buf.WriteString(v.Name)
		writeDeprecated(&buf, v.Deprecated)
		buf.WriteString("\n")
	}

	buf.WriteString("}")
	return buf.String()
}

// renderUnion emits a union declaration. Zero members produce the bare form
// with no '=' clause; a single member still uses the '=' form.
func renderUnion(d *ir.UnionDescriptor) string {
	var buf bytes.Buffer
	writeDescription(&buf, d.Description, "")

	buf.WriteString("union ")
	buf.WriteString(d.Name)
	writeDirectives(&buf, d.Directives)

	if len(d.Members) > 0 {
		buf.WriteString(" = ")
		buf.WriteString(strings.Join(d.Members, " | "))
	}
	return buf.String()
}

// operationsFor returns the operations for one root type, sorted by field
// name.
func operationsFor(ops []ir.OperationDescriptor, root ir.RootType) []ir.OperationDescriptor {
	var out []ir.OperationDescriptor
	for _, op := range ops {
		if op.Root == root {
			out = append(out, op)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FieldName < out[j].FieldName })
	return out
}

// renderRootType emits one root operation type block.
func renderRootType(root ir.RootType, ops []ir.OperationDescriptor) string {
	var buf bytes.Buffer
	buf.WriteString("type ")
	buf.WriteString(root.String())
	buf.WriteString(" {\n")

	for _, op := range ops {
		writeDescription(&buf, op.Description, "  ")
		buf.WriteString("  ")
		buf.WriteString(op.FieldName)
		if len(op.Arguments) > 0 {
			buf.WriteString("(")
			for i, arg := range op.Arguments {
				if i > 0 {
					buf.WriteString(", ")
				}
				buf.WriteString(arg.Name)
				buf.WriteString(": ")
				buf.WriteString(arg.Type)
				if !arg.Nullable {
					buf.WriteString("!")
				}
			}
			buf.WriteString(")")
		}
		buf.WriteString(": ")
		buf.WriteString(op.ReturnType)
		writeDirectives(&buf, op.Directives)
		buf.WriteString("\n")
	}

	buf.WriteString("}")
	return buf.String()
}

// writeDescription emits a triple-quoted description block preceding a
// declaration. No-op for empty descriptions.
func writeDescription(buf *bytes.Buffer, description, indent string) {
	if description == "" {
		return
	}
	buf.WriteString(indent)
	buf.WriteString(`"""`)
	buf.WriteString("\n")
	for _, line := range strings.Split(description, "\n") {
		buf.WriteString(indent)
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	buf.WriteString(indent)
	buf.WriteString(`"""`)
	buf.WriteString("\n")
}

// writeDirectives emits directive applications after a name or type token.
func writeDirectives(buf *bytes.Buffer, directives []ir.AppliedDirective) {
	for _, d := range directives {
		buf.WriteString(" @")
		buf.WriteString(d.Name)
		if len(d.Args) == 0 {
			continue
		}
		buf.WriteString("(")
		for i, arg := range d.Args {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(arg.Name)
			buf.WriteString(": ")
			buf.WriteString(formatDirectiveValue(arg.Value))
		}
		buf.WriteString(")")
	}
}

// writeDeprecated emits the trailing @deprecated directive. A missing reason
// renders as @deprecated() with no reason argument.
func writeDeprecated(buf *bytes.Buffer, deprecated *string) {
	if deprecated == nil {
		return
	}
	if *deprecated == "" {
		buf.WriteString(" @deprecated()")
		return
	}
	buf.WriteString(` @deprecated(reason: `)
	buf.WriteString(strconv.Quote(*deprecated))
	buf.WriteString(")")
}

// formatDirectiveValue formats a directive argument literal. Multi-valued
// arguments render as a bracketed list of quoted strings.
func formatDirectiveValue(value any) string {
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case []string:
		parts := make([]string, len(v))
		for i, s := range v {
			parts[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
