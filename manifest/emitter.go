// Package manifest renders the resolver/data-source deployment manifest.
// The document's field names and nesting are a versioned external contract
// consumed by deployment tooling; the JSON is assembled by hand so field
// order and escaping stay byte-stable across runs.
package manifest

import (
	"bytes"
	"fmt"
	"time"

	"github.com/latticehq/gatewaygen/ir"
)

// Version is the manifest document version.
const Version = "1.0"

// defaultDataSourceType backs operations that do not declare one.
const defaultDataSourceType = "AWS_LAMBDA"

// Emitter renders the deployment manifest.
type Emitter struct {
	// Now supplies the generatedAt timestamp. Defaults to time.Now.
	// Rendering is deterministic for a fixed clock.
	Now func() time.Time
}

// Render renders the manifest for the given operations. Warnings report
// data-source name conflicts hidden by first-occurrence-wins dedup.
func (e *Emitter) Render(ops []ir.OperationDescriptor) (string, []ir.Warning, error) {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	sources, warnings := collectDataSources(ops)

	var buf bytes.Buffer
	buf.WriteString("{\n")
	buf.WriteString(`  "version": `)
	writeString(&buf, Version)
	buf.WriteString(",\n")
	buf.WriteString(`  "generatedAt": `)
	writeString(&buf, now().UTC().Format(time.RFC3339))
	buf.WriteString(",\n")

	buf.WriteString(`  "resolvers": [`)
	for i, op := range ops {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
		if err := writeResolver(&buf, op); err != nil {
			return "", nil, err
		}
	}
	if len(ops) > 0 {
		buf.WriteString("\n  ")
	}
	buf.WriteString("],\n")

	buf.WriteString(`  "dataSources": [`)
	for i, ds := range sources {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
		writeDataSource(&buf, ds)
	}
	if len(sources) > 0 {
		buf.WriteString("\n  ")
	}
	buf.WriteString("],\n")

	// Reserved for standalone pipeline function definitions.
	buf.WriteString(`  "functions": []` + "\n")
	buf.WriteString("}\n")

	return buf.String(), warnings, nil
}

// collectDataSources derives the deduplicated data-source list from unit
// operations, in first-occurrence order. A later occurrence of the same name
// with a different backing identity is dropped and reported as a warning;
// callers relying on per-operation backing identity must keep names unique
// upstream.
func collectDataSources(ops []ir.OperationDescriptor) ([]ir.DataSourceDescriptor, []ir.Warning) {
	var (
		sources  []ir.DataSourceDescriptor
		warnings []ir.Warning
		byName   = make(map[string]ir.DataSourceDescriptor)
	)
	for _, op := range ops {
		if op.ResolverKind != ir.ResolverUnit || op.DataSource == "" {
			continue
		}
		ds := ir.DataSourceDescriptor{
			Name:           op.DataSource,
			Type:           op.DataSourceType,
			ResourceArn:    op.ResourceArn,
			ServiceRoleArn: op.ServiceRoleArn,
		}
		if ds.Type == "" {
			ds.Type = defaultDataSourceType
		}
		if seen, ok := byName[ds.Name]; ok {
			if seen != ds {
				warnings = append(warnings, ir.Warning{
					Code: "data_source_conflict",
					Message: fmt.Sprintf("data source %q declared with conflicting backing identity by %s.%s; keeping first occurrence",
						ds.Name, op.Root, op.FieldName),
				})
			}
			continue
		}
		byName[ds.Name] = ds
		sources = append(sources, ds)
	}
	return sources, warnings
}

func writeResolver(buf *bytes.Buffer, op ir.OperationDescriptor) error {
	buf.WriteString("    {\n")
	buf.WriteString(`      "typeName": `)
	writeString(buf, op.Root.String())
	buf.WriteString(",\n")
	buf.WriteString(`      "fieldName": `)
	writeString(buf, op.FieldName)
	buf.WriteString(",\n")
	buf.WriteString(`      "kind": `)

	switch op.ResolverKind {
	case ir.ResolverUnit:
		writeString(buf, op.ResolverKind.String())
		buf.WriteString(",\n")
		buf.WriteString(`      "dataSource": `)
		writeString(buf, op.DataSource)
		buf.WriteString("\n")
	case ir.ResolverPipeline:
		writeString(buf, op.ResolverKind.String())
		buf.WriteString(",\n")
		buf.WriteString(`      "functions": [`)
		for i, fn := range op.Functions {
			if i > 0 {
				buf.WriteString(", ")
			}
			writeString(buf, fn)
		}
		buf.WriteString("]\n")
	default:
		return fmt.Errorf("operation %s.%s: unknown resolver kind %d", op.Root, op.FieldName, op.ResolverKind)
	}

	buf.WriteString("    }")
	return nil
}

func writeDataSource(buf *bytes.Buffer, ds ir.DataSourceDescriptor) {
	buf.WriteString("    {\n")
	buf.WriteString(`      "name": `)
	writeString(buf, ds.Name)
	buf.WriteString(",\n")
	buf.WriteString(`      "type": `)
	writeString(buf, ds.Type)
	buf.WriteString(",\n")
	buf.WriteString(`      "resourceArn": `)
	writeString(buf, ds.ResourceArn)
	if ds.ServiceRoleArn != "" {
		buf.WriteString(",\n")
		buf.WriteString(`      "serviceRoleArn": `)
		writeString(buf, ds.ServiceRoleArn)
	}
	buf.WriteString("\n    }")
}

// writeString writes s as a quoted JSON string. The escape set covers
// backslash, quote, newline, carriage return, tab, backspace, and form feed;
// remaining control bytes use the \u00XX form so any standard JSON parser
// reproduces the original value exactly.
func writeString(buf *bytes.Buffer, s string) {
	const hex = "0123456789abcdef"
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			buf.WriteString(`\\`)
		case '"':
			buf.WriteString(`\"`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if c < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hex[c>>4])
				buf.WriteByte(hex[c&0xf])
			} else {
				buf.WriteByte(c)
			}
		}
	}
	buf.WriteByte('"')
}
