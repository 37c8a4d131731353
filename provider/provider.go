// Package provider extracts the gateway IR from annotated Go source.
//
// Types opt in with //gateway:object, //gateway:input, //gateway:interface,
// //gateway:enum, or //gateway:union doc comments; operations are
// package-level functions annotated //gateway:query, //gateway:mutation, or
// //gateway:subscription. Malformed entities are reported as positional
// diagnostics and excluded; extraction continues with whatever remains.
package provider

import (
	"context"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/latticehq/gatewaygen/ir"
	"github.com/latticehq/gatewaygen/resolve"
)

// Diagnostic is a non-fatal extraction problem tied to a source location.
type Diagnostic struct {
	// Pos is the "file:line" location of the offending entity.
	Pos string

	// Code is a machine-readable identifier.
	Code string

	// Message describes the problem.
	Message string
}

func (d Diagnostic) String() string {
	return d.Pos + ": " + d.Message
}

// SourceProvider extracts the IR by analyzing Go source code.
type SourceProvider struct{}

// Options configures source extraction.
type Options struct {
	// Packages are the Go package patterns to analyze.
	Packages []string

	// Dir is the working directory for package loading. Empty means the
	// process working directory.
	Dir string
}

// BuildSchema loads the packages and extracts every annotated type and
// operation. Returned diagnostics are non-fatal: the offending entities are
// simply absent from the schema. The error is non-nil only for total
// failures such as unloadable packages.
func (p *SourceProvider) BuildSchema(ctx context.Context, opts Options) (*ir.Schema, []Diagnostic, error) {
	if len(opts.Packages) == 0 {
		return nil, nil, fmt.Errorf("no packages specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     opts.Dir,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}

	pkgs, err := packages.Load(cfg, opts.Packages...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, nil, fmt.Errorf("no packages found")
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}

	b := &builder{
		schema:   &ir.Schema{},
		resolver: resolve.NewResolver(),
		enums:    make(map[string]*ir.EnumDescriptor),
	}
	for _, pkg := range pkgs {
		b.extractTypes(pkg)
	}
	for _, pkg := range pkgs {
		b.extractEnumValues(pkg)
	}
	for _, pkg := range pkgs {
		b.extractOperations(pkg)
	}
	return b.schema, b.diags, nil
}

// builder accumulates descriptors and diagnostics during extraction.
type builder struct {
	schema   *ir.Schema
	resolver *resolve.Resolver
	diags    []Diagnostic

	// enums maps the qualified Go type string of each annotated enum to its
	// descriptor so const scanning can append values.
	enums map[string]*ir.EnumDescriptor
}

func (b *builder) report(pkg *packages.Package, pos token.Pos, code, message string) {
	p := pkg.Fset.Position(pos)
	b.diags = append(b.diags, Diagnostic{
		Pos:     fmt.Sprintf("%s:%d", p.Filename, p.Line),
		Code:    code,
		Message: message,
	})
}

// extractTypes walks type declarations and builds type descriptors.
func (b *builder) extractTypes(pkg *packages.Package) {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil {
					doc = gen.Doc
				}
				b.extractType(pkg, ts, doc)
			}
		}
	}
}

func (b *builder) extractType(pkg *packages.Package, ts *ast.TypeSpec, doc *ast.CommentGroup) {
	anns := parseAnnotations(doc)
	kind, ok := typeAnnotation(anns)
	if !ok {
		return
	}

	name := ts.Name.Name
	description := docText(doc)
	directives, ok := b.collectDirectives(pkg, ts.Pos(), anns)
	if !ok {
		return
	}

	switch kind.kind {
	case "object", "input", "interface":
		st, ok := ts.Type.(*ast.StructType)
		if !ok {
			b.report(pkg, ts.Pos(), "not_a_struct",
				fmt.Sprintf("type %s: gateway:%s requires a struct type", name, kind.kind))
			return
		}
		fields, ok := b.extractFields(pkg, name, st)
		if !ok {
			return
		}
		switch kind.kind {
		case "object":
			b.schema.AddType(&ir.ObjectDescriptor{Name: name, Description: description, Fields: fields, Directives: directives})
		case "input":
			b.schema.AddType(&ir.InputDescriptor{Name: name, Description: description, Fields: fields, Directives: directives})
		case "interface":
			b.schema.AddType(&ir.InterfaceDescriptor{Name: name, Description: description, Fields: fields, Directives: directives})
		}

	case "enum":
		desc := &ir.EnumDescriptor{Name: name, Description: description, Directives: directives}
		obj := pkg.TypesInfo.ObjectOf(ts.Name)
		if obj == nil {
			b.report(pkg, ts.Pos(), "unresolved_type",
				fmt.Sprintf("type %s: no type information", name))
			return
		}
		b.enums[obj.Type().String()] = desc
		b.schema.AddType(desc)

	case "union":
		members := strings.Fields(kind.rest)
		b.schema.AddType(&ir.UnionDescriptor{Name: name, Description: description, Members: members, Directives: directives})
	}
}

// typeAnnotation returns the first type-kind annotation.
func typeAnnotation(anns []annotation) (annotation, bool) {
	for _, a := range anns {
		switch a.kind {
		case "object", "input", "interface", "enum", "union":
			return a, true
		}
	}
	return annotation{}, false
}

// collectDirectives parses all //gateway:directive annotations. The second
// return is false when a directive is malformed; the entity is skipped.
func (b *builder) collectDirectives(pkg *packages.Package, pos token.Pos, anns []annotation) ([]ir.AppliedDirective, bool) {
	var out []ir.AppliedDirective
	for _, a := range anns {
		if a.kind != "directive" {
			continue
		}
		d, err := parseDirective(a.rest)
		if err != nil {
			b.report(pkg, pos, "bad_directive", err.Error())
			return nil, false
		}
		out = append(out, d)
	}
	return out, true
}

// extractFields builds field descriptors from a struct type.
func (b *builder) extractFields(pkg *packages.Package, typeName string, st *ast.StructType) ([]ir.FieldDescriptor, bool) {
	var fields []ir.FieldDescriptor
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			b.report(pkg, field.Pos(), "embedded_field",
				fmt.Sprintf("type %s: embedded fields are not supported", typeName))
			return nil, false
		}

		var tagValue string
		if field.Tag != nil {
			tagValue = reflect.StructTag(strings.Trim(field.Tag.Value, "`")).Get("gateway")
		}
		ft := parseFieldTag(tagValue)
		if ft.skip {
			continue
		}

		typ := pkg.TypesInfo.TypeOf(field.Type)
		if typ == nil {
			b.report(pkg, field.Pos(), "unresolved_type",
				fmt.Sprintf("type %s: cannot resolve field type", typeName))
			return nil, false
		}
		src := goTypeToSource(typ)
		if ft.nonNull {
			src.NonNull = true
		}
		schemaType, nullable := b.resolver.Resolve(src, ft.scalar)
		if ft.nullable {
			nullable = true
		}
		if ft.nonNull {
			nullable = false
		}

		deprecated := ft.deprecated
		if deprecated == nil {
			deprecated = deprecation(field.Doc)
		}
		directives, ok := b.collectDirectives(pkg, field.Pos(), parseAnnotations(field.Doc))
		if !ok {
			return nil, false
		}

		for _, fieldName := range field.Names {
			if !fieldName.IsExported() {
				continue
			}
			name := ft.name
			if name == "" {
				name = lowerFirst(fieldName.Name)
			}
			fields = append(fields, ir.FieldDescriptor{
				Name:        name,
				Description: docText(field.Doc),
				Type:        schemaType,
				Nullable:    nullable,
				Deprecated:  deprecated,
				Directives:  directives,
			})
		}
	}
	return fields, true
}

// extractEnumValues scans const declarations and appends values to
// previously registered enum descriptors, in declaration order.
func (b *builder) extractEnumValues(pkg *packages.Package) {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.CONST {
				continue
			}
			for _, spec := range gen.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for _, ident := range vs.Names {
					b.extractEnumValue(pkg, vs, ident)
				}
			}
		}
	}
}

func (b *builder) extractEnumValue(pkg *packages.Package, vs *ast.ValueSpec, ident *ast.Ident) {
	obj, ok := pkg.TypesInfo.ObjectOf(ident).(*types.Const)
	if !ok {
		return
	}
	desc, ok := b.enums[obj.Type().String()]
	if !ok {
		return
	}

	name := ident.Name
	if obj.Val().Kind() == constant.String {
		name = constant.StringVal(obj.Val())
	}
	desc.Values = append(desc.Values, ir.EnumValueDescriptor{
		Name:        name,
		Description: docText(vs.Doc),
		Deprecated:  deprecation(vs.Doc),
	})
}
