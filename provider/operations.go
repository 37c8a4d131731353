package provider

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/latticehq/gatewaygen/ir"
	"github.com/latticehq/gatewaygen/resolve"
)

// extractOperations walks package-level functions and builds operation
// descriptors from //gateway:query, //gateway:mutation, and
// //gateway:subscription annotations.
func (b *builder) extractOperations(pkg *packages.Package) {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil {
				continue
			}
			anns := parseAnnotations(fn.Doc)
			root, ann, ok := operationAnnotation(anns)
			if !ok {
				continue
			}
			b.extractOperation(pkg, fn, root, ann, anns)
		}
	}
}

// operationAnnotation returns the root type and annotation of the first
// operation annotation, if any.
func operationAnnotation(anns []annotation) (ir.RootType, annotation, bool) {
	for _, a := range anns {
		switch a.kind {
		case "query":
			return ir.RootQuery, a, true
		case "mutation":
			return ir.RootMutation, a, true
		case "subscription":
			return ir.RootSubscription, a, true
		}
	}
	return 0, annotation{}, false
}

func (b *builder) extractOperation(pkg *packages.Package, fn *ast.FuncDecl, root ir.RootType, ann annotation, anns []annotation) {
	fieldName, opts := splitOperationArgs(ann.rest)
	if fieldName == "" {
		fieldName = lowerFirst(fn.Name.Name)
	}

	op := ir.OperationDescriptor{
		Root:           root,
		FieldName:      fieldName,
		Description:    docText(fn.Doc),
		DataSource:     opts["datasource"],
		DataSourceType: opts["type"],
		ResourceArn:    opts["arn"],
		ServiceRoleArn: opts["role"],
	}

	pipeline := opts["pipeline"]
	switch {
	case pipeline != "" && op.DataSource != "":
		b.report(pkg, fn.Pos(), "ambiguous_resolver",
			fmt.Sprintf("operation %s declares both datasource and pipeline", fieldName))
		return
	case pipeline != "":
		op.ResolverKind = ir.ResolverPipeline
		// Ordered list; a comma-separated value is split here, never
		// carried as one opaque string.
		op.Functions = strings.Split(pipeline, ",")
	case op.DataSource != "":
		op.ResolverKind = ir.ResolverUnit
	default:
		b.report(pkg, fn.Pos(), "missing_resolver",
			fmt.Sprintf("operation %s declares neither datasource nor pipeline", fieldName))
		return
	}

	directives, ok := b.collectDirectives(pkg, fn.Pos(), anns)
	if !ok {
		return
	}
	op.Directives = directives

	obj := pkg.TypesInfo.ObjectOf(fn.Name)
	if obj == nil {
		b.report(pkg, fn.Pos(), "unresolved_type",
			fmt.Sprintf("operation %s: no type information", fieldName))
		return
	}
	sig, ok := obj.Type().(*types.Signature)
	if !ok {
		b.report(pkg, fn.Pos(), "unresolved_type",
			fmt.Sprintf("operation %s: not a function signature", fieldName))
		return
	}

	args, ok := b.extractArguments(pkg, fn.Pos(), fieldName, sig)
	if !ok {
		return
	}
	op.Arguments = args

	ret, ok := b.returnSourceType(pkg, fn.Pos(), fieldName, sig)
	if !ok {
		return
	}
	op.ReturnType = b.resolver.ResolveReturn(ret, opts["returns"])

	b.schema.AddOperation(op)
}

// splitOperationArgs parses the annotation remainder: an optional leading
// field name followed by key=value options.
func splitOperationArgs(rest string) (string, map[string]string) {
	fields := strings.Fields(rest)
	var fieldName string
	if len(fields) > 0 && !strings.Contains(fields[0], "=") {
		fieldName = fields[0]
		fields = fields[1:]
	}
	return fieldName, parseOptions(strings.Join(fields, " "))
}

// extractArguments maps function parameters to argument descriptors. A
// leading context.Context parameter is ignored.
func (b *builder) extractArguments(pkg *packages.Package, pos token.Pos, fieldName string, sig *types.Signature) ([]ir.ArgumentDescriptor, bool) {
	var args []ir.ArgumentDescriptor
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		param := params.At(i)
		if i == 0 && param.Type().String() == "context.Context" {
			continue
		}
		if param.Name() == "" {
			b.report(pkg, pos, "unnamed_parameter",
				fmt.Sprintf("operation %s: parameter %d has no name", fieldName, i))
			return nil, false
		}
		src := goTypeToSource(param.Type())
		typeName, nullable := b.resolver.Resolve(src, "")
		args = append(args, ir.ArgumentDescriptor{
			Name:     param.Name(),
			Type:     typeName,
			Nullable: nullable,
		})
	}
	return args, true
}

// returnSourceType maps the function results to a single return source
// type. A trailing error result is dropped; no results means void.
func (b *builder) returnSourceType(pkg *packages.Package, pos token.Pos, fieldName string, sig *types.Signature) (resolve.SourceType, bool) {
	results := sig.Results()
	n := results.Len()
	if n > 0 && results.At(n-1).Type().String() == "error" {
		n--
	}
	switch n {
	case 0:
		return resolve.Void(), true
	case 1:
		return goTypeToSource(results.At(0).Type()), true
	default:
		b.report(pkg, pos, "multiple_results",
			fmt.Sprintf("operation %s: at most one non-error result is supported", fieldName))
		return resolve.SourceType{}, false
	}
}
