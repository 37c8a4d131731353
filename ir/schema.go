package ir

// Schema is the complete generation input: every named type and every
// resolver-backed operation, already deduplicated by name by the extraction
// provider.
type Schema struct {
	// Types contains all named type descriptors.
	Types []TypeDescriptor

	// Operations contains all resolver-backed operations.
	Operations []OperationDescriptor

	// Warnings contains non-fatal issues encountered during extraction.
	Warnings []Warning
}

// AddType adds a named type descriptor to the schema.
func (s *Schema) AddType(t TypeDescriptor) {
	s.Types = append(s.Types, t)
}

// AddOperation adds an operation descriptor to the schema.
func (s *Schema) AddOperation(op OperationDescriptor) {
	s.Operations = append(s.Operations, op)
}

// AddWarning adds a warning to the schema.
func (s *Schema) AddWarning(w Warning) {
	s.Warnings = append(s.Warnings, w)
}

// FindType looks up a type by name. Returns nil if not found.
func (s *Schema) FindType(name string) TypeDescriptor {
	for _, t := range s.Types {
		if t.TypeName() == name {
			return t
		}
	}
	return nil
}

// Validate checks the schema for structural issues.
// Returns all validation errors found (not just the first).
func (s *Schema) Validate() []error {
	var errs []*ValidationError

	typeNames := make(map[string]bool)
	for _, t := range s.Types {
		name := t.TypeName()
		if name == "" {
			errs = append(errs, &ValidationError{
				Code:    "unnamed_type",
				Message: "type descriptor has no name",
			})
			continue
		}
		if typeNames[name] {
			errs = append(errs, &ValidationError{
				Code:    "duplicate_type",
				Message: "duplicate type name: " + name,
			})
		}
		typeNames[name] = true
	}

	for _, t := range s.Types {
		u, ok := t.(*UnionDescriptor)
		if !ok {
			continue
		}
		for _, member := range u.Members {
			if !typeNames[member] {
				errs = append(errs, &ValidationError{
					Code:    "missing_union_member",
					Message: "union " + u.Name + " references unknown type: " + member,
				})
			}
		}
	}

	opNames := make(map[string]bool)
	for _, op := range s.Operations {
		key := op.Root.String() + "." + op.FieldName
		if opNames[key] {
			errs = append(errs, &ValidationError{
				Code:    "duplicate_operation",
				Message: "duplicate operation: " + key,
			})
		}
		opNames[key] = true

		switch op.ResolverKind {
		case ResolverUnit:
			if op.DataSource == "" {
				errs = append(errs, &ValidationError{
					Code:    "missing_data_source",
					Message: "unit resolver " + key + " has no data source",
				})
			}
			if len(op.Functions) > 0 {
				errs = append(errs, &ValidationError{
					Code:    "unexpected_functions",
					Message: "unit resolver " + key + " carries pipeline functions",
				})
			}
		case ResolverPipeline:
			if len(op.Functions) == 0 {
				errs = append(errs, &ValidationError{
					Code:    "empty_pipeline",
					Message: "pipeline resolver " + key + " has no functions",
				})
			}
		default:
			errs = append(errs, &ValidationError{
				Code:    "unknown_resolver_kind",
				Message: "operation " + key + " has unknown resolver kind",
			})
		}

		if op.ReturnType == "" {
			errs = append(errs, &ValidationError{
				Code:    "missing_return_type",
				Message: "operation " + key + " has no return type",
			})
		}
	}

	var result []error
	for _, e := range errs {
		result = append(result, e)
	}
	return result
}

// ValidationError represents a schema validation error.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
