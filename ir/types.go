// Package ir defines the intermediate representation for a GraphQL gateway
// schema. Extraction providers produce these descriptors from annotated
// source; the sdl and manifest emitters consume them. All descriptors are
// treated as immutable once a generation run starts.
package ir

// AppliedDirective is a directive application attached to a type, field, or
// operation, e.g. @aws_auth(cognito_groups: ["admins"]).
type AppliedDirective struct {
	// Name is the directive name without the leading '@'.
	Name string

	// Args are the directive arguments in declaration order.
	Args []DirectiveArgument
}

// DirectiveArgument is a single named argument of a directive application.
type DirectiveArgument struct {
	// Name is the argument name.
	Name string

	// Value is the literal argument value. Providers produce one of exactly
	// four types: string, []string, int64, or bool. Emitters can rely on
	// type assertions to these concrete types.
	Value any
}

// Warning represents a non-fatal issue encountered during generation.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string
}
