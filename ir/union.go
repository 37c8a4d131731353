package ir

// UnionDescriptor represents a union of object types.
type UnionDescriptor struct {
	// Name is the type identifier.
	Name string

	// Description documents the type.
	Description string

	// Members lists the member type names in declaration order. Order is
	// preserved in output; an empty list renders as a bare "union Name".
	Members []string

	// Directives applied to the union declaration.
	Directives []AppliedDirective
}

// Kind returns KindUnion.
func (d *UnionDescriptor) Kind() TypeKind { return KindUnion }

// TypeName returns the union's name.
func (d *UnionDescriptor) TypeName() string { return d.Name }

func (*UnionDescriptor) sealed() {}
