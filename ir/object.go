package ir

// ObjectDescriptor represents an output object type (SDL "type" keyword).
type ObjectDescriptor struct {
	// Name is the type identifier.
	Name string

	// Description documents the type. Empty means no description block.
	Description string

	// Fields contains all fields. Emitters sort by name; order here is
	// not significant.
	Fields []FieldDescriptor

	// Directives applied to the type declaration.
	Directives []AppliedDirective
}

// Kind returns KindObject.
func (d *ObjectDescriptor) Kind() TypeKind { return KindObject }

// TypeName returns the object's name.
func (d *ObjectDescriptor) TypeName() string { return d.Name }

func (*ObjectDescriptor) sealed() {}

// InputDescriptor represents an input object type (SDL "input" keyword).
type InputDescriptor struct {
	Name        string
	Description string
	Fields      []FieldDescriptor
	Directives  []AppliedDirective
}

// Kind returns KindInput.
func (d *InputDescriptor) Kind() TypeKind { return KindInput }

// TypeName returns the input type's name.
func (d *InputDescriptor) TypeName() string { return d.Name }

func (*InputDescriptor) sealed() {}

// InterfaceDescriptor represents an interface type.
type InterfaceDescriptor struct {
	Name        string
	Description string
	Fields      []FieldDescriptor
	Directives  []AppliedDirective
}

// Kind returns KindInterface.
func (d *InterfaceDescriptor) Kind() TypeKind { return KindInterface }

// TypeName returns the interface's name.
func (d *InterfaceDescriptor) TypeName() string { return d.Name }

func (*InterfaceDescriptor) sealed() {}

// FieldDescriptor represents a single field of an object, input, or
// interface type.
type FieldDescriptor struct {
	// Name is the field name as it appears in the schema.
	Name string

	// Description documents the field.
	Description string

	// Type is the resolved output type name, e.g. "String" or "[Product]".
	// It never carries a nullability suffix; Nullable decides that.
	Type string

	// Nullable reports whether the field may be null. When false the
	// emitter appends '!'.
	Nullable bool

	// Deprecated is non-nil if the field is deprecated. The string is the
	// deprecation reason and may be empty.
	Deprecated *string

	// Directives applied to the field.
	Directives []AppliedDirective
}
