package ir

// EnumDescriptor represents an enumeration type.
type EnumDescriptor struct {
	// Name is the type identifier.
	Name string

	// Description documents the type.
	Description string

	// Values contains all enum values in declaration order.
	Values []EnumValueDescriptor

	// Directives carried from extraction. The gateway platform rejects
	// directives on enum declarations, so the SDL emitter never renders
	// these; they are kept so validation can report them.
	Directives []AppliedDirective
}

// Kind returns KindEnum.
func (d *EnumDescriptor) Kind() TypeKind { return KindEnum }

// TypeName returns the enum's name.
func (d *EnumDescriptor) TypeName() string { return d.Name }

func (*EnumDescriptor) sealed() {}

// EnumValueDescriptor represents a single enum value.
type EnumValueDescriptor struct {
	// Name is the value identifier.
	Name string

	// Description documents the value.
	Description string

	// Deprecated is non-nil if the value is deprecated. The string is the
	// deprecation reason and may be empty.
	Deprecated *string
}
