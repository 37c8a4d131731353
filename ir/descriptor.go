package ir

// TypeKind identifies the category of a type descriptor.
type TypeKind int

const (
	KindObject    TypeKind = iota // Output object type (SDL "type")
	KindInput                     // Input object type (SDL "input")
	KindInterface                 // Interface type
	KindEnum                      // Enumeration
	KindUnion                     // Union of object types
)

// String returns the string representation of the type kind.
func (k TypeKind) String() string {
	switch k {
	case KindObject:
		return "Object"
	case KindInput:
		return "Input"
	case KindInterface:
		return "Interface"
	case KindEnum:
		return "Enum"
	case KindUnion:
		return "Union"
	default:
		return "Unknown"
	}
}

// TypeDescriptor is the base interface for all named type descriptors.
type TypeDescriptor interface {
	// Kind returns the descriptor kind for type switching.
	Kind() TypeKind

	// TypeName returns the declared type name, unique within a schema.
	TypeName() string

	// Ensure only types in this package can implement TypeDescriptor.
	sealed()
}
