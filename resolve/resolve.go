// Package resolve maps source type shapes to schema type names and
// nullability. The extraction provider calls it once per field, argument,
// and return type; emitters receive already-resolved names.
package resolve

import (
	"strings"
	"sync"
)

// SourceType is a language-neutral description of a source type shape.
// Exactly one shape applies per node: map, list, optional wrapper, async
// wrapper, or a named leaf.
type SourceType struct {
	// Name is the qualified semantic type name for leaf nodes, e.g.
	// "time.Time", "string", or "Product". Empty for wrapper nodes and for
	// the void type.
	Name string

	// Elem is the wrapped or element type for list, optional, and async
	// nodes.
	Elem *SourceType

	// IsList marks an ordered collection of Elem.
	IsList bool

	// IsMap marks a dictionary-shaped type. Key and value types are not
	// represented; dictionaries always resolve to the opaque JSON scalar.
	IsMap bool

	// IsOptional marks a nullable-value wrapper around Elem.
	IsOptional bool

	// IsAsync marks a single-level async wrapper around Elem. Only
	// meaningful in return position.
	IsAsync bool

	// NonNull is the extraction layer's explicit non-null annotation for
	// reference-like types, which default to nullable.
	NonNull bool
}

// Named returns a leaf source type.
func Named(name string) SourceType {
	return SourceType{Name: name}
}

// List returns an ordered collection of elem.
func List(elem SourceType) SourceType {
	return SourceType{IsList: true, Elem: &elem}
}

// Dict returns a dictionary-shaped source type.
func Dict() SourceType {
	return SourceType{IsMap: true}
}

// Optional returns a nullable-value wrapper around elem.
func Optional(elem SourceType) SourceType {
	return SourceType{IsOptional: true, Elem: &elem}
}

// Async returns an async wrapper around elem.
func Async(elem SourceType) SourceType {
	return SourceType{IsAsync: true, Elem: &elem}
}

// Void returns the no-value type.
func Void() SourceType {
	return SourceType{}
}

// IsVoid reports whether the type carries no value.
func (t SourceType) IsVoid() bool {
	return t.Name == "" && t.Elem == nil && !t.IsList && !t.IsMap && !t.IsOptional && !t.IsAsync
}

// key returns a canonical cache key for the type shape.
func (t SourceType) key() string {
	var b strings.Builder
	t.writeKey(&b)
	return b.String()
}

func (t SourceType) writeKey(b *strings.Builder) {
	if t.NonNull {
		b.WriteString("!")
	}
	switch {
	case t.IsMap:
		b.WriteString("map")
	case t.IsList:
		b.WriteString("list(")
		t.Elem.writeKey(b)
		b.WriteString(")")
	case t.IsOptional:
		b.WriteString("opt(")
		t.Elem.writeKey(b)
		b.WriteString(")")
	case t.IsAsync:
		b.WriteString("async(")
		t.Elem.writeKey(b)
		b.WriteString(")")
	default:
		b.WriteString(t.Name)
	}
}

// resolved is a cached resolution result.
type resolved struct {
	name     string
	nullable bool
}

// Resolver resolves source types to schema type names. The zero value is
// ready to use. A Resolver memoizes results and is safe for concurrent use;
// the extraction phase may resolve from multiple goroutines.
type Resolver struct {
	cache sync.Map // SourceType.key() -> resolved
}

// NewResolver returns a Resolver with an empty cache.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve maps a source type to a schema type name and nullability flag.
// A non-empty override replaces the resolved leaf name while preserving
// list-bracket wrapping and the shape-derived nullability.
//
// Precedence, first match wins: override, scalar registry, dictionary,
// collection, nullable wrapper, built-in primitives, then the declared name
// verbatim.
func (r *Resolver) Resolve(t SourceType, override string) (string, bool) {
	name, nullable := r.resolve(t)
	if override != "" {
		if listShaped(t) {
			name = "[" + override + "]"
		} else {
			name = override
		}
	}
	return name, nullable
}

func (r *Resolver) resolve(t SourceType) (string, bool) {
	key := t.key()
	if v, ok := r.cache.Load(key); ok {
		res := v.(resolved)
		return res.name, res.nullable
	}
	name, nullable := resolveUncached(r, t)
	r.cache.Store(key, resolved{name: name, nullable: nullable})
	return name, nullable
}

func resolveUncached(r *Resolver, t SourceType) (string, bool) {
	if s, ok := ScalarFor(t.Name); ok {
		return s, false
	}
	switch {
	case t.IsMap:
		return "AWSJSON", !t.NonNull
	case t.IsList:
		elem, _ := r.resolve(*t.Elem)
		return "[" + elem + "]", !t.NonNull
	case t.IsOptional:
		name, _ := r.resolve(*t.Elem)
		return name, true
	}
	if p, ok := PrimitiveFor(t.Name); ok {
		return p, false
	}
	return t.Name, !t.NonNull
}

// ResolveReturn resolves an operation return type to its fully formatted
// schema spelling, including list brackets and the '!' suffix.
//
// A single-level async wrapper is unwrapped first. The no-value type becomes
// a non-null Boolean. A non-empty explicit type overrides inference and is
// always non-null, but list brackets are still derived from the actual
// return shape.
func (r *Resolver) ResolveReturn(t SourceType, explicit string) string {
	if t.IsAsync && t.Elem != nil {
		t = *t.Elem
	}
	if t.IsVoid() {
		return "Boolean!"
	}
	if explicit != "" {
		name := explicit
		if listShaped(t) {
			name = "[" + explicit + "]"
		}
		return name + "!"
	}
	name, nullable := r.resolve(t)
	if !nullable {
		name += "!"
	}
	return name
}

// listShaped reports whether the type renders with list brackets, looking
// through optional wrappers.
func listShaped(t SourceType) bool {
	for {
		switch {
		case t.IsList:
			return true
		case t.IsOptional && t.Elem != nil:
			t = *t.Elem
		default:
			return false
		}
	}
}
