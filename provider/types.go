package provider

import (
	"go/types"

	"github.com/latticehq/gatewaygen/resolve"
)

// goTypeToSource maps a Go type to the language-neutral source type shape
// the resolver understands.
//
// Pointers become nullable wrappers, slices and arrays become lists, maps
// are dictionary-shaped, and a receive-capable channel is the async wrapper
// around its element. Named types keep their qualified name when the scalar
// registry knows it, and their bare name otherwise.
func goTypeToSource(t types.Type) resolve.SourceType {
	switch t := t.(type) {
	case *types.Alias:
		return goTypeToSource(types.Unalias(t))
	case *types.Pointer:
		return resolve.Optional(goTypeToSource(t.Elem()))
	case *types.Slice:
		if isByte(t.Elem()) {
			// []byte carries an opaque base64 payload, not a list of ints.
			return resolve.Named("string")
		}
		return resolve.List(goTypeToSource(t.Elem()))
	case *types.Array:
		return resolve.List(goTypeToSource(t.Elem()))
	case *types.Map:
		return resolve.Dict()
	case *types.Chan:
		if t.Dir() != types.SendOnly {
			return resolve.Async(goTypeToSource(t.Elem()))
		}
	case *types.Named:
		obj := t.Obj()
		if obj.Pkg() != nil {
			qualified := obj.Pkg().Name() + "." + obj.Name()
			if _, ok := resolve.ScalarFor(qualified); ok {
				return resolve.Named(qualified)
			}
		}
		return resolve.Named(obj.Name())
	case *types.Basic:
		return resolve.Named(t.Name())
	}
	return resolve.Named(t.String())
}

func isByte(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	return ok && basic.Kind() == types.Byte
}
