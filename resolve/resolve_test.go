package resolve

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name         string
		typ          SourceType
		override     string
		wantName     string
		wantNullable bool
	}{
		{
			name:         "scalar registry wins over primitive fallback",
			typ:          Named("time.Time"),
			wantName:     "AWSDateTime",
			wantNullable: false,
		},
		{
			name:         "override wins over registry",
			typ:          Named("time.Time"),
			override:     "AWSTimestamp",
			wantName:     "AWSTimestamp",
			wantNullable: false,
		},
		{
			name:         "dictionary resolves to opaque JSON, nullable",
			typ:          Dict(),
			wantName:     "AWSJSON",
			wantNullable: true,
		},
		{
			name:         "collection recurses on element",
			typ:          List(Named("string")),
			wantName:     "[String]",
			wantNullable: true,
		},
		{
			name:         "collection of custom type",
			typ:          List(Named("Product")),
			wantName:     "[Product]",
			wantNullable: true,
		},
		{
			name:         "non-null annotation on collection",
			typ:          SourceType{IsList: true, Elem: &SourceType{Name: "Product"}, NonNull: true},
			wantName:     "[Product]",
			wantNullable: false,
		},
		{
			name:         "optional wrapper forces nullable",
			typ:          Optional(Named("int")),
			wantName:     "Int",
			wantNullable: true,
		},
		{
			name:         "primitive string",
			typ:          Named("string"),
			wantName:     "String",
			wantNullable: false,
		},
		{
			name:         "primitive int64",
			typ:          Named("int64"),
			wantName:     "Int",
			wantNullable: false,
		},
		{
			name:         "primitive float",
			typ:          Named("float64"),
			wantName:     "Float",
			wantNullable: false,
		},
		{
			name:         "primitive bool",
			typ:          Named("bool"),
			wantName:     "Boolean",
			wantNullable: false,
		},
		{
			name:         "uuid maps to ID",
			typ:          Named("uuid.UUID"),
			wantName:     "ID",
			wantNullable: false,
		},
		{
			name:         "reference type defaults to nullable",
			typ:          Named("Product"),
			wantName:     "Product",
			wantNullable: true,
		},
		{
			name:         "reference type with explicit non-null",
			typ:          SourceType{Name: "Product", NonNull: true},
			wantName:     "Product",
			wantNullable: false,
		},
		{
			name:         "override on list keeps brackets",
			typ:          List(Named("int")),
			override:     "AWSTimestamp",
			wantName:     "[AWSTimestamp]",
			wantNullable: true,
		},
		{
			name:         "override on optional keeps nullability",
			typ:          Optional(Named("int")),
			override:     "AWSTimestamp",
			wantName:     "AWSTimestamp",
			wantNullable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver()
			name, nullable := r.Resolve(tt.typ, tt.override)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantNullable, nullable)
		})
	}
}

func TestResolveReturn(t *testing.T) {
	tests := []struct {
		name     string
		typ      SourceType
		explicit string
		want     string
	}{
		{
			name: "void becomes non-null boolean",
			typ:  Void(),
			want: "Boolean!",
		},
		{
			name: "async wrapper unwraps one level",
			typ:  Async(Named("Product")),
			want: "Product",
		},
		{
			name: "async void becomes non-null boolean",
			typ:  Async(Void()),
			want: "Boolean!",
		},
		{
			name: "non-null primitive gets suffix",
			typ:  Named("string"),
			want: "String!",
		},
		{
			name: "nullable reference has no suffix",
			typ:  Named("Product"),
			want: "Product",
		},
		{
			name: "non-null reference",
			typ:  SourceType{Name: "Product", NonNull: true},
			want: "Product!",
		},
		{
			name: "list of references",
			typ:  List(Named("Product")),
			want: "[Product]",
		},
		{
			name:     "explicit override is non-null",
			typ:      Named("int"),
			explicit: "AWSTimestamp",
			want:     "AWSTimestamp!",
		},
		{
			name:     "explicit override on list keeps brackets",
			typ:      List(Named("int")),
			explicit: "AWSTimestamp",
			want:     "[AWSTimestamp]!",
		},
		{
			name:     "explicit override on async list keeps brackets",
			typ:      Async(List(Named("int"))),
			explicit: "AWSTimestamp",
			want:     "[AWSTimestamp]!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver()
			assert.Equal(t, tt.want, r.ResolveReturn(tt.typ, tt.explicit))
		})
	}
}

func TestResolve_NullabilityInversion(t *testing.T) {
	// Value-like primitives without a nullable wrapper resolve non-null;
	// wrapped ones resolve nullable.
	r := NewResolver()
	for _, prim := range []string{"string", "int", "float64", "bool"} {
		_, nullable := r.Resolve(Named(prim), "")
		assert.False(t, nullable, "bare %s must be non-null", prim)

		_, nullable = r.Resolve(Optional(Named(prim)), "")
		assert.True(t, nullable, "optional %s must be nullable", prim)
	}
}

func TestResolve_CacheIsConcurrencySafe(t *testing.T) {
	r := NewResolver()
	types := []SourceType{
		Named("string"),
		Named("time.Time"),
		List(Named("Product")),
		Optional(Named("int")),
		Dict(),
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, typ := range types {
					r.Resolve(typ, "")
				}
			}
		}()
	}
	wg.Wait()

	name, _ := r.Resolve(Named("time.Time"), "")
	assert.Equal(t, "AWSDateTime", name)
}

func TestResolve_CacheHitReturnsSameResult(t *testing.T) {
	r := NewResolver()
	for i := 0; i < 3; i++ {
		name, nullable := r.Resolve(List(Named("Product")), "")
		assert.Equal(t, "[Product]", name, fmt.Sprintf("iteration %d", i))
		assert.True(t, nullable)
	}
}

func TestScalarFor(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"time.Time", "AWSDateTime"},
		{"civil.Date", "AWSDate"},
		{"civil.Time", "AWSTime"},
		{"uuid.UUID", "ID"},
		{"mail.Address", "AWSEmail"},
		{"url.URL", "AWSURL"},
		{"netip.Addr", "AWSIPAddress"},
		{"json.RawMessage", "AWSJSON"},
	}
	for _, tt := range tests {
		got, ok := ScalarFor(tt.source)
		assert.True(t, ok, tt.source)
		assert.Equal(t, tt.want, got)
	}

	_, ok := ScalarFor("Product")
	assert.False(t, ok)
}
