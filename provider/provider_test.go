package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticehq/gatewaygen/ir"
)

func buildFixtureSchema(t *testing.T) (*ir.Schema, []Diagnostic) {
	t.Helper()
	p := &SourceProvider{}
	schema, diags, err := p.BuildSchema(context.Background(), Options{
		Packages: []string{"./testdata/src"},
	})
	require.NoError(t, err)
	require.NotNil(t, schema)
	return schema, diags
}

func findOperation(t *testing.T, s *ir.Schema, fieldName string) ir.OperationDescriptor {
	t.Helper()
	for _, op := range s.Operations {
		if op.FieldName == fieldName {
			return op
		}
	}
	t.Fatalf("operation %q not extracted", fieldName)
	return ir.OperationDescriptor{}
}

func TestBuildSchema_Object(t *testing.T) {
	schema, _ := buildFixtureSchema(t)

	desc := schema.FindType("Product")
	require.NotNil(t, desc)
	obj, ok := desc.(*ir.ObjectDescriptor)
	require.True(t, ok)

	assert.Equal(t, "Product is a product listed for sale.", obj.Description)
	require.Len(t, obj.Directives, 1)
	assert.Equal(t, "aws_api_key", obj.Directives[0].Name)

	byName := make(map[string]ir.FieldDescriptor)
	for _, f := range obj.Fields {
		byName[f.Name] = f
	}

	tests := []struct {
		field    string
		typ      string
		nullable bool
	}{
		{"id", "ID", false},
		{"name", "String", false},
		{"description", "String", true},
		{"price", "Float", false},
		{"createdAt", "AWSDateTime", false},
		{"tags", "[String]", true},
		{"title", "String", false},
	}
	for _, tt := range tests {
		f, ok := byName[tt.field]
		require.True(t, ok, "field %q not extracted", tt.field)
		assert.Equal(t, tt.typ, f.Type, tt.field)
		assert.Equal(t, tt.nullable, f.Nullable, tt.field)
	}

	require.NotNil(t, byName["title"].Deprecated)
	assert.Equal(t, "use name", *byName["title"].Deprecated)

	_, ok = byName["secret"]
	assert.False(t, ok, `fields tagged "-" must be skipped`)
}

func TestBuildSchema_Input(t *testing.T) {
	schema, _ := buildFixtureSchema(t)

	desc := schema.FindType("ProductFilter")
	require.NotNil(t, desc)
	in, ok := desc.(*ir.InputDescriptor)
	require.True(t, ok)
	require.Len(t, in.Fields, 2)

	assert.Equal(t, "query", in.Fields[0].Name)
	assert.True(t, in.Fields[0].Nullable, "pointer field must be nullable")

	assert.Equal(t, "limit", in.Fields[1].Name)
	assert.Equal(t, "Int", in.Fields[1].Type)
	assert.True(t, in.Fields[1].Nullable, "nullable tag must override the value default")
}

func TestBuildSchema_Enum(t *testing.T) {
	schema, _ := buildFixtureSchema(t)

	desc := schema.FindType("Status")
	require.NotNil(t, desc)
	enum, ok := desc.(*ir.EnumDescriptor)
	require.True(t, ok)

	require.Len(t, enum.Values, 2)
	assert.Equal(t, "ACTIVE", enum.Values[0].Name, "string constant value becomes the schema name")
	assert.Equal(t, "RETIRED", enum.Values[1].Name)
}

func TestBuildSchema_Union(t *testing.T) {
	schema, _ := buildFixtureSchema(t)

	desc := schema.FindType("SearchResult")
	require.NotNil(t, desc)
	u, ok := desc.(*ir.UnionDescriptor)
	require.True(t, ok)
	assert.Equal(t, []string{"Product"}, u.Members)
}

func TestBuildSchema_Operations(t *testing.T) {
	schema, _ := buildFixtureSchema(t)

	t.Run("unit query", func(t *testing.T) {
		op := findOperation(t, schema, "getProduct")
		assert.Equal(t, ir.RootQuery, op.Root)
		assert.Equal(t, ir.ResolverUnit, op.ResolverKind)
		assert.Equal(t, "ProductsLambda", op.DataSource)
		assert.Equal(t, "arn:aws:lambda:us-east-1:123456789012:function:products", op.ResourceArn)
		assert.Equal(t, "GetProduct returns one product by identifier.", op.Description)

		require.Len(t, op.Arguments, 1, "context parameter must be skipped")
		assert.Equal(t, "id", op.Arguments[0].Name)
		assert.Equal(t, "String", op.Arguments[0].Type)
		assert.False(t, op.Arguments[0].Nullable)

		assert.Equal(t, "Product", op.ReturnType, "pointer result stays nullable")
	})

	t.Run("pipeline mutation with explicit field name", func(t *testing.T) {
		op := findOperation(t, schema, "placeOrder")
		assert.Equal(t, ir.RootMutation, op.Root)
		assert.Equal(t, ir.ResolverPipeline, op.ResolverKind)
		assert.Equal(t, []string{"ValidateCart", "CreateOrder"}, op.Functions)
		assert.Empty(t, op.DataSource)

		require.Len(t, op.Arguments, 1)
		assert.Equal(t, "filter", op.Arguments[0].Name)
		assert.Equal(t, "ProductFilter", op.Arguments[0].Type)
		assert.True(t, op.Arguments[0].Nullable)
	})

	t.Run("error-only result becomes non-null boolean", func(t *testing.T) {
		op := findOperation(t, schema, "retireProduct")
		assert.Equal(t, "Boolean!", op.ReturnType)
	})

	t.Run("explicit return override", func(t *testing.T) {
		op := findOperation(t, schema, "lastSync")
		assert.Equal(t, "AWSTimestamp!", op.ReturnType)
	})

	t.Run("subscription unwraps channel and keeps directives", func(t *testing.T) {
		op := findOperation(t, schema, "onProductChange")
		assert.Equal(t, ir.RootSubscription, op.Root)
		assert.Equal(t, "Product", op.ReturnType)
		require.Len(t, op.Directives, 1)
		assert.Equal(t, "aws_subscribe", op.Directives[0].Name)
		require.Len(t, op.Directives[0].Args, 1)
		assert.Equal(t, []string{"placeOrder"}, op.Directives[0].Args[0].Value)
	})
}

func TestBuildSchema_Diagnostics(t *testing.T) {
	schema, diags := buildFixtureSchema(t)

	require.Len(t, diags, 1)
	assert.Equal(t, "missing_resolver", diags[0].Code)
	assert.Contains(t, diags[0].Message, "orphan")
	assert.Contains(t, diags[0].Pos, "src.go:")
	assert.Contains(t, diags[0].String(), diags[0].Message)

	for _, op := range schema.Operations {
		assert.NotEqual(t, "orphan", op.FieldName, "broken operations must be excluded")
	}
}

func TestBuildSchema_ValidatesClean(t *testing.T) {
	schema, _ := buildFixtureSchema(t)
	assert.Empty(t, schema.Validate())
}

func TestBuildSchema_Errors(t *testing.T) {
	p := &SourceProvider{}

	_, _, err := p.BuildSchema(context.Background(), Options{})
	assert.ErrorContains(t, err, "no packages")

	_, _, err = p.BuildSchema(context.Background(), Options{
		Packages: []string{"./testdata/doesnotexist"},
	})
	assert.Error(t, err)
}
