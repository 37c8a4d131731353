package ir

// RootType identifies which root operation type an operation belongs to.
type RootType int

const (
	RootQuery RootType = iota
	RootMutation
	RootSubscription
)

// String returns the root type name as it appears in the schema.
func (r RootType) String() string {
	switch r {
	case RootQuery:
		return "Query"
	case RootMutation:
		return "Mutation"
	case RootSubscription:
		return "Subscription"
	default:
		return "Unknown"
	}
}

// ResolverKind identifies how an operation is resolved.
type ResolverKind int

const (
	// ResolverUnit is a single call to one data source.
	ResolverUnit ResolverKind = iota

	// ResolverPipeline is an ordered chain of resolver functions.
	ResolverPipeline
)

// String returns the manifest spelling of the resolver kind.
func (k ResolverKind) String() string {
	switch k {
	case ResolverUnit:
		return "UNIT"
	case ResolverPipeline:
		return "PIPELINE"
	default:
		return "Unknown"
	}
}

// OperationDescriptor represents one resolver-backed field on a root type.
type OperationDescriptor struct {
	// Root is the root type this operation attaches to.
	Root RootType

	// FieldName is the operation field name, e.g. "getProduct".
	FieldName string

	// Description documents the operation.
	Description string

	// ReturnType is the fully formatted return type, including list
	// brackets and nullability suffix, e.g. "[Product]!".
	ReturnType string

	// Arguments in declaration order.
	Arguments []ArgumentDescriptor

	// ResolverKind selects unit or pipeline resolution.
	ResolverKind ResolverKind

	// DataSource names the backing data source. Set iff ResolverKind is
	// ResolverUnit.
	DataSource string

	// Functions is the ordered pipeline function list. Non-empty iff
	// ResolverKind is ResolverPipeline.
	Functions []string

	// Directives applied to the operation field.
	Directives []AppliedDirective

	// Deployment metadata, carried opaquely for the manifest emitter.

	// DataSourceType is the manifest data-source type. Empty means
	// "AWS_LAMBDA".
	DataSourceType string

	// ResourceArn identifies the backing compute resource.
	ResourceArn string

	// ServiceRoleArn is the IAM role the gateway assumes to invoke the
	// resource. Optional.
	ServiceRoleArn string
}

// ArgumentDescriptor represents a single operation argument.
type ArgumentDescriptor struct {
	// Name is the argument name.
	Name string

	// Description documents the argument.
	Description string

	// Type is the resolved type name without nullability suffix.
	Type string

	// Nullable reports whether the argument may be omitted or null.
	Nullable bool
}

// DataSourceDescriptor is a deduplicated backing resource reference derived
// from operations by the manifest emitter. It is never part of the input IR.
type DataSourceDescriptor struct {
	// Name is the declared data-source name.
	Name string

	// Type is the data-source type, e.g. "AWS_LAMBDA".
	Type string

	// ResourceArn identifies the backing resource.
	ResourceArn string

	// ServiceRoleArn is the invocation role. Optional.
	ServiceRoleArn string
}
