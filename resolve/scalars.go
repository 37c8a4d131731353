package resolve

// scalars maps well-known semantic source types, by qualified name, to the
// gateway platform's custom scalar names. The platform predeclares these
// scalars, so the SDL emitter never declares them.
var scalars = map[string]string{
	"time.Time":       "AWSDateTime",
	"civil.Date":      "AWSDate",
	"civil.Time":      "AWSTime",
	"uuid.UUID":       "ID",
	"mail.Address":    "AWSEmail",
	"url.URL":         "AWSURL",
	"netip.Addr":      "AWSIPAddress",
	"json.RawMessage": "AWSJSON",
}

// ScalarFor looks up the platform scalar for a qualified semantic type name.
func ScalarFor(name string) (string, bool) {
	s, ok := scalars[name]
	return s, ok
}

// primitives maps built-in source primitives to schema scalar names.
var primitives = map[string]string{
	"string":  "String",
	"int":     "Int",
	"int8":    "Int",
	"int16":   "Int",
	"int32":   "Int",
	"int64":   "Int",
	"uint":    "Int",
	"uint8":   "Int",
	"uint16":  "Int",
	"uint32":  "Int",
	"uint64":  "Int",
	"float32": "Float",
	"float64": "Float",
	"bool":    "Boolean",
}

// PrimitiveFor looks up the schema scalar for a built-in primitive name.
func PrimitiveFor(name string) (string, bool) {
	s, ok := primitives[name]
	return s, ok
}
