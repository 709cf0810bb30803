package shapecheck

// PropType classifies a JSON-shaped value at runtime. The same tags double as
// schema leaves: a bare PropType is the shortest surface schema.
type PropType string

const (
	TypeUndefined PropType = "undefined"
	TypeNull      PropType = "null"
	TypeBoolean   PropType = "boolean"
	TypeNumber    PropType = "number"
	TypeString    PropType = "string"
	TypeArray     PropType = "array"
	TypeObject    PropType = "object"
)

var propTypes = map[PropType]struct{}{
	TypeUndefined: {},
	TypeNull:      {},
	TypeBoolean:   {},
	TypeNumber:    {},
	TypeString:    {},
	TypeArray:     {},
	TypeObject:    {},
}

// IsPropType reports whether tag is one of the seven recognized type tags.
func IsPropType(tag string) bool {
	_, ok := propTypes[PropType(tag)]
	return ok
}

// undefinedValue is the canonical representation of "no value". JSON has no
// undefined, so the engine synthesizes it for absent object properties.
type undefinedValue struct{}

// Undefined is the sentinel callers pass to validate an absent value at the
// root. Inside the engine it stands in for every missing property.
var Undefined any = undefinedValue{}

// DefaultMaxDepth bounds schema and data recursion when Opt.MaxDepth is zero.
// Cyclic schema trees terminate with a max_depth error instead of recursing
// forever.
const DefaultMaxDepth = 1000

// Opt bundles per-call options for Normalize and Validate. The zero value is
// the default configuration: strict unknown-key handling and DefaultMaxDepth.
type Opt struct {
	// Permissive flips the default additionalProperties outcome for implicit
	// object schemas: unknown keys are accepted instead of rejected. Explicit
	// additionalProperties settings always win.
	Permissive bool
	// MaxDepth caps recursion depth; 0 selects DefaultMaxDepth.
	MaxDepth int
}

// lastOpt resolves a variadic option list (last one wins) and applies
// defaults.
func lastOpt(opts []Opt) Opt {
	var o Opt
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}
