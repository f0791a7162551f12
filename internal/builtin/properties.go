// Package builtin provides the registry of compiler-synthesized
// pseudo-members for primitive and array types (.sizeof, .max, ...).
//
// The registry is pure data: constructed once on first use, immutable
// afterwards, safe for concurrent readers.
package builtin

import (
	"strings"
	"sync"
)

// ReceiverPlaceholder is the literal token used as a member's declared
// type when the member has the same type as the receiver. It is
// substituted textually at query time, e.g. float.max has type float.
const ReceiverPlaceholder = "<#>"

// Property is one synthesized pseudo-member: its name and declared type.
type Property struct {
	Name string
	Type string
}

// category is a closed set of primitive-type groupings.
type category int

const (
	categoryCommon category = iota // char, bool, void
	categoryIntegral
	categoryFloat
	categoryArray
)

// commonProperties are synthesized on every type.
var commonProperties = []Property{
	{"init", ReceiverPlaceholder},
	{"sizeof", "size_t"},
	{"alignof", "size_t"},
	{"mangleof", "string"},
	{"stringof", "string"},
}

// integralProperties extend the common set on integer types.
var integralProperties = []Property{
	{"max", ReceiverPlaceholder},
	{"min", ReceiverPlaceholder},
}

// floatProperties extend the common set on floating point types.
var floatProperties = []Property{
	{"infinity", ReceiverPlaceholder},
	{"nan", ReceiverPlaceholder},
	{"dig", "int"},
	{"epsilon", ReceiverPlaceholder},
	{"mant_dig", "int"},
	{"max_10_exp", "int"},
	{"max_exp", "int"},
	{"min_10_exp", "int"},
	{"min_exp", "int"},
	{"max", ReceiverPlaceholder},
	{"min_normal", ReceiverPlaceholder},
	{"re", ReceiverPlaceholder},
	{"im", ReceiverPlaceholder},
}

// arrayProperties are synthesized on any T[].
var arrayProperties = []Property{
	{"init", ReceiverPlaceholder},
	{"sizeof", "size_t"},
	{"alignof", "size_t"},
	{"mangleof", "string"},
	{"stringof", "string"},
	{"length", "size_t"},
	{"dup", ReceiverPlaceholder},
	{"idup", ReceiverPlaceholder},
	{"reverse", ReceiverPlaceholder},
	{"sort", ReceiverPlaceholder},
	{"ptr", "void*"},
}

// primitiveCategories maps each concrete primitive type name to its
// category.
var primitiveCategories = map[string]category{
	"bool":  categoryCommon,
	"void":  categoryCommon,
	"char":  categoryCommon,
	"wchar": categoryCommon,
	"dchar": categoryCommon,

	"byte":   categoryIntegral,
	"ubyte":  categoryIntegral,
	"short":  categoryIntegral,
	"ushort": categoryIntegral,
	"int":    categoryIntegral,
	"uint":   categoryIntegral,
	"long":   categoryIntegral,
	"ulong":  categoryIntegral,
	"cent":   categoryIntegral,
	"ucent":  categoryIntegral,
	"size_t": categoryIntegral,

	"float":   categoryFloat,
	"double":  categoryFloat,
	"real":    categoryFloat,
	"ifloat":  categoryFloat,
	"idouble": categoryFloat,
	"ireal":   categoryFloat,
	"cfloat":  categoryFloat,
	"cdouble": categoryFloat,
	"creal":   categoryFloat,
}

// registry holds the constructed member tables per category.
type registry struct {
	byCategory map[category][]Property
}

var loadRegistry = sync.OnceValue(func() *registry {
	r := &registry{byCategory: make(map[category][]Property, 4)}
	r.byCategory[categoryCommon] = commonProperties
	r.byCategory[categoryIntegral] = merge(commonProperties, integralProperties)
	r.byCategory[categoryFloat] = merge(commonProperties, floatProperties)
	r.byCategory[categoryArray] = arrayProperties
	return r
})

func merge(base, extra []Property) []Property {
	out := make([]Property, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}

// ArrayProperties returns the pseudo-members of any array type. The
// returned slice is shared; callers must not mutate it.
func ArrayProperties() []Property {
	return loadRegistry().byCategory[categoryArray]
}

// PrimitiveProperties returns the pseudo-members of a primitive type
// name, or (nil, false) when the name is not a known primitive. The
// returned slice is shared; callers must not mutate it.
func PrimitiveProperties(typeName string) ([]Property, bool) {
	cat, ok := primitiveCategories[typeName]
	if !ok {
		return nil, false
	}
	return loadRegistry().byCategory[cat], true
}

// IsPrimitive reports whether typeName is a known primitive type.
func IsPrimitive(typeName string) bool {
	_, ok := primitiveCategories[typeName]
	return ok
}

// Substitute resolves the receiver placeholder in a member type against
// the receiver type name.
func Substitute(memberType, receiver string) string {
	if !strings.Contains(memberType, ReceiverPlaceholder) {
		return memberType
	}
	return strings.ReplaceAll(memberType, ReceiverPlaceholder, receiver)
}
