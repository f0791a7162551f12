package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func propertyType(t *testing.T, props []Property, name string) string {
	t.Helper()
	for _, p := range props {
		if p.Name == name {
			return p.Type
		}
	}
	t.Fatalf("property %q not found", name)
	return ""
}

func TestFloatPropertiesUsePlaceholder(t *testing.T) {
	props, ok := PrimitiveProperties("float")
	require.True(t, ok)
	assert.Equal(t, ReceiverPlaceholder, propertyType(t, props, "max"))
	assert.Equal(t, "int", propertyType(t, props, "dig"))
	assert.Equal(t, "size_t", propertyType(t, props, "sizeof"))
}

func TestIntegralProperties(t *testing.T) {
	for _, name := range []string{"byte", "ubyte", "int", "uint", "long", "ulong", "cent"} {
		props, ok := PrimitiveProperties(name)
		require.True(t, ok, "primitive %q", name)
		assert.Equal(t, ReceiverPlaceholder, propertyType(t, props, "max"), "max of %q", name)
		assert.Equal(t, ReceiverPlaceholder, propertyType(t, props, "min"), "min of %q", name)
	}
}

func TestCommonTypesHaveNoMinMax(t *testing.T) {
	props, ok := PrimitiveProperties("bool")
	require.True(t, ok)
	for _, p := range props {
		assert.NotEqual(t, "max", p.Name)
		assert.NotEqual(t, "min", p.Name)
	}
}

func TestUnknownPrimitive(t *testing.T) {
	_, ok := PrimitiveProperties("NoSuchType")
	assert.False(t, ok)
	assert.False(t, IsPrimitive("NoSuchType"))
	assert.True(t, IsPrimitive("dchar"))
}

func TestArrayProperties(t *testing.T) {
	props := ArrayProperties()
	assert.Equal(t, "size_t", propertyType(t, props, "length"))
	assert.Equal(t, ReceiverPlaceholder, propertyType(t, props, "dup"))
	assert.Equal(t, "void*", propertyType(t, props, "ptr"))
}

func TestSubstitute(t *testing.T) {
	assert.Equal(t, "float", Substitute(ReceiverPlaceholder, "float"))
	assert.Equal(t, "int", Substitute("int", "float"))
	assert.Equal(t, "int[]", Substitute(ReceiverPlaceholder, "int[]"))
}
