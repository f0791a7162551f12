package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlangtools/dsense/internal/ast"
)

func named(name string) ast.Base {
	return ast.Base{Name: name, Line: 1}
}

func variable(name, typ string) ast.Variable {
	return ast.Variable{Base: named(name), Type: typ}
}

func method(name, returnType string, params ...ast.Variable) ast.Function {
	return ast.Function{
		Templateable: ast.Templateable{Base: named(name)},
		ReturnType:   returnType,
		Parameters:   params,
	}
}

func class(name string, bases []string, vars []ast.Variable, funcs []ast.Function) ast.Inherits {
	return ast.Inherits{
		Struct: ast.Struct{
			Templateable: ast.Templateable{Base: named(name)},
			Variables:    vars,
			Functions:    funcs,
		},
		BaseClasses: bases,
	}
}

func TestMembersOfPrimitive(t *testing.T) {
	c := New(ast.NewModule("m"), nil)
	members := c.MembersOfType("float")

	require.Contains(t, members, "max")
	assert.Equal(t, Member{Type: "float", Kind: KindMethod}, members["max"])
	assert.Equal(t, "size_t", members["sizeof"].Type)
}

func TestMembersOfArray(t *testing.T) {
	c := New(nil, nil)
	members := c.MembersOfType("int[]")

	require.Contains(t, members, "length")
	assert.Equal(t, "size_t", members["length"].Type)
	assert.Equal(t, "int[]", members["dup"].Type)
}

func TestInheritanceFlattening(t *testing.T) {
	m := ast.NewModule("m")
	m.Classes = []ast.Inherits{
		class("B", nil, []ast.Variable{variable("x", "int")}, nil),
		class("D", []string{"B"}, []ast.Variable{variable("y", "string")}, nil),
	}
	c := New(m, nil)

	members := c.MembersOfType("D")
	assert.Equal(t, "int", members["x"].Type)
	assert.Equal(t, "string", members["y"].Type)
}

func TestDerivedShadowsBase(t *testing.T) {
	m := ast.NewModule("m")
	m.Classes = []ast.Inherits{
		class("B", nil, []ast.Variable{variable("x", "int")}, nil),
		class("D", []string{"B"}, []ast.Variable{variable("x", "string")}, nil),
	}
	c := New(m, nil)

	members := c.MembersOfType("D")
	assert.Equal(t, "string", members["x"].Type, "derived declaration wins")
}

func TestClassInfoSynthesized(t *testing.T) {
	m := ast.NewModule("m")
	m.Classes = []ast.Inherits{class("C", nil, nil, nil)}
	c := New(m, nil)

	members := c.MembersOfType("C")
	require.Contains(t, members, "classInfo")
	assert.Equal(t, Member{Type: ClassInfoType, Kind: KindMember}, members["classInfo"])
}

func TestInheritanceCycleTerminates(t *testing.T) {
	m := ast.NewModule("m")
	m.Classes = []ast.Inherits{
		class("A", []string{"B"}, []ast.Variable{variable("a", "int")}, nil),
		class("B", []string{"A"}, []ast.Variable{variable("b", "int")}, nil),
	}
	c := New(m, nil)

	members := c.MembersOfType("A")
	assert.Equal(t, "int", members["a"].Type)
	assert.Equal(t, "int", members["b"].Type)
}

func TestUnresolvedBaseIsSilent(t *testing.T) {
	m := ast.NewModule("m")
	m.Classes = []ast.Inherits{
		class("D", []string{"Missing"}, []ast.Variable{variable("y", "string")}, nil),
	}
	c := New(m, nil)

	members := c.MembersOfType("D")
	assert.Equal(t, "string", members["y"].Type)
}

func TestMethodsHaveMethodKind(t *testing.T) {
	m := ast.NewModule("m")
	m.Classes = []ast.Inherits{
		class("C", nil, nil, []ast.Function{method("run", "int")}),
	}
	c := New(m, nil)

	members := c.MembersOfType("C")
	assert.Equal(t, Member{Type: "int", Kind: KindMethod}, members["run"])
}

func TestStructsHaveNoInheritance(t *testing.T) {
	m := ast.NewModule("m")
	m.Structs = []ast.Struct{{
		Templateable: ast.Templateable{Base: named("S")},
		Variables:    []ast.Variable{variable("v", "double")},
	}}
	c := New(m, nil)

	members := c.MembersOfType("S")
	assert.Equal(t, "double", members["v"].Type)
	assert.NotContains(t, members, "classInfo")
}

func TestEnumMembers(t *testing.T) {
	m := ast.NewModule("m")
	m.Enums = []ast.Enum{{
		Base:       named("Color"),
		HasMembers: true,
		Members: []ast.EnumMember{
			{Line: 2, Name: "red", Type: "int"},
			{Line: 3, Name: "green", Type: "int"},
		},
	}}
	c := New(m, nil)

	members := c.MembersOfType("Color")
	require.Len(t, members, 2)
	assert.Equal(t, Member{Type: "int", Kind: KindEnumConstant}, members["red"])
}

func TestCurrentModuleBeforeAuxiliary(t *testing.T) {
	current := ast.NewModule("a")
	current.Classes = []ast.Inherits{
		class("Same", nil, []ast.Variable{variable("fromCurrent", "int")}, nil),
	}
	aux := ast.NewModule("b")
	aux.Classes = []ast.Inherits{
		class("Same", nil, []ast.Variable{variable("fromAux", "int")}, nil),
	}

	c := New(current, nil)
	c.AddModule(aux)

	members := c.MembersOfType("Same")
	assert.Contains(t, members, "fromCurrent", "first scope-order match wins")
	assert.NotContains(t, members, "fromAux")
}

func TestBaseClassResolvedAcrossModules(t *testing.T) {
	aux := ast.NewModule("lib")
	aux.Classes = []ast.Inherits{
		class("LibBase", nil, []ast.Variable{variable("inherited", "bool")}, nil),
	}
	current := ast.NewModule("app")
	current.Classes = []ast.Inherits{
		class("App", []string{"LibBase"}, nil, nil),
	}

	c := New(current, nil)
	c.AddModule(aux)

	members := c.MembersOfType("App")
	assert.Equal(t, "bool", members["inherited"].Type)
}

func TestUnknownTypeYieldsEmpty(t *testing.T) {
	c := New(ast.NewModule("m"), nil)
	members := c.MembersOfType("NoSuchType")
	assert.Empty(t, members)

	assert.Empty(t, New(nil, nil).MembersOfType("anything"))
}

func TestStructsContaining(t *testing.T) {
	m := ast.NewModule("m")
	m.Structs = []ast.Struct{
		{Templateable: ast.Templateable{Base: named("Outer")}, BodyStart: 10, BodyEnd: 100},
		{Templateable: ast.Templateable{Base: named("Inner")}, BodyStart: 30, BodyEnd: 60},
		{Templateable: ast.Templateable{Base: named("Sibling")}, BodyStart: 110, BodyEnd: 150},
	}
	c := New(m, nil)

	enclosing := c.StructsContaining(40)
	require.Len(t, enclosing, 2)
	assert.Equal(t, "Outer", enclosing[0].Name)
	assert.Equal(t, "Inner", enclosing[1].Name)

	assert.Empty(t, c.StructsContaining(5))
	assert.Empty(t, New(nil, nil).StructsContaining(0))
}

func TestMemberKindString(t *testing.T) {
	assert.Equal(t, "member", KindMember.String())
	assert.Equal(t, "method", KindMethod.String())
	assert.Equal(t, "enum-constant", KindEnumConstant.String())
}
