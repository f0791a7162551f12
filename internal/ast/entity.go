package ast

import "strings"

// Variable is a variable or parameter declaration.
type Variable struct {
	Base
	// Type is the declared type text.
	Type string
}

// Alias is an alias (or typedef) declaration.
type Alias struct {
	Base
	// AliasedType is the type text the alias stands for.
	AliasedType string
}

// Function is a function declaration. It owns its parameters.
type Function struct {
	Templateable
	ReturnType string
	Parameters []Variable
}

// Signature renders the function as a call tip:
// returnType name(type1 name1, type2 name2, ...).
func (f *Function) Signature() string {
	var sb strings.Builder
	sb.WriteString(f.ReturnType)
	sb.WriteByte(' ')
	sb.WriteString(f.DisplayName())
	sb.WriteByte('(')
	for i := range f.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		p := &f.Parameters[i]
		sb.WriteString(p.Type)
		if p.Name != "" {
			sb.WriteByte(' ')
			sb.WriteString(p.Name)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// Struct is a struct or union declaration. BodyStart and BodyEnd are
// character offsets spanning the declaration body, used for "what
// aggregate contains this cursor position" queries.
type Struct struct {
	Templateable
	Functions []Function
	Variables []Variable
	Aliases   []Alias
	BodyStart int
	BodyEnd   int
}

// Contains reports whether the body span encloses the given offset.
func (s *Struct) Contains(offset int) bool {
	return s.BodyStart <= offset && offset <= s.BodyEnd
}

// FunctionsNamed returns every member function with the given name, in
// declaration order (all overloads).
func (s *Struct) FunctionsNamed(name string) []*Function {
	var matches []*Function
	for i := range s.Functions {
		if s.Functions[i].Name == name {
			matches = append(matches, &s.Functions[i])
		}
	}
	return matches
}

// Inherits is a class or interface declaration: a Struct plus base
// class names. BaseClasses holds raw names only; they are resolved
// lazily by the resolver, never at parse time, and may stay unresolved
// (forward reference, foreign module) without error.
type Inherits struct {
	Struct
	BaseClasses []string
}

// EnumMember is one member of an enum declaration.
type EnumMember struct {
	Line uint32
	Name string
	Type string
}

// Enum is an enum declaration. HasMembers distinguishes a member list
// (enum X {a, b}) from a manifest constant (enum x = 5).
type Enum struct {
	Base
	HasMembers bool
	Members    []EnumMember
}
