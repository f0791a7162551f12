package ast

// Module is the top-level entity for one parsed source unit. It owns
// every declaration by value.
type Module struct {
	Name       string
	Imports    []string
	Interfaces []Inherits
	Classes    []Inherits
	Structs    []Struct
	Unions     []Struct
	Functions  []Function
	Variables  []Variable
	Enums      []Enum
	Aliases    []Alias
}

// NewModule creates an empty module with the given name.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// Merge appends other's declarations onto m, preserving order. Used to
// combine partial parses of the same logical unit. The module name is
// taken from other only when m has none.
func (m *Module) Merge(other *Module) {
	if other == nil {
		return
	}
	if m.Name == "" {
		m.Name = other.Name
	}
	m.Imports = append(m.Imports, other.Imports...)
	m.Interfaces = append(m.Interfaces, other.Interfaces...)
	m.Classes = append(m.Classes, other.Classes...)
	m.Structs = append(m.Structs, other.Structs...)
	m.Unions = append(m.Unions, other.Unions...)
	m.Functions = append(m.Functions, other.Functions...)
	m.Variables = append(m.Variables, other.Variables...)
	m.Enums = append(m.Enums, other.Enums...)
	m.Aliases = append(m.Aliases, other.Aliases...)
}

// Aggregates returns every struct, interface, class, and union in
// declaration-list order (interfaces, classes, structs, unions). The
// returned pointers index into the module's own storage.
func (m *Module) Aggregates() []*Struct {
	out := make([]*Struct, 0,
		len(m.Interfaces)+len(m.Classes)+len(m.Structs)+len(m.Unions))
	for i := range m.Interfaces {
		out = append(out, &m.Interfaces[i].Struct)
	}
	for i := range m.Classes {
		out = append(out, &m.Classes[i].Struct)
	}
	for i := range m.Structs {
		out = append(out, &m.Structs[i])
	}
	for i := range m.Unions {
		out = append(out, &m.Unions[i])
	}
	return out
}
