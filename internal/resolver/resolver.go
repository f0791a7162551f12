// Package resolver answers member and call-signature queries over one
// or more parsed modules.
//
// Every query is total: unknown names, unresolved base classes, and
// missing containers all degrade to an empty result rather than an
// error. The resolver is best-effort editor assistance over possibly
// incomplete project knowledge, never proof-grade semantics.
package resolver

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/dlangtools/dsense/internal/ast"
	"github.com/dlangtools/dsense/internal/builtin"
	"github.com/dlangtools/dsense/internal/types"
)

// ClassInfoType is the fixed reflective type of the synthesized
// classInfo member every class and interface exposes.
const ClassInfoType = "ClassInfo"

// MemberKind classifies a resolved member.
type MemberKind int

const (
	// KindMember is a field.
	KindMember MemberKind = iota
	// KindMethod is a member function or built-in property.
	KindMethod
	// KindEnumConstant is an enum member.
	KindEnumConstant
)

// String returns the presentation name of the kind.
func (k MemberKind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindEnumConstant:
		return "enum-constant"
	default:
		return "member"
	}
}

// Member is one resolved member: its declared type and kind.
type Member struct {
	Type string
	Kind MemberKind
}

// Context holds one designated current module plus the auxiliary
// modules (already-parsed imports) queries resolve against. It never
// mutates any module it holds; populating the auxiliary collection is
// append-only.
type Context struct {
	// Current is the module the editor buffer was parsed into.
	Current *ast.Module
	// Auxiliary are imported units, scanned after Current in the fixed
	// resolution order.
	Auxiliary []*ast.Module
	// ImportDirs are the import search directories. The resolver does
	// not read them; they are carried for the collaborator that locates
	// and parses imported files.
	ImportDirs []string

	types.Logger
}

// New returns a Context for the given current module.
func New(current *ast.Module, logger *slog.Logger) *Context {
	return &Context{
		Current: current,
		Logger:  types.Logger{L: logger},
	}
}

// AddModule appends an auxiliary module. Append-only; existing entries
// are never replaced.
func (c *Context) AddModule(m *ast.Module) {
	if m != nil {
		c.Auxiliary = append(c.Auxiliary, m)
	}
}

// AddImportDir appends an import search directory.
func (c *Context) AddImportDir(dir string) {
	c.ImportDirs = append(c.ImportDirs, dir)
}

// modules returns the scan order: current module first, then every
// auxiliary module.
func (c *Context) modules() []*ast.Module {
	mods := make([]*ast.Module, 0, len(c.Auxiliary)+1)
	if c.Current != nil {
		mods = append(mods, c.Current)
	}
	return append(mods, c.Auxiliary...)
}

// MembersOfType returns the members type name exposes, keyed by member
// name. Resolution order, first match wins: array built-ins, primitive
// built-ins, classes/interfaces (inheritance flattened), structs/unions,
// enums. No match yields an empty map.
func (c *Context) MembersOfType(name string) map[string]Member {
	members := make(map[string]Member)

	if strings.HasSuffix(name, "[]") {
		for _, p := range builtin.ArrayProperties() {
			members[p.Name] = Member{Type: builtin.Substitute(p.Type, name), Kind: KindMethod}
		}
		return members
	}

	if props, ok := builtin.PrimitiveProperties(name); ok {
		for _, p := range props {
			members[p.Name] = Member{Type: builtin.Substitute(p.Type, name), Kind: KindMethod}
		}
		return members
	}

	if inh := c.findInherits(name); inh != nil {
		visited := map[string]bool{name: true}
		c.flattenInherits(inh, members, visited)
		setIfAbsent(members, "classInfo", Member{Type: ClassInfoType, Kind: KindMember})
		c.traceQuery("members via inheritance", name, len(members))
		return members
	}

	if s := c.findPlainAggregate(name); s != nil {
		collectOwn(s, members)
		c.traceQuery("members via struct/union", name, len(members))
		return members
	}

	if e := c.findEnum(name); e != nil {
		for _, member := range e.Members {
			setIfAbsent(members, member.Name, Member{Type: member.Type, Kind: KindEnumConstant})
		}
		c.traceQuery("members via enum", name, len(members))
		return members
	}

	c.traceQuery("no match", name, 0)
	return members
}

// flattenInherits unions a class's own members with every base class's
// member map. First write wins, so a derived declaration shadows any
// same-named ancestor entry. The visited set bounds recursion over
// self-referential or mutually-referential inheritance.
func (c *Context) flattenInherits(inh *ast.Inherits, members map[string]Member, visited map[string]bool) {
	collectOwn(&inh.Struct, members)
	for _, baseName := range inh.BaseClasses {
		if visited[baseName] {
			continue
		}
		visited[baseName] = true
		base := c.findInherits(baseName)
		if base == nil {
			// Unresolved base (forward reference, foreign module):
			// silently contributes nothing.
			continue
		}
		c.flattenInherits(base, members, visited)
	}
}

// collectOwn adds an aggregate's own variables and functions.
func collectOwn(s *ast.Struct, members map[string]Member) {
	for i := range s.Variables {
		v := &s.Variables[i]
		setIfAbsent(members, v.Name, Member{Type: v.Type, Kind: KindMember})
	}
	for i := range s.Functions {
		f := &s.Functions[i]
		setIfAbsent(members, f.Name, Member{Type: f.ReturnType, Kind: KindMethod})
	}
}

func setIfAbsent(members map[string]Member, name string, m Member) {
	if name == "" {
		return
	}
	if _, exists := members[name]; !exists {
		members[name] = m
	}
}

// findInherits returns the first class or interface with the given name
// in scope order: current module, then auxiliaries. Two same-named
// classes in different modules are ambiguous; the first scope-order
// match wins.
func (c *Context) findInherits(name string) *ast.Inherits {
	if name == "" {
		return nil
	}
	for _, mod := range c.modules() {
		for i := range mod.Classes {
			if mod.Classes[i].Name == name {
				return &mod.Classes[i]
			}
		}
		for i := range mod.Interfaces {
			if mod.Interfaces[i].Name == name {
				return &mod.Interfaces[i]
			}
		}
	}
	return nil
}

// findPlainAggregate returns the first struct or union with the given
// name in scope order.
func (c *Context) findPlainAggregate(name string) *ast.Struct {
	if name == "" {
		return nil
	}
	for _, mod := range c.modules() {
		for i := range mod.Structs {
			if mod.Structs[i].Name == name {
				return &mod.Structs[i]
			}
		}
		for i := range mod.Unions {
			if mod.Unions[i].Name == name {
				return &mod.Unions[i]
			}
		}
	}
	return nil
}

// findEnum returns the first enum with the given name in scope order.
func (c *Context) findEnum(name string) *ast.Enum {
	if name == "" {
		return nil
	}
	for _, mod := range c.modules() {
		for i := range mod.Enums {
			if mod.Enums[i].Name == name {
				return &mod.Enums[i]
			}
		}
	}
	return nil
}

// StructsContaining returns every struct, interface, class, and union
// in the current module whose body span encloses the cursor position,
// in declaration order. Nested types yield multiple results.
func (c *Context) StructsContaining(position int) []*ast.Struct {
	if c.Current == nil {
		return nil
	}
	var enclosing []*ast.Struct
	for _, agg := range c.Current.Aggregates() {
		if agg.Contains(position) {
			enclosing = append(enclosing, agg)
		}
	}
	sort.SliceStable(enclosing, func(i, j int) bool {
		return enclosing[i].BodyStart < enclosing[j].BodyStart
	})
	return enclosing
}

func (c *Context) traceQuery(stage, name string, count int) {
	if c.TraceEnabled() {
		c.Trace("members query",
			slog.String("stage", stage),
			slog.String("type", name),
			slog.Int("members", count))
	}
}
