package main

import (
	"encoding/json"
	"os"

	"github.com/dlangtools/dsense"
)

// JSON output shapes. Field order mirrors the entity model; anonymous
// declarations render with the presentation label.

type tokenJSON struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Line  uint32 `json:"line"`
	Start int    `json:"start"`
}

type moduleJSON struct {
	Name       string          `json:"name,omitempty"`
	Imports    []string        `json:"imports,omitempty"`
	Classes    []aggregateJSON `json:"classes,omitempty"`
	Interfaces []aggregateJSON `json:"interfaces,omitempty"`
	Structs    []aggregateJSON `json:"structs,omitempty"`
	Unions     []aggregateJSON `json:"unions,omitempty"`
	Functions  []functionJSON  `json:"functions,omitempty"`
	Variables  []variableJSON  `json:"variables,omitempty"`
	Enums      []enumJSON      `json:"enums,omitempty"`
	Aliases    []aliasJSON     `json:"aliases,omitempty"`
}

type aggregateJSON struct {
	Name       string         `json:"name"`
	Line       uint32         `json:"line"`
	Protection string         `json:"protection,omitempty"`
	Bases      []string       `json:"bases,omitempty"`
	Functions  []functionJSON `json:"functions,omitempty"`
	Variables  []variableJSON `json:"variables,omitempty"`
	Aliases    []aliasJSON    `json:"aliases,omitempty"`
}

type functionJSON struct {
	Name       string   `json:"name"`
	Line       uint32   `json:"line"`
	Signature  string   `json:"signature"`
	Protection string   `json:"protection,omitempty"`
	Attributes []string `json:"attributes,omitempty"`
}

type variableJSON struct {
	Name       string `json:"name"`
	Line       uint32 `json:"line"`
	Type       string `json:"type"`
	Protection string `json:"protection,omitempty"`
}

type enumJSON struct {
	Name       string           `json:"name"`
	Line       uint32           `json:"line"`
	HasMembers bool             `json:"has_members"`
	Members    []enumMemberJSON `json:"members,omitempty"`
}

type enumMemberJSON struct {
	Name string `json:"name"`
	Line uint32 `json:"line"`
	Type string `json:"type"`
}

type aliasJSON struct {
	Name string `json:"name"`
	Line uint32 `json:"line"`
	Type string `json:"type"`
}

type completionJSON struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Kind string `json:"kind"`
}

func moduleToJSON(m *dsense.Module) moduleJSON {
	out := moduleJSON{
		Name:    m.Name,
		Imports: m.Imports,
	}
	for i := range m.Classes {
		out.Classes = append(out.Classes, inheritsToJSON(&m.Classes[i]))
	}
	for i := range m.Interfaces {
		out.Interfaces = append(out.Interfaces, inheritsToJSON(&m.Interfaces[i]))
	}
	for i := range m.Structs {
		out.Structs = append(out.Structs, structToJSON(&m.Structs[i]))
	}
	for i := range m.Unions {
		out.Unions = append(out.Unions, structToJSON(&m.Unions[i]))
	}
	for i := range m.Functions {
		out.Functions = append(out.Functions, functionToJSON(&m.Functions[i]))
	}
	for i := range m.Variables {
		out.Variables = append(out.Variables, variableToJSON(&m.Variables[i]))
	}
	for i := range m.Enums {
		out.Enums = append(out.Enums, enumToJSON(&m.Enums[i]))
	}
	for i := range m.Aliases {
		out.Aliases = append(out.Aliases, aliasToJSON(&m.Aliases[i]))
	}
	return out
}

func inheritsToJSON(inh *dsense.Inherits) aggregateJSON {
	out := structToJSON(&inh.Struct)
	out.Bases = inh.BaseClasses
	return out
}

func structToJSON(s *dsense.Struct) aggregateJSON {
	out := aggregateJSON{
		Name:       s.DisplayName(),
		Line:       s.Line,
		Protection: protectionLabel(s.Protection),
	}
	for i := range s.Functions {
		out.Functions = append(out.Functions, functionToJSON(&s.Functions[i]))
	}
	for i := range s.Variables {
		out.Variables = append(out.Variables, variableToJSON(&s.Variables[i]))
	}
	for i := range s.Aliases {
		out.Aliases = append(out.Aliases, aliasToJSON(&s.Aliases[i]))
	}
	return out
}

func functionToJSON(f *dsense.Function) functionJSON {
	return functionJSON{
		Name:       f.DisplayName(),
		Line:       f.Line,
		Signature:  f.Signature(),
		Protection: protectionLabel(f.Protection),
		Attributes: f.Attributes,
	}
}

func variableToJSON(v *dsense.Variable) variableJSON {
	return variableJSON{
		Name:       v.DisplayName(),
		Line:       v.Line,
		Type:       v.Type,
		Protection: protectionLabel(v.Protection),
	}
}

func enumToJSON(e *dsense.Enum) enumJSON {
	out := enumJSON{
		Name:       e.DisplayName(),
		Line:       e.Line,
		HasMembers: e.HasMembers,
	}
	for _, m := range e.Members {
		out.Members = append(out.Members, enumMemberJSON{
			Name: m.Name,
			Line: m.Line,
			Type: m.Type,
		})
	}
	return out
}

func aliasToJSON(a *dsense.Alias) aliasJSON {
	return aliasJSON{
		Name: a.DisplayName(),
		Line: a.Line,
		Type: a.AliasedType,
	}
}

// protectionLabel renders only explicit protections; the default level
// is omitted from output.
func protectionLabel(p dsense.Protection) string {
	if p == dsense.ProtectionDefault {
		return ""
	}
	return p.String()
}

// kindLabel buckets a token kind for presentation.
func kindLabel(kind dsense.TokenKind) string {
	switch {
	case kind.IsKeyword():
		return "keyword"
	case kind.IsOperator():
		return "operator"
	}
	switch kind {
	case dsense.TokIdentifier:
		return "identifier"
	case dsense.TokNumber:
		return "number"
	case dsense.TokString:
		return "string"
	case dsense.TokComment:
		return "comment"
	case dsense.TokWhitespace:
		return "whitespace"
	case dsense.TokEOF:
		return "eof"
	default:
		return "error"
	}
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
