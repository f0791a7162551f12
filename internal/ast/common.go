// Package ast provides the symbol/entity model for parsed D modules.
//
// A Module owns every entity declared in one source unit by value; the
// Module is the sole owner and nothing outlives it. Once handed to the
// resolver a Module is never mutated.
package ast

// AnonymousLabel is the sentinel rendered for unnamed aggregates at the
// presentation boundary (JSON, ctags). It is never used as a lookup key,
// so an anonymous entity cannot collide with a real symbol of that name.
const AnonymousLabel = "<<anonymous>>"

// Protection is a declaration protection level.
type Protection int

const (
	// ProtectionDefault means no protection attribute was written.
	ProtectionDefault Protection = iota
	ProtectionPublic
	ProtectionPrivate
	ProtectionProtected
	ProtectionPackage
	ProtectionExport
)

// String returns the D spelling of the protection level.
func (p Protection) String() string {
	switch p {
	case ProtectionPublic:
		return "public"
	case ProtectionPrivate:
		return "private"
	case ProtectionProtected:
		return "protected"
	case ProtectionPackage:
		return "package"
	case ProtectionExport:
		return "export"
	default:
		return ""
	}
}

// Base carries the metadata common to every declaration entity.
type Base struct {
	// Name is the declared identifier, or "" for anonymous aggregates.
	Name string
	// Line is the 1-based declaration line.
	Line uint32
	// Attributes are declaration attributes (const, static, @property, ...).
	Attributes []string
	// Protection is the effective protection level.
	Protection Protection
}

// DisplayName returns the name, or AnonymousLabel for anonymous entities.
// For presentation only; lookups use Name directly.
func (b *Base) DisplayName() string {
	if b.Name == "" {
		return AnonymousLabel
	}
	return b.Name
}

// Templateable carries the generic-declaration fields shared by anything
// that can take template parameters.
type Templateable struct {
	Base
	// Constraint is the template constraint expression text, if any.
	Constraint string
	// TemplateParameters are the raw template parameter texts.
	TemplateParameters []string
}
