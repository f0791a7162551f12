package dsense

import (
	"github.com/dlangtools/dsense/internal/ast"
	"github.com/dlangtools/dsense/internal/lexer"
	"github.com/dlangtools/dsense/internal/resolver"
)

// Type aliases for the public API - all types come from the internal packages.

// Token is a classified lexical unit with its source text and position.
type Token = lexer.Token

// TokenKind identifies a token type.
type TokenKind = lexer.TokenKind

// IterationStyle selects which tokens Tokenize emits.
type IterationStyle = lexer.IterationStyle

// Iteration styles.
const (
	IterateCode       = lexer.IterateCode
	IterateEverything = lexer.IterateEverything
)

// Non-operator, non-keyword token kinds. Operator and keyword kinds are
// classified with TokenKind.IsOperator and TokenKind.IsKeyword.
const (
	TokError      = lexer.TokError
	TokEOF        = lexer.TokEOF
	TokIdentifier = lexer.TokIdentifier
	TokNumber     = lexer.TokNumber
	TokString     = lexer.TokString
	TokComment    = lexer.TokComment
	TokWhitespace = lexer.TokWhitespace
)

// Module is the entity model of one parsed D module.
type Module = ast.Module

// Base is the shape shared by every declaration.
type Base = ast.Base

// Templateable is a declaration that can carry template parameters.
type Templateable = ast.Templateable

// Variable is a variable or parameter declaration.
type Variable = ast.Variable

// Alias is an alias (or typedef) declaration.
type Alias = ast.Alias

// Function is a function declaration.
type Function = ast.Function

// Struct is a struct or union declaration.
type Struct = ast.Struct

// Inherits is a class or interface declaration.
type Inherits = ast.Inherits

// Enum is an enum declaration.
type Enum = ast.Enum

// EnumMember is one member of an enum declaration.
type EnumMember = ast.EnumMember

// Protection is a declaration's protection level.
type Protection = ast.Protection

// AnonymousLabel renders unnamed declarations at presentation time.
const AnonymousLabel = ast.AnonymousLabel

// Protection levels.
const (
	ProtectionDefault   = ast.ProtectionDefault
	ProtectionPublic    = ast.ProtectionPublic
	ProtectionPrivate   = ast.ProtectionPrivate
	ProtectionProtected = ast.ProtectionProtected
	ProtectionPackage   = ast.ProtectionPackage
	ProtectionExport    = ast.ProtectionExport
)

// Context answers member and call-signature queries over parsed modules.
type Context = resolver.Context

// Member is one resolved member: its declared type and kind.
type Member = resolver.Member

// MemberKind classifies a resolved member.
type MemberKind = resolver.MemberKind

// Member kinds.
const (
	KindMember       = resolver.KindMember
	KindMethod       = resolver.KindMethod
	KindEnumConstant = resolver.KindEnumConstant
)
