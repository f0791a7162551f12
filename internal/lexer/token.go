// Package lexer provides tokenization for D source text.
package lexer

// Token is a classified lexical unit with its source text and position.
// Tokens are immutable once produced; Text always holds the exact bytes
// consumed from the input, so concatenating every token produced in
// IterateEverything mode reproduces the input.
type Token struct {
	Kind  TokenKind
	Text  string
	Line  uint32
	Start int
}

// NewToken creates a new token.
func NewToken(kind TokenKind, text string, line uint32, start int) Token {
	return Token{Kind: kind, Text: text, Line: line, Start: start}
}

// TokenKind identifies a token type.
type TokenKind int

const (
	// === Special ===

	// TokError is a lexical error.
	TokError TokenKind = iota
	// TokEOF is end of input.
	TokEOF

	// === Identifiers ===

	// TokIdentifier is a plain (non-keyword) identifier.
	TokIdentifier

	// === Literals ===

	// TokNumber is an integer or floating point literal.
	TokNumber
	// TokString is a quoted, raw, hex, delimited, or token string literal.
	TokString
	// TokComment is a line, block, or nesting comment.
	TokComment
	// TokWhitespace is a run of whitespace (IterateEverything mode only).
	TokWhitespace

	// === Operators and punctuation ===

	// TokDiv is '/'.
	TokDiv
	// TokDivAssign is '/='.
	TokDivAssign
	// TokDot is '.'.
	TokDot
	// TokDotDot is '..'.
	TokDotDot
	// TokEllipsis is '...'.
	TokEllipsis
	// TokAmp is '&'.
	TokAmp
	// TokAmpAssign is '&='.
	TokAmpAssign
	// TokLogicAnd is '&&'.
	TokLogicAnd
	// TokPipe is '|'.
	TokPipe
	// TokPipeAssign is '|='.
	TokPipeAssign
	// TokLogicOr is '||'.
	TokLogicOr
	// TokMinus is '-'.
	TokMinus
	// TokMinusAssign is '-='.
	TokMinusAssign
	// TokDecrement is '--'.
	TokDecrement
	// TokPlus is '+'.
	TokPlus
	// TokPlusAssign is '+='.
	TokPlusAssign
	// TokIncrement is '++'.
	TokIncrement
	// TokLess is '<'.
	TokLess
	// TokLessEqual is '<='.
	TokLessEqual
	// TokShiftLeft is '<<'.
	TokShiftLeft
	// TokShiftLeftAssign is '<<='.
	TokShiftLeftAssign
	// TokLessOrGreater is '<>'.
	TokLessOrGreater
	// TokLessEqualGreater is '<>='.
	TokLessEqualGreater
	// TokGreater is '>'.
	TokGreater
	// TokGreaterEqual is '>='.
	TokGreaterEqual
	// TokShiftRight is '>>'.
	TokShiftRight
	// TokShiftRightAssign is '>>='.
	TokShiftRightAssign
	// TokUnsignedShiftRight is '>>>'.
	TokUnsignedShiftRight
	// TokUnsignedShiftRightAssign is '>>>='.
	TokUnsignedShiftRightAssign
	// TokNot is '!'.
	TokNot
	// TokNotEqual is '!='.
	TokNotEqual
	// TokUnordered is '!<>'.
	TokUnordered
	// TokUnorderedEqual is '!<>='.
	TokUnorderedEqual
	// TokUnorderedLess is '!<'.
	TokUnorderedLess
	// TokUnorderedLessEqual is '!<='.
	TokUnorderedLessEqual
	// TokUnorderedGreater is '!>'.
	TokUnorderedGreater
	// TokUnorderedGreaterEqual is '!>='.
	TokUnorderedGreaterEqual
	// TokLParen is '('.
	TokLParen
	// TokRParen is ')'.
	TokRParen
	// TokLBracket is '['.
	TokLBracket
	// TokRBracket is ']'.
	TokRBracket
	// TokLBrace is '{'.
	TokLBrace
	// TokRBrace is '}'.
	TokRBrace
	// TokQuestion is '?'.
	TokQuestion
	// TokComma is ','.
	TokComma
	// TokSemicolon is ';'.
	TokSemicolon
	// TokColon is ':'.
	TokColon
	// TokDollar is '$'.
	TokDollar
	// TokAssign is '='.
	TokAssign
	// TokEqual is '=='.
	TokEqual
	// TokFatArrow is '=>'.
	TokFatArrow
	// TokStar is '*'.
	TokStar
	// TokStarAssign is '*='.
	TokStarAssign
	// TokPercent is '%'.
	TokPercent
	// TokPercentAssign is '%='.
	TokPercentAssign
	// TokCaret is '^'.
	TokCaret
	// TokCaretAssign is '^='.
	TokCaretAssign
	// TokPow is '^^'.
	TokPow
	// TokPowAssign is '^^='.
	TokPowAssign
	// TokTilde is '~'.
	TokTilde
	// TokTildeAssign is '~='.
	TokTildeAssign
	// TokAt is '@'.
	TokAt
	// TokHash is '#'.
	TokHash

	// === Keywords ===

	TokKwAbstract
	TokKwAlias
	TokKwAlign
	TokKwAsm
	TokKwAssert
	TokKwAuto
	TokKwBody
	TokKwBool
	TokKwBreak
	TokKwByte
	TokKwCase
	TokKwCast
	TokKwCatch
	TokKwCdouble
	TokKwCent
	TokKwCfloat
	TokKwChar
	TokKwClass
	TokKwConst
	TokKwContinue
	TokKwCreal
	TokKwDchar
	TokKwDebug
	TokKwDefault
	TokKwDelegate
	TokKwDelete
	TokKwDeprecated
	TokKwDo
	TokKwDouble
	TokKwElse
	TokKwEnum
	TokKwExport
	TokKwExtern
	TokKwFalse
	TokKwFinal
	TokKwFinally
	TokKwFloat
	TokKwFor
	TokKwForeach
	TokKwForeachReverse
	TokKwFunction
	TokKwGoto
	TokKwIdouble
	TokKwIf
	TokKwIfloat
	TokKwImmutable
	TokKwImport
	TokKwIn
	TokKwInout
	TokKwInt
	TokKwInterface
	TokKwInvariant
	TokKwIreal
	TokKwIs
	TokKwLazy
	TokKwLong
	TokKwMacro
	TokKwMixin
	TokKwModule
	TokKwNew
	TokKwNothrow
	TokKwNull
	TokKwOut
	TokKwOverride
	TokKwPackage
	TokKwPragma
	TokKwPrivate
	TokKwProtected
	TokKwPublic
	TokKwPure
	TokKwReal
	TokKwRef
	TokKwReturn
	TokKwScope
	TokKwShared
	TokKwShort
	TokKwStatic
	TokKwStruct
	TokKwSuper
	TokKwSwitch
	TokKwSynchronized
	TokKwTemplate
	TokKwThis
	TokKwThrow
	TokKwTrue
	TokKwTry
	TokKwTypedef
	TokKwTypeid
	TokKwTypeof
	TokKwUbyte
	TokKwUcent
	TokKwUint
	TokKwUlong
	TokKwUnion
	TokKwUnittest
	TokKwUshort
	TokKwVersion
	TokKwVoid
	TokKwVolatile
	TokKwWchar
	TokKwWhile
	TokKwWith
	TokKwFile
	TokKwLine
	TokKwGshared
	TokKwThread
	TokKwTraits
)

// IsKeyword returns true if this token kind is a keyword.
func (k TokenKind) IsKeyword() bool {
	return k >= TokKwAbstract && k <= TokKwTraits
}

// IsOperator returns true if this token kind is an operator or punctuation.
func (k TokenKind) IsOperator() bool {
	return k >= TokDiv && k <= TokHash
}

// IsLiteral returns true if this token kind is a number, string, or comment.
func (k TokenKind) IsLiteral() bool {
	switch k {
	case TokNumber, TokString, TokComment:
		return true
	default:
		return false
	}
}

// IsBasicType returns true if this token kind names a primitive type.
func (k TokenKind) IsBasicType() bool {
	switch k {
	case TokKwBool, TokKwByte, TokKwUbyte, TokKwShort, TokKwUshort,
		TokKwInt, TokKwUint, TokKwLong, TokKwUlong, TokKwCent, TokKwUcent,
		TokKwChar, TokKwWchar, TokKwDchar, TokKwFloat, TokKwDouble,
		TokKwReal, TokKwIfloat, TokKwIdouble, TokKwIreal, TokKwCfloat,
		TokKwCdouble, TokKwCreal, TokKwVoid:
		return true
	default:
		return false
	}
}

// IsProtection returns true if this token kind is a protection attribute.
func (k TokenKind) IsProtection() bool {
	switch k {
	case TokKwPublic, TokKwPrivate, TokKwProtected, TokKwPackage, TokKwExport:
		return true
	default:
		return false
	}
}
