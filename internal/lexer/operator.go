package lexer

// operators maps every operator and punctuation spelling to its kind.
// Lookup is longest-match: the lexer probes maxOperatorLen bytes down
// to one, so '>>>=' wins over '>>>' over '>>'.
var operators = map[string]TokenKind{
	"/":    TokDiv,
	"/=":   TokDivAssign,
	".":    TokDot,
	"..":   TokDotDot,
	"...":  TokEllipsis,
	"&":    TokAmp,
	"&=":   TokAmpAssign,
	"&&":   TokLogicAnd,
	"|":    TokPipe,
	"|=":   TokPipeAssign,
	"||":   TokLogicOr,
	"-":    TokMinus,
	"-=":   TokMinusAssign,
	"--":   TokDecrement,
	"+":    TokPlus,
	"+=":   TokPlusAssign,
	"++":   TokIncrement,
	"<":    TokLess,
	"<=":   TokLessEqual,
	"<<":   TokShiftLeft,
	"<<=":  TokShiftLeftAssign,
	"<>":   TokLessOrGreater,
	"<>=":  TokLessEqualGreater,
	">":    TokGreater,
	">=":   TokGreaterEqual,
	">>":   TokShiftRight,
	">>=":  TokShiftRightAssign,
	">>>":  TokUnsignedShiftRight,
	">>>=": TokUnsignedShiftRightAssign,
	"!":    TokNot,
	"!=":   TokNotEqual,
	"!<>":  TokUnordered,
	"!<>=": TokUnorderedEqual,
	"!<":   TokUnorderedLess,
	"!<=":  TokUnorderedLessEqual,
	"!>":   TokUnorderedGreater,
	"!>=":  TokUnorderedGreaterEqual,
	"(":    TokLParen,
	")":    TokRParen,
	"[":    TokLBracket,
	"]":    TokRBracket,
	"{":    TokLBrace,
	"}":    TokRBrace,
	"?":    TokQuestion,
	",":    TokComma,
	";":    TokSemicolon,
	":":    TokColon,
	"$":    TokDollar,
	"=":    TokAssign,
	"==":   TokEqual,
	"=>":   TokFatArrow,
	"*":    TokStar,
	"*=":   TokStarAssign,
	"%":    TokPercent,
	"%=":   TokPercentAssign,
	"^":    TokCaret,
	"^=":   TokCaretAssign,
	"^^":   TokPow,
	"^^=":  TokPowAssign,
	"~":    TokTilde,
	"~=":   TokTildeAssign,
	"@":    TokAt,
	"#":    TokHash,
}

// maxOperatorLen is the length of the longest operator spelling ('>>>=', '!<>=').
const maxOperatorLen = 4

// LookupOperator returns the longest operator matching a prefix of
// source[pos:] along with its byte length, or (TokError, 0) if no
// operator starts there.
func LookupOperator(source string, pos int) (TokenKind, int) {
	limit := maxOperatorLen
	if remaining := len(source) - pos; remaining < limit {
		limit = remaining
	}
	for n := limit; n >= 1; n-- {
		if kind, ok := operators[source[pos:pos+n]]; ok {
			return kind, n
		}
	}
	return TokError, 0
}
