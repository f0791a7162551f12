package lexer

import "sort"

// keywords is the sorted keyword table for binary search.
// IMPORTANT: This slice MUST remain sorted alphabetically by text.
// ASCII byte order: '_' (95) comes before lowercase letters (a-z: 97-122).
var keywords = []struct {
	text string
	kind TokenKind
}{
	{"__FILE__", TokKwFile},
	{"__LINE__", TokKwLine},
	{"__gshared", TokKwGshared},
	{"__thread", TokKwThread},
	{"__traits", TokKwTraits},
	{"abstract", TokKwAbstract},
	{"alias", TokKwAlias},
	{"align", TokKwAlign},
	{"asm", TokKwAsm},
	{"assert", TokKwAssert},
	{"auto", TokKwAuto},
	{"body", TokKwBody},
	{"bool", TokKwBool},
	{"break", TokKwBreak},
	{"byte", TokKwByte},
	{"case", TokKwCase},
	{"cast", TokKwCast},
	{"catch", TokKwCatch},
	{"cdouble", TokKwCdouble},
	{"cent", TokKwCent},
	{"cfloat", TokKwCfloat},
	{"char", TokKwChar},
	{"class", TokKwClass},
	{"const", TokKwConst},
	{"continue", TokKwContinue},
	{"creal", TokKwCreal},
	{"dchar", TokKwDchar},
	{"debug", TokKwDebug},
	{"default", TokKwDefault},
	{"delegate", TokKwDelegate},
	{"delete", TokKwDelete},
	{"deprecated", TokKwDeprecated},
	{"do", TokKwDo},
	{"double", TokKwDouble},
	{"else", TokKwElse},
	{"enum", TokKwEnum},
	{"export", TokKwExport},
	{"extern", TokKwExtern},
	{"false", TokKwFalse},
	{"final", TokKwFinal},
	{"finally", TokKwFinally},
	{"float", TokKwFloat},
	{"for", TokKwFor},
	{"foreach", TokKwForeach},
	{"foreach_reverse", TokKwForeachReverse},
	{"function", TokKwFunction},
	{"goto", TokKwGoto},
	{"idouble", TokKwIdouble},
	{"if", TokKwIf},
	{"ifloat", TokKwIfloat},
	{"immutable", TokKwImmutable},
	{"import", TokKwImport},
	{"in", TokKwIn},
	{"inout", TokKwInout},
	{"int", TokKwInt},
	{"interface", TokKwInterface},
	{"invariant", TokKwInvariant},
	{"ireal", TokKwIreal},
	{"is", TokKwIs},
	{"lazy", TokKwLazy},
	{"long", TokKwLong},
	{"macro", TokKwMacro},
	{"mixin", TokKwMixin},
	{"module", TokKwModule},
	{"new", TokKwNew},
	{"nothrow", TokKwNothrow},
	{"null", TokKwNull},
	{"out", TokKwOut},
	{"override", TokKwOverride},
	{"package", TokKwPackage},
	{"pragma", TokKwPragma},
	{"private", TokKwPrivate},
	{"protected", TokKwProtected},
	{"public", TokKwPublic},
	{"pure", TokKwPure},
	{"real", TokKwReal},
	{"ref", TokKwRef},
	{"return", TokKwReturn},
	{"scope", TokKwScope},
	{"shared", TokKwShared},
	{"short", TokKwShort},
	{"static", TokKwStatic},
	{"struct", TokKwStruct},
	{"super", TokKwSuper},
	{"switch", TokKwSwitch},
	{"synchronized", TokKwSynchronized},
	{"template", TokKwTemplate},
	{"this", TokKwThis},
	{"throw", TokKwThrow},
	{"true", TokKwTrue},
	{"try", TokKwTry},
	{"typedef", TokKwTypedef},
	{"typeid", TokKwTypeid},
	{"typeof", TokKwTypeof},
	{"ubyte", TokKwUbyte},
	{"ucent", TokKwUcent},
	{"uint", TokKwUint},
	{"ulong", TokKwUlong},
	{"union", TokKwUnion},
	{"unittest", TokKwUnittest},
	{"ushort", TokKwUshort},
	{"version", TokKwVersion},
	{"void", TokKwVoid},
	{"volatile", TokKwVolatile},
	{"wchar", TokKwWchar},
	{"while", TokKwWhile},
	{"with", TokKwWith},
}

// LookupKeyword returns the TokenKind for a keyword, or (TokError, false) if not found.
func LookupKeyword(text string) (TokenKind, bool) {
	idx := sort.Search(len(keywords), func(i int) bool {
		return keywords[i].text >= text
	})
	if idx < len(keywords) && keywords[idx].text == text {
		return keywords[idx].kind, true
	}
	return TokError, false
}
