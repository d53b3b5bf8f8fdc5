package lexer

import "github.com/zztool/zz/rule"

var zigKeywords = map[string]bool{
	"const": true, "var": true, "fn": true, "pub": true, "test": true,
	"struct": true, "enum": true, "union": true, "comptime": true,
	"return": true, "try": true, "catch": true, "if": true, "else": true,
	"while": true, "for": true, "null": true, "undefined": true,
	"true": true, "false": true,
}

func init() {
	register(&Rules{
		Lang:                rule.LangZig,
		LineComment:         "//",
		DocCommentPrefix:    "///",
		Quotes:              []byte{'"', '\''},
		NumberUnderscoreSep: true,
		NumberPrefixes:      true,
		Open:                []byte{'{', '(', '['},
		Close:               []byte{'}', ')', ']'},
		BuiltinSigil:        '@',
		IdentStart:          isAlpha,
		IdentContinue:       isAlnum,
		Keywords:            zigKeywords,
	})
}
