package lexer

import "github.com/zztool/zz/rule"

func init() {
	register(&Rules{
		Lang:                rule.LangZON,
		LineComment:         "//",
		DocCommentPrefix:    "///",
		Quotes:              []byte{'"', '\''},
		NumberUnderscoreSep: true,
		NumberPrefixes:      true,
		Open:                []byte{'{', '('},
		Close:               []byte{'}', ')'},
		BuiltinSigil:        '@',
		IdentStart:          isAlpha,
		IdentContinue:       isAlnum,
		Keywords: map[string]bool{
			"null": true, "true": true, "false": true, "undefined": true,
		},
	})
}
