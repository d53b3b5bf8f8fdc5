package lexer

import "github.com/zztool/zz/rule"

func init() {
	register(&Rules{
		Lang:              rule.LangJSON,
		LineComment:       "//", // lexed in every mode; the parser skips comments in strict mode too
		BlockCommentOpen:  "/*",
		BlockCommentClose: "*/",
		Quotes:            []byte{'"', '\''}, // the parser accepts single-quoted strings in strict mode too
		AllowUnquotedKeys: true,
		Open:              []byte{'{', '['},
		Close:             []byte{'}', ']'},
		IdentStart:        isAlpha,
		IdentContinue:     isAlnum,
	})
}
