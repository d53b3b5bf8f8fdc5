package lexer

import "github.com/zztool/zz/rule"

func isCSSIdentStart(b byte) bool {
	return isAlpha(b) || b == '-' || b == '#' || b == '.' || b == '@' || b == '%'
}

func isCSSIdentContinue(b byte) bool {
	return isAlnum(b) || b == '-'
}

func init() {
	register(&Rules{
		Lang:              rule.LangCSS,
		BlockCommentOpen:  "/*",
		BlockCommentClose: "*/",
		Quotes:            []byte{'"', '\''},
		Open:              []byte{'{', '('},
		Close:             []byte{'}', ')'},
		IdentStart:        isCSSIdentStart,
		IdentContinue:     isCSSIdentContinue,
	})
}
