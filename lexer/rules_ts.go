package lexer

import "github.com/zztool/zz/rule"

var tsKeywords = map[string]bool{
	"import": true, "export": true, "from": true, "function": true,
	"class": true, "interface": true, "enum": true, "type": true,
	"const": true, "let": true, "var": true, "return": true, "default": true,
	"extends": true, "implements": true, "public": true, "private": true,
	"protected": true, "readonly": true, "static": true, "async": true,
	"void": true, "number": true, "string": true, "boolean": true, "any": true,
}

func init() {
	register(&Rules{
		Lang:              rule.LangTypeScript,
		LineComment:       "//",
		BlockCommentOpen:  "/*",
		DocCommentPrefix:  "/**",
		BlockCommentClose: "*/",
		Quotes:            []byte{'"', '\'', '`'},
		Open:              []byte{'{', '(', '['},
		Close:             []byte{'}', ')', ']'},
		IdentStart:        isAlpha,
		IdentContinue:     isAlnum,
		Keywords:          tsKeywords,
	})
}
