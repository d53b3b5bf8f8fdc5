package lexer

import "github.com/zztool/zz/rule"

func isHTMLIdentStart(b byte) bool { return isAlpha(b) }
func isHTMLIdentContinue(b byte) bool {
	return isAlnum(b) || b == '-' || b == ':'
}

func init() {
	html := &Rules{
		Lang:              rule.LangHTML,
		BlockCommentOpen:  "<!--",
		BlockCommentClose: "-->",
		Quotes:            []byte{'"', '\''},
		Open:              []byte{'<'},
		Close:             []byte{'>'},
		IdentStart:        isHTMLIdentStart,
		IdentContinue:     isHTMLIdentContinue,
	}
	register(html)

	// A Svelte file is lexed with the HTML rules; the parser re-lexes its
	// <script> and <style> bodies with the TypeScript and CSS rules.
	svelte := *html
	svelte.Lang = rule.LangSvelte
	register(&svelte)
}
