package rule

// Common rule IDs shared across every language: leaf token-ish concepts
// that don't need a per-language spelling.
const (
	Identifier ID = Common + iota
	LineComment
	BlockComment
	DocComment
	ContainerComment
	ErrorNode
	EOF
)

func init() {
	register(Identifier, Info{Name: "identifier", Language: LangNone, Category: CategoryIdentifier})
	register(LineComment, Info{Name: "comment.line", Language: LangNone, Category: CategoryComment})
	register(BlockComment, Info{Name: "comment.block", Language: LangNone, Category: CategoryComment})
	register(DocComment, Info{Name: "comment.doc", Language: LangNone, Category: CategoryComment})
	register(ContainerComment, Info{Name: "comment.container", Language: LangNone, Category: CategoryComment})
	register(ErrorNode, Info{Name: "error", Language: LangNone, Category: CategoryErrorNode})
	register(EOF, Info{Name: "eof", Language: LangNone, Category: CategoryOther})
}
