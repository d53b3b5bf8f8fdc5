package rule

// HTML grammar productions (§4.5): a DOM-like tree where void elements
// never have children and <script>/<style> bodies are opaque text.
const (
	HTMLDocument ID = HTML + iota
	HTMLElement
	HTMLVoidElement
	HTMLAttribute
	HTMLText
	HTMLOpaqueBody // <script>/<style> contents, not re-lexed
)

func init() {
	register(HTMLDocument, Info{Name: "html.document", Language: LangHTML, Category: CategoryDocumentRoot})
	register(HTMLElement, Info{Name: "html.element", Language: LangHTML, Category: CategoryContainer})
	register(HTMLVoidElement, Info{Name: "html.void_element", Language: LangHTML, Category: CategoryContainer})
	register(HTMLAttribute, Info{Name: "html.attribute", Language: LangHTML, Category: CategoryField})
	register(HTMLText, Info{Name: "html.text", Language: LangHTML, Category: CategoryValue})
	register(HTMLOpaqueBody, Info{Name: "html.opaque_body", Language: LangHTML, Category: CategoryOther})
}
