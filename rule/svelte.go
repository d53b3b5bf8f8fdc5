package rule

// Svelte grammar productions (§4.5): a document decomposes into <script>,
// <style>, and template regions, each handed to the corresponding
// sub-parser.
const (
	SvelteDocument ID = Svelte + iota
	SvelteScript
	SvelteStyle
	SvelteTemplate
)

func init() {
	register(SvelteDocument, Info{Name: "svelte.document", Language: LangSvelte, Category: CategoryDocumentRoot})
	register(SvelteScript, Info{Name: "svelte.script", Language: LangSvelte, Category: CategoryContainer})
	register(SvelteStyle, Info{Name: "svelte.style", Language: LangSvelte, Category: CategoryContainer})
	register(SvelteTemplate, Info{Name: "svelte.template", Language: LangSvelte, Category: CategoryContainer})
}
