package rule

// CSS grammar productions (§4.5): rule sets, at-rules, declarations, and
// selector lists. Nested rules inside @media/@keyframes reuse CSSRuleSet.
const (
	CSSDocument ID = CSS + iota
	CSSRuleSet
	CSSAtRule
	CSSSelectorList
	CSSDeclaration
	CSSDeclarationBlock
	CSSProperty
	CSSValue
)

func init() {
	register(CSSDocument, Info{Name: "css.document", Language: LangCSS, Category: CategoryDocumentRoot})
	register(CSSRuleSet, Info{Name: "css.rule_set", Language: LangCSS, Category: CategoryContainer})
	register(CSSAtRule, Info{Name: "css.at_rule", Language: LangCSS, Category: CategoryContainer})
	register(CSSSelectorList, Info{Name: "css.selector_list", Language: LangCSS, Category: CategoryOther})
	register(CSSDeclaration, Info{Name: "css.declaration", Language: LangCSS, Category: CategoryField})
	register(CSSDeclarationBlock, Info{Name: "css.declaration_block", Language: LangCSS, Category: CategoryContainer})
	register(CSSProperty, Info{Name: "css.property", Language: LangCSS, Category: CategoryKey})
	register(CSSValue, Info{Name: "css.value", Language: LangCSS, Category: CategoryValue})
}
