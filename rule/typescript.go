package rule

// TypeScript grammar productions (§4.5): a declarations-level parse only.
// Bodies are captured as opaque spans; TSBody marks them.
const (
	TSDocument ID = TypeScript + iota
	TSImport
	TSExport
	TSFunctionDecl
	TSClassDecl
	TSInterfaceDecl
	TSEnumDecl
	TSTypeAlias
	TSStatement
	TSBody // opaque span, not descended into unless requested
)

func init() {
	register(TSDocument, Info{Name: "ts.document", Language: LangTypeScript, Category: CategoryDocumentRoot})
	register(TSImport, Info{Name: "ts.import", Language: LangTypeScript, Category: CategoryImport})
	register(TSExport, Info{Name: "ts.export", Language: LangTypeScript, Category: CategoryExport})
	register(TSFunctionDecl, Info{Name: "ts.function_decl", Language: LangTypeScript, Category: CategoryFnDecl})
	register(TSClassDecl, Info{Name: "ts.class_decl", Language: LangTypeScript, Category: CategoryTypeDecl})
	register(TSInterfaceDecl, Info{Name: "ts.interface_decl", Language: LangTypeScript, Category: CategoryTypeDecl})
	register(TSEnumDecl, Info{Name: "ts.enum_decl", Language: LangTypeScript, Category: CategoryTypeDecl})
	register(TSTypeAlias, Info{Name: "ts.type_alias", Language: LangTypeScript, Category: CategoryTypeDecl})
	register(TSStatement, Info{Name: "ts.statement", Language: LangTypeScript, Category: CategoryOther})
	register(TSBody, Info{Name: "ts.body", Language: LangTypeScript, Category: CategoryOther})
}
