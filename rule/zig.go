package rule

// Zig grammar productions (§4.5): declarations and @import calls; function
// and test blocks are captured as opaque spans unless the extractor
// requests bodies.
const (
	ZigDocument ID = Zig + iota
	ZigImportCall
	ZigFunctionDecl
	ZigTestDecl
	ZigConstDecl
	ZigVarDecl
	ZigBody // opaque span
)

func init() {
	register(ZigDocument, Info{Name: "zig.document", Language: LangZig, Category: CategoryDocumentRoot})
	register(ZigImportCall, Info{Name: "zig.import_call", Language: LangZig, Category: CategoryImport})
	register(ZigFunctionDecl, Info{Name: "zig.function_decl", Language: LangZig, Category: CategoryFnDecl})
	register(ZigTestDecl, Info{Name: "zig.test_decl", Language: LangZig, Category: CategoryTestDecl})
	register(ZigConstDecl, Info{Name: "zig.const_decl", Language: LangZig, Category: CategoryTypeDecl})
	register(ZigVarDecl, Info{Name: "zig.var_decl", Language: LangZig, Category: CategoryField})
	register(ZigBody, Info{Name: "zig.body", Language: LangZig, Category: CategoryOther})
}
