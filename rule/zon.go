package rule

// ZON (Zig Object Notation) grammar productions (§4.5): ".{" struct
// literals, ".field = value"/".field: value" assignments, enum literals,
// char literals, typed numeric subtypes, and "@builtin" identifiers.
const (
	ZONDocument ID = ZON + iota
	ZONStruct
	ZONField
	ZONKey
	ZONEnumLiteral
	ZONCharLiteral
	ZONString
	ZONNumber
	ZONBool
	ZONNull
	ZONUndefined
	ZONBuiltinCall
)

func init() {
	register(ZONDocument, Info{Name: "zon.document", Language: LangZON, Category: CategoryDocumentRoot})
	register(ZONStruct, Info{Name: "zon.struct", Language: LangZON, Category: CategoryContainer})
	register(ZONField, Info{Name: "zon.field_assignment", Language: LangZON, Category: CategoryField})
	register(ZONKey, Info{Name: "zon.key", Language: LangZON, Category: CategoryKey})
	register(ZONEnumLiteral, Info{Name: "zon.enum_literal", Language: LangZON, Category: CategoryLiteral})
	register(ZONCharLiteral, Info{Name: "zon.char_literal", Language: LangZON, Category: CategoryLiteral})
	register(ZONString, Info{Name: "zon.string", Language: LangZON, Category: CategoryLiteral})
	register(ZONNumber, Info{Name: "zon.number", Language: LangZON, Category: CategoryLiteral})
	register(ZONBool, Info{Name: "zon.bool", Language: LangZON, Category: CategoryLiteral})
	register(ZONNull, Info{Name: "zon.null", Language: LangZON, Category: CategoryLiteral})
	register(ZONUndefined, Info{Name: "zon.undefined", Language: LangZON, Category: CategoryLiteral})
	register(ZONBuiltinCall, Info{Name: "zon.builtin_call", Language: LangZON, Category: CategoryImport})
}
