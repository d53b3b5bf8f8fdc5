package rule

// JSON grammar productions. Covers both strict JSON and the JSON5 superset
// (§4.5): unquoted keys, single-quoted strings, trailing commas, and
// comments reuse the common comment rules above since JSON5 comments have
// no JSON-specific shape.
const (
	JSONDocument ID = JSON + iota
	JSONObject
	JSONArray
	JSONField
	JSONKey
	JSONString
	JSONNumber
	JSONBool
	JSONNull
)

func init() {
	register(JSONDocument, Info{Name: "json.document", Language: LangJSON, Category: CategoryDocumentRoot})
	register(JSONObject, Info{Name: "json.object", Language: LangJSON, Category: CategoryContainer})
	register(JSONArray, Info{Name: "json.array", Language: LangJSON, Category: CategoryContainer})
	register(JSONField, Info{Name: "json.field", Language: LangJSON, Category: CategoryField})
	register(JSONKey, Info{Name: "json.key", Language: LangJSON, Category: CategoryKey})
	register(JSONString, Info{Name: "json.string", Language: LangJSON, Category: CategoryLiteral})
	register(JSONNumber, Info{Name: "json.number", Language: LangJSON, Category: CategoryLiteral})
	register(JSONBool, Info{Name: "json.bool", Language: LangJSON, Category: CategoryLiteral})
	register(JSONNull, Info{Name: "json.null", Language: LangJSON, Category: CategoryLiteral})
}
