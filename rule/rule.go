// Package rule is the grammar/rule registry (C6): a static, process-wide
// table mapping 16-bit rule IDs to their language, display name, and node
// category. The table is a Go map keyed by ID, filled once by package
// init functions; Lookup, MustLookup, and Name are map lookups, not
// dense array indexes.
package rule

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ID names either a grammar production (json.object) or a common concept
// (identifier, comment). The namespace is partitioned into contiguous
// 256-wide ranges per language, mirroring the token.Kind namespacing used
// by the teacher's rule-ID-tagged AST nodes.
type ID uint16

// Namespace boundaries. Common concepts live in 0-255; each language gets
// the next free 256-wide block. Values are part of the wire-free but
// stable public contract other packages dispatch on.
const (
	Common ID = 256 * iota
	JSON
	ZON
	CSS
	HTML
	TypeScript
	Zig
	Svelte

	numNamespaces
)

// Language identifies which grammar a rule ID, token, or AST node belongs
// to.
type Language uint8

const (
	LangNone Language = iota
	LangJSON
	LangZON
	LangCSS
	LangHTML
	LangTypeScript
	LangZig
	LangSvelte
)

// String implements fmt.Stringer.
func (l Language) String() string {
	switch l {
	case LangJSON:
		return "json"
	case LangZON:
		return "zon"
	case LangCSS:
		return "css"
	case LangHTML:
		return "html"
	case LangTypeScript:
		return "typescript"
	case LangZig:
		return "zig"
	case LangSvelte:
		return "svelte"
	default:
		return "none"
	}
}

// Category classifies a rule for generic, language-neutral visitors (the
// extractor and the linter) so they can decide what to do with a node
// without switching on its language.
type Category uint8

const (
	CategoryOther Category = iota
	CategoryDocumentRoot
	CategoryContainer // object/array/block
	CategoryField
	CategoryKey
	CategoryValue
	CategoryLiteral
	CategoryIdentifier
	CategoryComment
	CategoryImport
	CategoryExport
	CategoryTypeDecl
	CategoryFnDecl
	CategoryTestDecl
	CategoryErrorNode
)

// Info is the registry entry for a rule ID.
type Info struct {
	Name     string
	Language Language
	Category Category
}

// table is the rule registry. It is filled once at package init by each
// language's file calling register, and is never mutated again.
var table = make(map[ID]Info, 512)

// register adds id to the static registry. It is called only from package
// init functions in the per-language files (json.go, zon.go, ...); panics on collision,
// since a collision means two languages claimed the same ID, an engineering
// bug rather than a runtime condition.
func register(id ID, info Info) {
	if _, dup := table[id]; dup {
		panic("rule: duplicate rule ID registered: " + info.Name)
	}
	table[id] = info
}

// Lookup returns the registry entry for id and whether it was found.
func Lookup(id ID) (Info, bool) {
	info, ok := table[id]
	return info, ok
}

// MustLookup is Lookup but panics if id is not registered; used in code
// paths that only ever see rule IDs minted by this package's own tables,
// where a miss indicates fact-store or AST corruption (see spec §9).
func MustLookup(id ID) Info {
	info, ok := table[id]
	if !ok {
		panic("rule: unregistered rule ID used")
	}
	return info
}

// Name is a convenience accessor over Lookup.
func Name(id ID) string {
	if info, ok := table[id]; ok {
		return info.Name
	}
	return "<unknown>"
}

// AllIDs returns every registered rule ID in ascending order, used by
// tooling that needs to enumerate the whole grammar (e.g. a debug dump
// of the registry) without depending on map iteration order.
func AllIDs() []ID {
	ids := maps.Keys(table)
	slices.Sort(ids)
	return ids
}
