// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast implements the arena-owned AST model (C8): a tree of Nodes
// tagged with a rule ID, each owning its own span and a slice of child
// pointers, all allocated out of a single internal/arena.Arena so that the
// whole tree can be dropped in one shot and so that node identity survives
// being copied by value within the arena's backing slices.
package ast

import (
	"github.com/zztool/zz/internal/arena"
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/span"
	"github.com/zztool/zz/token"
)

// Ptr is an arena pointer to a Node. The zero Ptr is nil.
type Ptr = arena.Pointer[Node]

// Payload carries the small amount of per-node data that doesn't belong in
// a child: a pre-decoded literal value, or nothing at all.
// Most rule kinds need none of this; the parser sets it only for leaf rules
// (string/number/ident literals) where the formatter or linter wants the
// decoded value without re-slicing and re-parsing the source text.
type Payload struct {
	// Text, when HasText is set, is pre-decoded literal text (e.g. an unescaped
	// string body) that differs from the raw source span.
	Text string
	// HasText reports whether Text was set, distinguishing "decoded to
	// the empty string" from "nothing to decode".
	HasText bool
}

// Node is a single AST node: a rule ID tag, the span of source it covers,
// and pointers to its children in source order.
type Node struct {
	Rule     rule.ID
	Sub      token.SubKind // set for comment/literal nodes; zero otherwise
	Span     span.Span
	Parent   Ptr
	Children []Ptr
	Payload  Payload
}

// Diagnostic records a parser-recovered error attached to the tree, mirroring
// a has_error fact so formatting/linting code that only has the AST (no fact
// store reference) can still see where recovery happened.
type Diagnostic struct {
	Span    span.Span
	Message string
}

// AST is a complete parse tree plus the bookkeeping the incremental
// coordinator (C13) needs to decide whether a cached tree is still valid.
type AST struct {
	arena       arena.Arena[Node]
	root        Ptr
	Source      []byte
	Lang        rule.Language
	Generation  uint32
	Diagnostics []Diagnostic
}

// New creates an empty AST over src, ready to have its root set by a
// parser via NewNode/SetRoot.
func New(lang rule.Language, src []byte) *AST {
	return &AST{Source: src, Lang: lang}
}

// NewNode allocates a node in the tree's arena and returns a pointer to it.
// It does not attach the node to any parent; callers build bottom-up and
// wire Children/Parent themselves, then call SetRoot once for the
// document node.
func (a *AST) NewNode(ruleID rule.ID, sp span.Span) Ptr {
	return a.arena.New(Node{Rule: ruleID, Span: sp})
}

// Node dereferences p within this tree's arena.
func (a *AST) Node(p Ptr) *Node { return p.In(&a.arena) }

// SetRoot records p as the tree's root node.
func (a *AST) SetRoot(p Ptr) { a.root = p }

// Root returns the tree's root node pointer. It is nil if the tree is
// empty (a parse produced no nodes at all, which should only happen for a
// zero-length input).
func (a *AST) Root() Ptr { return a.root }

// AddChild appends child to parent's Children and sets child's Parent,
// using the tree's own arena so both writes land in the same backing
// storage.
func (a *AST) AddChild(parent, child Ptr) {
	a.Node(child).Parent = parent
	pn := a.Node(parent)
	pn.Children = append(pn.Children, child)
}

// Text returns the raw source text covered by p's span.
func (a *AST) Text(p Ptr) []byte {
	return a.Node(p).Span.Text(a.Source)
}
