// Package fact implements the fact store (C5): an append-only log of
// immutable fixed-size records plus the secondary indexes needed to query
// them by ID, span, or predicate. A Fact is a plain Go struct; it is not
// bit-packed into 24 bytes. Facts are the substrate the structural
// scanner (C4) and parser (C7) use to record cross-cutting, queryable
// observations about the source ("this byte range is a boundary", "this
// span has a parent", "this span has a syntax error") without having to
// thread that information through the AST itself.
package fact

import (
	"math"

	"github.com/zztool/zz/internal/intern"
	"github.com/zztool/zz/span"
)

// ID identifies a fact within a Store. IDs are monotonic starting at 1;
// 0 (None) means "no fact".
type ID uint32

// None is the zero ID, meaning "no fact".
const None ID = 0

// Predicate classifies what a Fact asserts.
type Predicate uint16

const (
	PredicateNone Predicate = iota
	// IsToken marks a subject span as corresponding to a single token.
	IsToken
	// IsBoundary marks a subject span as a structural region (object,
	// array, function, class, block, tag, rule, ...).
	IsBoundary
	// HasParent links a boundary fact to its enclosing boundary fact via
	// Value.FactRef.
	HasParent
	// HasError marks a span as containing a recovered syntax error.
	HasError
	// DefinesSymbol marks a span as introducing a named declaration. No
	// pass in this module appends facts with this predicate; the extractor
	// selects declarations by rule category instead.
	DefinesSymbol
)

// String implements fmt.Stringer.
func (p Predicate) String() string {
	switch p {
	case IsToken:
		return "is_token"
	case IsBoundary:
		return "is_boundary"
	case HasParent:
		return "has_parent"
	case HasError:
		return "has_error"
	case DefinesSymbol:
		return "defines_symbol"
	default:
		return "none"
	}
}

// ValueKind tags which variant of the 8-byte Value union is populated.
type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueInt
	ValueUint
	ValueFloat
	ValueSpan
	ValueFactRef
	ValueAtom
	ValueBool
)

// Value is the tagged union carried by every Fact's Object field: an
// 8-byte payload next to a one-byte kind tag, so a Value occupies 16
// bytes rather than 8.
type Value struct {
	kind ValueKind
	bits uint64
}

// NoValue is the empty Value.
var NoValue = Value{}

func IntValue(v int64) Value    { return Value{kind: ValueInt, bits: uint64(v)} }
func UintValue(v uint64) Value  { return Value{kind: ValueUint, bits: v} }
func FloatValue(v float32) Value {
	return Value{kind: ValueFloat, bits: uint64(math.Float32bits(v))}
}
func SpanValue(s span.Packed) Value   { return Value{kind: ValueSpan, bits: uint64(s)} }
func FactRefValue(id ID) Value        { return Value{kind: ValueFactRef, bits: uint64(id)} }
func AtomValue(id intern.ID) Value    { return Value{kind: ValueAtom, bits: uint64(id)} }
func BoolValue(v bool) Value {
	if v {
		return Value{kind: ValueBool, bits: 1}
	}
	return Value{kind: ValueBool, bits: 0}
}

// Kind reports which variant is populated.
func (v Value) Kind() ValueKind { return v.kind }

func (v Value) Int() int64        { return int64(v.bits) }
func (v Value) Uint() uint64      { return v.bits }
func (v Value) Float() float32    { return math.Float32frombits(uint32(v.bits)) }
func (v Value) Span() span.Packed { return span.Packed(v.bits) }
func (v Value) FactRef() ID       { return ID(v.bits) }
func (v Value) Atom() intern.ID   { return intern.ID(v.bits) }
func (v Value) Bool() bool        { return v.bits != 0 }

// Confidence is a speculative-annotation weight in [0, 1], held as a
// float32; this package has no float16 encoding of it. See spec §4.3.
type Confidence float32

// Certain is the threshold at or above which a fact is considered
// non-speculative.
const Certain Confidence = 0.9

// Uncertain is the threshold below which a fact is considered too
// speculative to trust without corroboration.
const Uncertain Confidence = 0.3

// Fact is a single immutable record in the fact store.
type Fact struct {
	ID         ID
	Subject    span.Packed
	Predicate  Predicate
	Object     Value
	Confidence Confidence
}
