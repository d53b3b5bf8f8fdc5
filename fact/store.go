package fact

import (
	"slices"

	"github.com/zztool/zz/internal/interval"
)

// Store is an append-only fact log plus lazily-rebuilt secondary indexes.
// It implements the C5 contract: append, append_batch, get, iter_by_*,
// compact, and next_generation.
//
// A zero Store is empty and ready to use.
type Store struct {
	facts []Fact

	generation   uint32
	indexBuiltAt uint32
	byPredicate  map[Predicate][]ID
	bySpan       interval.Index[[]ID]
}

// Append adds a fact to the store, assigning it the next monotonic ID, and
// returns that ID. The generation is bumped since the log (a structural
// artifact other caches key off) has changed.
func (s *Store) Append(f Fact) ID {
	f.ID = ID(len(s.facts) + 1)
	s.facts = append(s.facts, f)
	s.generation++
	return f.ID
}

// AppendBatch appends every fact in fs in order, returning their assigned
// IDs.
func (s *Store) AppendBatch(fs []Fact) []ID {
	ids := make([]ID, len(fs))
	for i, f := range fs {
		ids[i] = s.Append(f)
	}
	return ids
}

// Get returns the fact with the given ID. Panics if id is out of range,
// since a caller holding an ID that doesn't exist indicates fact-store
// corruption (spec §9, error-as-value except for invariant violations).
func (s *Store) Get(id ID) Fact {
	if id == None || int(id) > len(s.facts) {
		panic("fact: invalid fact ID")
	}
	return s.facts[id-1]
}

// Len returns the number of facts appended so far.
func (s *Store) Len() int { return len(s.facts) }

// Generation returns the store's current generation counter, bumped on
// every Append/AppendBatch/Compact call.
func (s *Store) Generation() uint32 { return s.generation }

// NextGeneration bumps and returns the generation counter without
// appending anything; callers that mutate the parse result wholesale
// (e.g. a full reparse) use this to invalidate dependent caches.
func (s *Store) NextGeneration() uint32 {
	s.generation++
	return s.generation
}

// ensureIndexes rebuilds the secondary indexes if the log has grown since
// they were last built. Indexes are append-friendly: rebuilding only scans
// facts appended since indexBuiltAt.
func (s *Store) ensureIndexes() {
	if s.byPredicate != nil && int(s.indexBuiltAt) == len(s.facts) {
		return
	}
	if s.byPredicate == nil {
		s.byPredicate = make(map[Predicate][]ID)
	}
	for i := int(s.indexBuiltAt); i < len(s.facts); i++ {
		f := s.facts[i]
		s.byPredicate[f.Predicate] = append(s.byPredicate[f.Predicate], f.ID)

		subject := f.Subject.Unpack()
		existing := s.bySpan.Get(subject.Start)
		if existing.Value != nil && existing.Span == subject {
			*existing.Value = append(*existing.Value, f.ID)
		} else {
			s.bySpan.Insert(subject, []ID{f.ID})
		}
	}
	s.indexBuiltAt = uint32(len(s.facts))
}

// IterByPredicate returns the IDs of every fact with the given predicate,
// in append order.
func (s *Store) IterByPredicate(p Predicate) []ID {
	s.ensureIndexes()
	return slices.Clone(s.byPredicate[p])
}

// IterBySpan returns the IDs of facts whose subject span contains offset,
// using the interval-map index so this is O(log n) rather than a linear
// scan of the log. The index holds disjoint spans only: facts with an
// identical span share one entry, but a fact whose span overlaps a
// different span indexed before it is left out of the index and is never
// returned here, so for nested regions not every containing fact is found.
func (s *Store) IterBySpan(offset uint32) []ID {
	s.ensureIndexes()
	hit := s.bySpan.Get(offset)
	if hit.Value == nil {
		return nil
	}
	return slices.Clone(*hit.Value)
}

// Compact removes facts with confidence below min and renumbers the
// remaining facts densely starting at 1. It must not be called while any
// iteration over the store (e.g. via a held ID) is in flight; the caller
// is responsible for quiescence, per spec §4.3.
func (s *Store) Compact(min Confidence) {
	kept := s.facts[:0]
	remap := make(map[ID]ID, len(s.facts))
	for _, f := range s.facts {
		if f.Confidence < min {
			continue
		}
		newID := ID(len(kept) + 1)
		remap[f.ID] = newID
		f.ID = newID
		if f.Object.Kind() == ValueFactRef {
			if mapped, ok := remap[f.Object.FactRef()]; ok {
				f.Object = FactRefValue(mapped)
			} else {
				// Referent was compacted away; drop the reference.
				f.Object = NoValue
			}
		}
		kept = append(kept, f)
	}
	s.facts = kept
	s.byPredicate = nil
	s.bySpan = interval.Index[[]ID]{}
	s.indexBuiltAt = 0
	s.generation++
}
