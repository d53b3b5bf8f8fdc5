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

// Package intern provides a string interning table, used by the fact store
// (C5) to represent the atom-id variant of a Fact's Value.
package intern

import (
	"fmt"
	"strings"
	"sync"
)

// ID is an interned string in a particular [Table].
//
// IDs can be compared very cheaply with ==. The zero value of ID always
// corresponds to the empty string.
type ID uint32

// String implements fmt.Stringer. It does not recover the original string;
// call [Table.Value] for that.
func (id ID) String() string {
	if id == 0 {
		return `intern.ID("")`
	}
	return fmt.Sprintf("intern.ID(%d)", uint32(id))
}

// Table is an interning table mapping strings to small integer IDs and
// back.
//
// The zero value of Table is empty and ready to use. A Table may be used
// concurrently by multiple goroutines.
type Table struct {
	mu    sync.RWMutex
	index map[string]ID
	table []string
}

// Intern interns s into this table, returning its ID. Calling Intern twice
// with equal strings returns the same ID.
func (t *Table) Intern(s string) ID {
	if s == "" {
		return 0
	}

	t.mu.RLock()
	id, ok := t.index[s]
	t.mu.RUnlock()
	if ok {
		return id
	}

	// Long-lived table: clone so we don't pin down whatever buffer s
	// pointed into.
	s = strings.Clone(s)

	t.mu.Lock()
	defer t.mu.Unlock()

	if id, ok := t.index[s]; ok {
		// Someone raced us between RUnlock and Lock.
		return id
	}

	t.table = append(t.table, s)
	id = ID(len(t.table)) // ID 0 is reserved for "".

	if t.index == nil {
		t.index = make(map[string]ID)
	}
	t.index[s] = id

	return id
}

// Value converts an ID back into its corresponding string.
//
// If id was produced by a different Table, the result is unspecified.
func (t *Table) Value(id ID) string {
	if id == 0 {
		return ""
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table[id-1]
}

// Len returns the number of distinct strings interned so far.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.table)
}
