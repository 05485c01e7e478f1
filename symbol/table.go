/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package symbol

// Table is the fixed-capacity static symbol table. It is filled once while
// generating and never written again, so reads need no locking.
type Table struct {
	layout Layout
	slots  []*Symbol
	filled int
}

func newTable(capacity int) *Table {
	return &Table{slots: make([]*Symbol, capacity)}
}

// place stores s in slot index.
//
// A symbol whose index is at or past the capacity is not stored and no error
// is returned: the caller's running index still counts it, and the walk ends
// with a CapacityMismatchError that reports the full count. The table is
// discarded on that path.
//
// An occupied slot returns a *DuplicateSlotError. Generate cannot reach it
// for a catalog that passes Validate; LoadSnapshot can.
func (t *Table) place(index int, s *Symbol) error {
	if index >= len(t.slots) {
		return nil
	}
	if prev := t.slots[index]; prev != nil {
		return &DuplicateSlotError{Index: index, Existing: prev.text, Text: s.text}
	}
	t.slots[index] = s
	t.filled++
	return nil
}

// Layout returns the table's layout.
func (t *Table) Layout() Layout {
	return t.layout
}

// Capacity returns the number of slots.
func (t *Table) Capacity() int {
	return len(t.slots)
}

// Len returns the number of populated slots.
func (t *Table) Len() int {
	return t.filled
}

// Lookup returns the static symbol with the given identity.
//
// An identity past the end of the table returns an *OutOfRangeError. An
// empty slot, or a slot holding a symbol with a different identity, returns
// ErrNotFound.
func (t *Table) Lookup(id ID) (*Symbol, error) {
	index, err := t.layout.Index(id)
	if err != nil {
		return nil, err
	}
	s := t.slots[index]
	if s == nil || s.id != id {
		return nil, ErrNotFound
	}
	return s, nil
}

// At returns the symbol in slot index, if any.
func (t *Table) At(index int) (*Symbol, bool) {
	if index < 0 || index >= len(t.slots) || t.slots[index] == nil {
		return nil, false
	}
	return t.slots[index], true
}
