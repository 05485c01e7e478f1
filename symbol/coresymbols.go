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

import (
	"fmt"
	"sync"

	"github.com/turrisxyz/truffleruby/iddef"
)

// CoreSymbols is a generated static table together with the catalog of
// every symbol created against it.
type CoreSymbols struct {
	table    *Table
	catalog  *Catalog
	entries  []Entry
	reserved []Reserved
	dynamic  []string
	// byName is written only while generating.
	byName map[string]*Symbol
}

func newCoreSymbols(capacity int) *CoreSymbols {
	return &CoreSymbols{
		table:   newTable(capacity),
		catalog: &Catalog{},
		byName:  make(map[string]*Symbol),
	}
}

var (
	defaultOnce    sync.Once
	defaultSymbols *CoreSymbols
	defaultErr     error
)

// Default returns the symbols generated from iddef.Default. Generation runs
// on the first call only.
func Default() (*CoreSymbols, error) {
	defaultOnce.Do(func() {
		c, err := iddef.Default()
		if err != nil {
			defaultErr = err
			return
		}
		defaultSymbols, defaultErr = Generate(c)
	})
	return defaultSymbols, defaultErr
}

// MustDefault is Default for process start up. It panics if the core
// catalog is inconsistent.
func MustDefault() *CoreSymbols {
	syms, err := Default()
	if err != nil {
		panic(err)
	}
	return syms
}

// Lookup returns the static symbol with the given identity. See Table.Lookup.
func (cs *CoreSymbols) Lookup(id ID) (*Symbol, error) {
	return cs.table.Lookup(id)
}

// CreateDynamic creates a symbol with no table slot and records it in the
// catalog. It is safe for concurrent use.
func (cs *CoreSymbols) CreateDynamic(text string) *Symbol {
	s := newSymbol(text, Unassigned, CategoryDynamic)
	cs.catalog.add(s)
	return s
}

// IsStaticSymbol reports whether id is the identity of a static symbol in
// this table. Unlike Layout.IsStaticSymbol it is exact: it is true if and
// only if Lookup(id) succeeds.
func (cs *CoreSymbols) IsStaticSymbol(id ID) bool {
	if !cs.table.layout.IsStaticSymbol(id) {
		return false
	}
	_, err := cs.table.Lookup(id)
	return err == nil
}

// IDToIndex returns the table index of a static identity. It panics with an
// *OutOfRangeError if id maps past the table.
func (cs *CoreSymbols) IDToIndex(id ID) int {
	return cs.table.layout.IDToIndex(id)
}

// Layout returns the table's layout.
func (cs *CoreSymbols) Layout() Layout {
	return cs.table.layout
}

// Table returns the static table.
func (cs *CoreSymbols) Table() *Table {
	return cs.table
}

// Catalog returns the catalog of every symbol created so far.
func (cs *CoreSymbols) Catalog() *Catalog {
	return cs.catalog
}

// Entries returns the static symbols in creation order.
func (cs *CoreSymbols) Entries() []Entry {
	return append([]Entry(nil), cs.entries...)
}

// Reserved returns the slots consumed without a symbol.
func (cs *CoreSymbols) Reserved() []Reserved {
	return append([]Reserved(nil), cs.reserved...)
}

// ByName finds a core symbol by its constant name.
func (cs *CoreSymbols) ByName(name string) (*Symbol, bool) {
	s, ok := cs.byName[name]
	return s, ok
}

// MustByName is ByName for names known to exist.
func (cs *CoreSymbols) MustByName(name string) *Symbol {
	s, ok := cs.byName[name]
	if !ok {
		panic(fmt.Sprintf("symbol: no core symbol named %v", name))
	}
	return s
}

// verify checks that every entry's identity decodes back to the kind and
// slot it was created with.
func (cs *CoreSymbols) verify() error {
	layout := cs.table.layout
	for _, e := range cs.entries {
		if !layout.IsStaticSymbol(e.ID) {
			return &MalformedIDError{e.ID, fmt.Sprintf("%v is not recognised as static", e.Name)}
		}
		index, err := layout.Index(e.ID)
		if err != nil {
			return err
		}
		if index != e.Index {
			return &MalformedIDError{e.ID, fmt.Sprintf("%v maps to slot %v but was placed in %v", e.Name, index, e.Index)}
		}
		kind, err := layout.Decode(e.ID)
		if err != nil {
			return err
		}
		if kind != e.Kind {
			return &MalformedIDError{e.ID, fmt.Sprintf("%v decodes as %+v, created as %+v", e.Name, kind, e.Kind)}
		}
	}
	for _, r := range cs.reserved {
		if _, ok := cs.table.At(r.Index); ok {
			return &DuplicateSlotError{Index: r.Index, Existing: cs.table.slots[r.Index].text, Text: r.Token}
		}
	}
	return nil
}
