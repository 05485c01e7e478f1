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

	"fortio.org/safecast"
	"github.com/tliron/commonlog"

	"github.com/turrisxyz/truffleruby/iddef"
)

var log = commonlog.GetLogger("truffleruby.symbol")

// An Entry describes one static symbol created by Generate.
type Entry struct {
	// Name is the constant name, e.g. PLUS or METHODMISSING.
	Name  string
	Text  string
	ID    ID
	Index int
	Kind  Kind
}

// Reserved is a slot consumed by a preserved token with no predefined text.
// It never holds a symbol.
type Reserved struct {
	Token string
	Index int
}

// generator holds what a single Generate call builds. The running index is
// passed between the steps rather than stored here.
type generator struct {
	catalog *iddef.Catalog
	syms    *CoreSymbols
}

// Generate interns every name in c, in catalog order, and returns the
// populated table. Any inconsistency in c is fatal: a *CapacityMismatchError
// when the running index does not end at c.Capacity, a *DuplicateSlotError
// when two symbols claim one slot, or the catalog's validation error.
func Generate(c *iddef.Catalog) (*CoreSymbols, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("symbol: invalid catalog: %w", err)
	}

	g := &generator{
		catalog: c,
		syms:    newCoreSymbols(c.Capacity),
	}

	for _, name := range c.Dynamic {
		g.syms.byName[iddef.DynamicName(name)] = g.syms.CreateDynamic(name)
	}
	g.syms.dynamic = append([]string(nil), c.Dynamic...)

	first, index, err := g.characters()
	if err != nil {
		return nil, err
	}
	if c.SequentialStart != 0 {
		if index, err = toIndex(ID(c.SequentialStart), c.Capacity); err != nil {
			return nil, err
		}
	}
	sequentialStart := index

	if index, err = g.operators(index); err != nil {
		return nil, err
	}
	if index, err = g.preserved(index); err != nil {
		return nil, err
	}
	lastOpID := index - 1

	if index, err = g.typed(index); err != nil {
		return nil, err
	}

	if index != c.Capacity {
		return nil, &CapacityMismatchError{Want: c.Capacity, Got: index}
	}

	g.syms.table.layout = Layout{
		FirstOpID:         first,
		FirstSequentialID: ID(sequentialStart),
		LastOpID:          ID(lastOpID),
		Capacity:          c.Capacity,
	}
	if err := g.syms.verify(); err != nil {
		return nil, err
	}

	log.Debugf("generated %v static symbols in %v slots, operator range %v..%v",
		g.syms.table.Len(), c.Capacity, first, lastOpID)
	return g.syms, nil
}

// characters places the operator characters and returns the first operator
// identity and the running index after them.
func (g *generator) characters() (ID, int, error) {
	c := g.catalog
	base := c.Characters[0].Char

	first := ID(c.FirstOpID)
	if c.Offsets == iddef.OffsetsCode {
		first = ID(base)
	}

	for i, ch := range c.Characters {
		offset := i
		if c.Offsets == iddef.OffsetsCode {
			offset = int(ch.Char - base)
		}
		id := EncodeOperator(first, offset)
		kind := Kind{Category: CategoryOperator, Position: offset}
		if err := g.createStatic(ch.Name, string(ch.Char), id, kind); err != nil {
			return 0, 0, err
		}
	}

	index, err := toIndex(ID(c.CharactersEnd()), c.Capacity)
	return first, index, err
}

// operators places compound operators. Operators repeating an earlier
// operator's text are dropped, and tokenless ones take no slot.
func (g *generator) operators(index int) (int, error) {
	seen := make(map[string]bool)
	for _, op := range g.catalog.Operators {
		if seen[op.Op] {
			log.Debugf("operator %v repeats %q, skipped", op.ID, op.Op)
			continue
		}
		seen[op.Op] = true
		if op.Token == "" {
			continue
		}

		kind := Kind{Category: CategorySequential, Position: index}
		if err := g.createStatic(op.Token, op.Op, EncodeSequential(index), kind); err != nil {
			return 0, err
		}
		index++
	}
	return index, nil
}

// preserved places preserved tokens. A token without predefined text still
// consumes its index.
func (g *generator) preserved(index int) (int, error) {
	for _, tok := range g.catalog.Preserved {
		text, ok := g.catalog.Predefined[tok]
		if !ok {
			log.Debugf("skipped preserved token %v, slot %v stays empty", tok, index)
			g.syms.reserved = append(g.syms.reserved, Reserved{Token: tok, Index: index})
			index++
			continue
		}

		kind := Kind{Category: CategorySequential, Position: index}
		if err := g.createStatic(iddef.PreservedName(tok), text, EncodeSequential(index), kind); err != nil {
			return 0, err
		}
		index++
	}
	return index, nil
}

// typed places typed tokens grouped by type, in the order the catalog
// declares the groups.
func (g *generator) typed(index int) (int, error) {
	for _, group := range g.catalog.Types {
		global := group.Type.IsGlobal()
		for _, tok := range group.Tokens {
			kind := Kind{Category: CategoryTyped, Position: index, Global: global}
			text := g.catalog.Predefined[tok]
			if err := g.createStatic(iddef.TypedName(tok), text, EncodeTyped(index, global), kind); err != nil {
				return 0, err
			}
			index++
		}
	}
	return index, nil
}

// createStatic makes a symbol with a table slot. Only generation may call
// it: a slot placed any other way breaks the capacity check.
func (g *generator) createStatic(name, text string, id ID, kind Kind) error {
	index := kind.Position
	if kind.Category != CategoryTyped {
		var err error
		if index, err = safecast.Convert[int](uint64(id)); err != nil {
			return &OutOfRangeError{ID: id, Capacity: g.catalog.Capacity}
		}
	}

	s := newSymbol(text, id, kind.Category)
	if err := g.syms.table.place(index, s); err != nil {
		return err
	}
	g.syms.catalog.add(s)
	g.syms.entries = append(g.syms.entries, Entry{
		Name:  name,
		Text:  text,
		ID:    id,
		Index: index,
		Kind:  kind,
	})
	g.syms.byName[name] = s
	return nil
}

// toIndex converts a running index held as an identity to an int.
func toIndex(id ID, capacity int) (int, error) {
	index, err := safecast.Convert[int](uint64(id))
	if err != nil {
		return 0, &OutOfRangeError{ID: id, Capacity: capacity}
	}
	return index, nil
}
