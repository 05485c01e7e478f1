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
	"strconv"

	"fortio.org/safecast"
)

// ID is the wire form of a symbol identity.
type ID uint64

const (
	// StaticFlag is set on every identity that owns a static table slot.
	StaticFlag ID = 0x1
	// GlobalFlags are set, together with StaticFlag, on global names.
	GlobalFlags ID = 0x03 << 1

	// Unassigned is the identity of every dynamic symbol.
	Unassigned ID = ^ID(0)

	scopeShift    = 4
	scopeMask  ID = 1<<scopeShift - 1
	localTag      = StaticFlag
	globalTag     = StaticFlag | GlobalFlags
)

func (id ID) String() string {
	if id == Unassigned {
		return "unassigned"
	}
	return strconv.FormatUint(uint64(id), 10)
}

// Category says which part of the catalog a symbol came from.
type Category uint8

const (
	CategoryDynamic Category = iota
	CategoryOperator
	CategorySequential
	CategoryTyped
)

func (c Category) String() string {
	switch c {
	case CategoryDynamic:
		return "dynamic"
	case CategoryOperator:
		return "operator"
	case CategorySequential:
		return "sequential"
	case CategoryTyped:
		return "typed"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Kind is the decoded form of an identity.
type Kind struct {
	Category Category
	// Position is the character offset for operators and the table index
	// for sequential and typed symbols.
	Position int
	// Global is only meaningful for typed symbols.
	Global bool
}

// EncodeOperator returns the identity of the operator character at offset.
func EncodeOperator(first ID, offset int) ID {
	return first + ID(offset)
}

// EncodeSequential returns the identity of a compound operator or
// preserved token placed at the running index.
func EncodeSequential(index int) ID {
	return ID(index)
}

// EncodeTyped returns the identity of a typed symbol at a table index.
func EncodeTyped(index int, global bool) ID {
	if global {
		return ID(index)<<scopeShift | globalTag
	}
	return ID(index)<<scopeShift | localTag
}

// Layout is the shape of a generated static table.
type Layout struct {
	FirstOpID ID
	// FirstSequentialID is where compound operators start, right after the
	// range used by operator characters.
	FirstSequentialID ID
	LastOpID          ID
	Capacity          int
}

// Index recovers the table index of an identity.
func (l Layout) Index(id ID) (int, error) {
	raw := uint64(id)
	if id > l.LastOpID {
		raw = uint64(id >> scopeShift)
	}
	index, err := safecast.Convert[int](raw)
	if err != nil || index >= l.Capacity {
		return 0, &OutOfRangeError{ID: id, Capacity: l.Capacity}
	}
	return index, nil
}

// IDToIndex is Index for identities that are known to be static. It panics
// with an *OutOfRangeError otherwise.
func (l Layout) IDToIndex(id ID) int {
	index, err := l.Index(id)
	if err != nil {
		panic(err)
	}
	return index
}

// IsStaticSymbol is the structural test for a static identity: it lies in
// the operator range, or it carries StaticFlag and its index fits the table.
// It does not look at the table, see CoreSymbols.IsStaticSymbol.
func (l Layout) IsStaticSymbol(id ID) bool {
	if id >= l.FirstOpID && id <= l.LastOpID {
		return true
	}
	return id&StaticFlag == StaticFlag && uint64(id>>scopeShift) < uint64(l.Capacity)
}

// Encode converts a Kind to its identity.
func (l Layout) Encode(k Kind) ID {
	switch k.Category {
	case CategoryDynamic:
		return Unassigned
	case CategoryOperator:
		return EncodeOperator(l.FirstOpID, k.Position)
	case CategorySequential:
		return EncodeSequential(k.Position)
	case CategoryTyped:
		return EncodeTyped(k.Position, k.Global)
	}
	panic(fmt.Sprintf("symbol: unknown category %v", k.Category))
}

// Decode converts an identity to its Kind.
func (l Layout) Decode(id ID) (Kind, error) {
	if id == Unassigned {
		return Kind{Category: CategoryDynamic}, nil
	}
	index, err := l.Index(id)
	if err != nil {
		return Kind{}, err
	}

	switch {
	case id < l.FirstOpID:
		return Kind{}, &MalformedIDError{id, "below the operator range"}
	case id < l.FirstSequentialID:
		return Kind{Category: CategoryOperator, Position: int(id - l.FirstOpID)}, nil
	case id <= l.LastOpID:
		return Kind{Category: CategorySequential, Position: index}, nil
	case ID(index) <= l.LastOpID:
		return Kind{}, &MalformedIDError{id, "typed index inside the operator range"}
	}

	switch id & scopeMask {
	case localTag:
		return Kind{Category: CategoryTyped, Position: index}, nil
	case globalTag:
		return Kind{Category: CategoryTyped, Position: index, Global: true}, nil
	}
	return Kind{}, &MalformedIDError{id, fmt.Sprintf("scope bits %04b", uint64(id&scopeMask))}
}
