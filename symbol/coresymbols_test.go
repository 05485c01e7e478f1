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
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStaticSymbolAgreesWithLookup(t *testing.T) {
	test := func(desc string, syms *CoreSymbols, last ID) {
		t.Run(desc, func(t *testing.T) {
			for id := ID(0); id <= last; id++ {
				_, err := syms.Lookup(id)
				assert.Equal(t, err == nil, syms.IsStaticSymbol(id), "identity %v", uint64(id))
			}
			assert.False(t, syms.IsStaticSymbol(Unassigned))
		})
	}

	small, err := Generate(newTestCatalog())
	require.NoError(t, err)
	test("small", small, 400)
	test("default", MustDefault(), 4000)
}

func TestIsStaticSymbolWithoutTypedTokens(t *testing.T) {
	c := newTestCatalog()
	c.Capacity = 13
	c.Types = nil
	c.Predefined = nil

	syms, err := Generate(c)
	require.NoError(t, err)
	assert.Equal(t, Layout{FirstOpID: 10, FirstSequentialID: 12, LastOpID: 12, Capacity: 13}, syms.Layout())

	// 13 has the static flag and maps to slot 0, which is empty.
	assert.True(t, syms.Layout().IsStaticSymbol(13))
	assert.False(t, syms.IsStaticSymbol(13))

	_, err = syms.Lookup(13)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLookupOutOfRange(t *testing.T) {
	syms, err := Generate(newTestCatalog())
	require.NoError(t, err)

	_, err = syms.Lookup(EncodeTyped(14, true))
	var oor *OutOfRangeError
	assert.True(t, errors.As(err, &oor), "got %v", err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestLookupWrongIdentityInSlot(t *testing.T) {
	syms, err := Generate(newTestCatalog())
	require.NoError(t, err)

	// Slot 13 holds the global x; the local encoding of 13 is not it.
	_, err = syms.Lookup(EncodeTyped(13, false))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, syms.IsStaticSymbol(EncodeTyped(13, false)))
}

func TestCreateDynamicConcurrent(t *testing.T) {
	syms, err := Generate(newTestCatalog())
	require.NoError(t, err)
	before := syms.Catalog().Len()

	const workers, perWorker = 8, 200

	var wg sync.WaitGroup
	created := make([][]*Symbol, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				created[w] = append(created[w], syms.CreateDynamic(fmt.Sprintf("dyn_%v_%v", w, i)))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, before+workers*perWorker, syms.Catalog().Len())
	assert.Equal(t, 3, syms.Table().Len(), "dynamic symbols never take a slot")

	seen := make(map[*Symbol]bool)
	syms.Catalog().Range(func(i int, s *Symbol) bool {
		assert.False(t, seen[s], "%v recorded twice", s)
		seen[s] = true
		return true
	})
	for _, batch := range created {
		for _, s := range batch {
			assert.True(t, seen[s], "%v missing from catalog", s)
			assert.Equal(t, Unassigned, s.ID())
			assert.Equal(t, CategoryDynamic, s.Category())
		}
	}
}

func TestCatalogRangeStops(t *testing.T) {
	syms := MustDefault()

	count := 0
	syms.Catalog().Range(func(i int, s *Symbol) bool {
		count++
		return i < 4
	})
	assert.Equal(t, 5, count)

	_, ok := syms.Catalog().At(-1)
	assert.False(t, ok)
	_, ok = syms.Catalog().At(syms.Catalog().Len())
	assert.False(t, ok)
}

func TestSymbol(t *testing.T) {
	syms, err := Generate(newTestCatalog())
	require.NoError(t, err)

	plus := syms.MustByName("PLUS")
	assert.Equal(t, ":+(10)", plus.String())
	assert.True(t, plus.IsStatic())
	assert.Equal(t, CategoryOperator, plus.Category())

	b := plus.Bytes()
	assert.Equal(t, []byte("+"), b)
	b[0] = '*'
	assert.Equal(t, []byte("+"), plus.Bytes(), "Bytes must return a copy")

	dyn := syms.CreateDynamic("+")
	assert.Equal(t, plus.Hash(), dyn.Hash())
	assert.False(t, plus.Equal(dyn), "categories differ")
	assert.True(t, dyn.Equal(syms.CreateDynamic("+")))
	assert.False(t, dyn.Equal(syms.CreateDynamic("-")))

	var none *Symbol
	assert.True(t, none.Equal(nil))
	assert.False(t, plus.Equal(nil))
}

func TestMustByNamePanics(t *testing.T) {
	syms := MustDefault()
	assert.Panics(t, func() { syms.MustByName("NO_SUCH_SYMBOL") })
	assert.Panics(t, func() { syms.IDToIndex(Unassigned) })
}
