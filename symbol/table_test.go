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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turrisxyz/truffleruby/iddef"
)

func TestTablePlace(t *testing.T) {
	tbl := newTable(3)
	plus := newSymbol("+", 1, CategoryOperator)

	require.NoError(t, tbl.place(1, plus))
	assert.Equal(t, 1, tbl.Len())
	got, ok := tbl.At(1)
	require.True(t, ok)
	assert.Same(t, plus, got)

	err := tbl.place(1, newSymbol("-", 1, CategoryOperator))
	var dup *DuplicateSlotError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, DuplicateSlotError{Index: 1, Existing: "+", Text: "-"}, *dup)
	assert.Same(t, plus, tbl.slots[1], "a rejected symbol must not replace the slot")
	assert.Equal(t, 1, tbl.Len())
}

func TestTablePlacePastCapacity(t *testing.T) {
	tbl := newTable(3)

	assert.NoError(t, tbl.place(3, newSymbol("x", EncodeTyped(3, true), CategoryTyped)))
	assert.NoError(t, tbl.place(10, newSymbol("y", EncodeTyped(10, true), CategoryTyped)))
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 3, tbl.Capacity())
	_, ok := tbl.At(3)
	assert.False(t, ok)
}

func TestGenerateOverCapacityKeepsCount(t *testing.T) {
	c := newTestCatalog()
	c.Capacity = 12
	c.Predefined["y"] = "y"
	c.Types[0].Tokens = append(c.Types[0].Tokens, "y")

	syms, err := Generate(c)
	assert.Nil(t, syms)

	// NULL, x and y land past slot 11 but are still counted.
	var mismatch *CapacityMismatchError
	require.True(t, errors.As(err, &mismatch), "got %v", err)
	assert.Equal(t, CapacityMismatchError{Want: 12, Got: 15}, *mismatch)

	var oor *OutOfRangeError
	assert.False(t, errors.As(err, &oor))
	var cfg *iddef.ConfigError
	assert.False(t, errors.As(err, &cfg))
}
