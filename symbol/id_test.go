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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLayout matches the small catalog used throughout the tests: '+' and
// '-' at 10 and 11, a reserved slot at 12 and one global at index 13.
var testLayout = Layout{
	FirstOpID:         10,
	FirstSequentialID: 12,
	LastOpID:          12,
	Capacity:          14,
}

func TestEncode(t *testing.T) {
	assert.Equal(t, ID(10), EncodeOperator(10, 0))
	assert.Equal(t, ID(43), EncodeOperator(33, 10))
	assert.Equal(t, ID(128), EncodeSequential(128))
	assert.Equal(t, ID(13<<4|0b0111), EncodeTyped(13, true))
	assert.Equal(t, ID(215), EncodeTyped(13, true))
	assert.Equal(t, ID(13<<4|0b0001), EncodeTyped(13, false))
}

func TestFlags(t *testing.T) {
	assert.Equal(t, ID(0b0001), StaticFlag)
	assert.Equal(t, ID(0b0110), GlobalFlags)

	global := EncodeTyped(200, true)
	assert.Equal(t, StaticFlag, global&StaticFlag)
	assert.Equal(t, GlobalFlags, global&GlobalFlags)

	local := EncodeTyped(200, false)
	assert.Equal(t, StaticFlag, local&StaticFlag)
	assert.Equal(t, ID(0), local&GlobalFlags)
}

func TestIndex(t *testing.T) {
	test := func(id ID, expected int) {
		t.Run(fmt.Sprintf("Index(%v)", uint64(id)), func(t *testing.T) {
			index, err := testLayout.Index(id)
			require.NoError(t, err)
			assert.Equal(t, expected, index)
			assert.Equal(t, expected, testLayout.IDToIndex(id))
		})
	}

	test(0, 0)
	test(10, 10)
	test(12, 12)
	test(215, 13)
	test(13<<4, 13)
}

func TestIndexOutOfRange(t *testing.T) {
	test := func(id ID) {
		t.Run(fmt.Sprintf("Index(%v)", uint64(id)), func(t *testing.T) {
			_, err := testLayout.Index(id)
			var oor *OutOfRangeError
			require.True(t, errors.As(err, &oor), "got %v", err)
			assert.Equal(t, id, oor.ID)
			assert.Equal(t, 14, oor.Capacity)

			defer func() {
				r := recover()
				require.NotNil(t, r, "IDToIndex did not panic")
				_, ok := r.(*OutOfRangeError)
				assert.True(t, ok, "panicked with %v", r)
			}()
			testLayout.IDToIndex(id)
		})
	}

	test(14 << 4)
	test(EncodeTyped(1000, false))
	test(Unassigned)
}

func TestRoundTripTyped(t *testing.T) {
	l := Layout{FirstOpID: 33, FirstSequentialID: 128, LastOpID: 165, Capacity: 216}
	for i := int(l.LastOpID) + 1; i < l.Capacity; i++ {
		for _, global := range []bool{false, true} {
			id := EncodeTyped(i, global)
			assert.Equal(t, i, l.IDToIndex(id))
			assert.True(t, l.IsStaticSymbol(id))

			kind, err := l.Decode(id)
			require.NoError(t, err)
			assert.Equal(t, Kind{Category: CategoryTyped, Position: i, Global: global}, kind)
			assert.Equal(t, id, l.Encode(kind))
		}
	}
}

func TestDecode(t *testing.T) {
	test := func(id ID, expected Kind) {
		t.Run(fmt.Sprintf("Decode(%v)", id), func(t *testing.T) {
			kind, err := testLayout.Decode(id)
			require.NoError(t, err)
			assert.Equal(t, expected, kind)
			assert.Equal(t, id, testLayout.Encode(kind))
		})
	}

	test(Unassigned, Kind{Category: CategoryDynamic})
	test(10, Kind{Category: CategoryOperator, Position: 0})
	test(11, Kind{Category: CategoryOperator, Position: 1})
	test(12, Kind{Category: CategorySequential, Position: 12})
	test(215, Kind{Category: CategoryTyped, Position: 13, Global: true})
	test(209, Kind{Category: CategoryTyped, Position: 13})
}

func TestDecodeMalformed(t *testing.T) {
	test := func(desc string, id ID) {
		t.Run(desc, func(t *testing.T) {
			_, err := testLayout.Decode(id)
			var bad *MalformedIDError
			assert.True(t, errors.As(err, &bad), "got %v", err)
		})
	}

	test("below operator range", 5)
	test("static flag cleared", 214)
	test("unknown scope bits", 13<<4|0b0011)
	test("typed index in operator range", EncodeTyped(5, false))
}

func TestLayoutIsStaticSymbol(t *testing.T) {
	test := func(id ID, expected bool) {
		t.Run(fmt.Sprintf("IsStaticSymbol(%v)", id), func(t *testing.T) {
			assert.Equal(t, expected, testLayout.IsStaticSymbol(id))
		})
	}

	test(10, true)
	test(12, true)
	test(215, true)
	test(209, true)
	test(214, false)
	test(14<<4|1, false)
	test(Unassigned, false)
	// Structurally static even though nothing lives in slot 0.
	test(13, true)
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "215", ID(215).String())
	assert.Equal(t, "unassigned", Unassigned.String())
	assert.Equal(t, "typed", CategoryTyped.String())
	assert.Equal(t, "Category(9)", Category(9).String())
}
