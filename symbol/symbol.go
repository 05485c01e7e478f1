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

	"github.com/zeebo/xxh3"
)

// A Symbol is an immutable interned name.
type Symbol struct {
	text     string
	id       ID
	category Category
	bytes    []byte
	hash     uint64
}

func newSymbol(text string, id ID, category Category) *Symbol {
	return &Symbol{
		text:     text,
		id:       id,
		category: category,
		bytes:    []byte(text),
		hash:     xxh3.HashString(text),
	}
}

// Text returns the display string.
func (s *Symbol) Text() string {
	return s.text
}

// ID returns the identity, Unassigned for dynamic symbols.
func (s *Symbol) ID() ID {
	return s.id
}

// Category returns the catalog group the symbol was created from.
func (s *Symbol) Category() Category {
	return s.category
}

// IsStatic reports whether the symbol owns a static table slot.
func (s *Symbol) IsStatic() bool {
	return s.id != Unassigned
}

// Bytes returns a copy of the encoded text.
func (s *Symbol) Bytes() []byte {
	return append([]byte(nil), s.bytes...)
}

// Hash returns the hash of the text.
func (s *Symbol) Hash() uint64 {
	return s.hash
}

// Equal reports whether two symbols have the same text and category.
func (s *Symbol) Equal(o *Symbol) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.category == o.category && s.hash == o.hash && s.text == o.text
}

func (s *Symbol) String() string {
	return fmt.Sprintf(":%v(%v)", s.text, s.id)
}
