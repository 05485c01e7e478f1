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

package iddef

import (
	"fmt"
	"strings"
)

// OffsetMode selects how an operator character's offset from the first
// operator identity is computed.
type OffsetMode uint8

const (
	// OffsetsCode uses the distance between character codes, so the smallest
	// character code is the first operator identity and every character's
	// identity is its own code.
	OffsetsCode OffsetMode = iota
	// OffsetsPosition numbers the characters densely, in sorted order,
	// starting at Catalog.FirstOpID.
	OffsetsPosition
)

func (m OffsetMode) String() string {
	switch m {
	case OffsetsCode:
		return "code"
	case OffsetsPosition:
		return "position"
	default:
		return fmt.Sprintf("OffsetMode(%d)", uint8(m))
	}
}

// A Character is a punctuation character interned as its own symbol.
type Character struct {
	Char rune
	Name string
}

// An Operator is a compound operator token. Token is empty for operators
// that get no symbol of their own.
type Operator struct {
	ID    string
	Op    string
	Token string
}

// A TypeGroup holds the typed tokens of one Type in declaration order.
type TypeGroup struct {
	Type   Type
	Tokens []string
}

// A Catalog is the complete, ordered description of the names to intern.
type Catalog struct {
	// Capacity is the declared size of the static table. Walking every
	// group must end with the running index equal to it.
	Capacity int

	Offsets OffsetMode
	// FirstOpID is the identity of the first character under OffsetsPosition.
	// It is ignored under OffsetsCode.
	FirstOpID uint64
	// SequentialStart, when non-zero, is where the running index resumes
	// after the characters. Zero continues right after the last character.
	SequentialStart uint64

	// Dynamic names are created without a table slot before generation.
	Dynamic []string

	// Characters must be sorted by code.
	Characters []Character
	Operators  []Operator
	Preserved  []string
	// Predefined maps a preserved or typed token to its display text. A
	// preserved token missing from it reserves a slot without a symbol.
	Predefined map[string]string
	// Types are placed group by group in slice order. A loaded catalog lists
	// them in the order each type's first name appears.
	Types []TypeGroup
}

// Tokens returns the tokens declared for t.
func (c *Catalog) Tokens(t Type) []string {
	for _, g := range c.Types {
		if g.Type == t {
			return g.Tokens
		}
	}
	return nil
}

// CharactersEnd returns the running index right after the last character.
func (c *Catalog) CharactersEnd() uint64 {
	if len(c.Characters) == 0 {
		return c.FirstOpID
	}
	if c.Offsets == OffsetsCode {
		return uint64(c.Characters[len(c.Characters)-1].Char) + 1
	}
	return c.FirstOpID + uint64(len(c.Characters))
}

// Validate checks everything about the catalog that can be checked without
// assigning identities.
func (c *Catalog) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{"capacity", fmt.Sprintf("must be positive, got %v", c.Capacity)}
	}

	if c.Offsets != OffsetsCode && c.Offsets != OffsetsPosition {
		return &ConfigError{"offsets", fmt.Sprintf("unknown mode %v", c.Offsets)}
	}
	if len(c.Characters) == 0 {
		return &ConfigError{"characters", "at least one character is needed to anchor the operator range"}
	}

	for i, ch := range c.Characters {
		if ch.Name == "" {
			return &ConfigError{"characters", fmt.Sprintf("%q has no name", ch.Char)}
		}
		if i > 0 && ch.Char <= c.Characters[i-1].Char {
			return &ConfigError{"characters", fmt.Sprintf("%q is out of order", ch.Char)}
		}
	}

	if c.SequentialStart != 0 && c.SequentialStart < c.CharactersEnd() {
		return &ConfigError{"sequential_start", fmt.Sprintf("%v overlaps the characters ending at %v",
			c.SequentialStart, c.CharactersEnd())}
	}

	seen := make(map[Type]bool)
	for _, g := range c.Types {
		if !g.Type.Valid() {
			return &ConfigError{"types", g.Type.String() + " is not a known type"}
		}
		if seen[g.Type] {
			return &ConfigError{"types", g.Type.String() + " is declared twice"}
		}
		seen[g.Type] = true

		for _, tok := range g.Tokens {
			if _, ok := c.Predefined[tok]; !ok {
				return &ConfigError{"predefined", fmt.Sprintf("%v token %v has no text", g.Type, tok)}
			}
		}
	}

	return c.checkNames()
}

// checkNames makes sure no two symbols end up with the same constant name.
func (c *Catalog) checkNames() error {
	names := make(map[string]string)
	add := func(name, what string) error {
		if name == "" {
			return &ConfigError{"names", what + " has an empty name"}
		}
		if prev, ok := names[name]; ok {
			return &ConfigError{"names", fmt.Sprintf("%v is used by both %v and %v", name, prev, what)}
		}
		names[name] = what
		return nil
	}

	for _, d := range c.Dynamic {
		if err := add(DynamicName(d), "dynamic "+d); err != nil {
			return err
		}
	}
	for _, ch := range c.Characters {
		if err := add(ch.Name, fmt.Sprintf("character %q", ch.Char)); err != nil {
			return err
		}
	}
	ops := make(map[string]bool)
	for _, op := range c.Operators {
		if ops[op.Op] || op.Token == "" {
			continue
		}
		ops[op.Op] = true
		if err := add(op.Token, "operator "+op.Op); err != nil {
			return err
		}
	}
	for _, tok := range c.Preserved {
		if err := add(PreservedName(tok), "preserved "+tok); err != nil {
			return err
		}
	}
	for _, g := range c.Types {
		for _, tok := range g.Tokens {
			if err := add(TypedName(tok), strings.ToLower(g.Type.String())+" "+tok); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	cp := *c
	cp.Dynamic = append([]string(nil), c.Dynamic...)
	cp.Characters = append([]Character(nil), c.Characters...)
	cp.Operators = append([]Operator(nil), c.Operators...)
	cp.Preserved = append([]string(nil), c.Preserved...)
	cp.Predefined = make(map[string]string, len(c.Predefined))
	for k, v := range c.Predefined {
		cp.Predefined[k] = v
	}
	cp.Types = make([]TypeGroup, len(c.Types))
	for i, g := range c.Types {
		cp.Types[i] = TypeGroup{Type: g.Type, Tokens: append([]string(nil), g.Tokens...)}
	}
	return &cp
}

// PreservedName is the constant name of a preserved token.
func PreservedName(token string) string {
	return strings.ToUpper(strings.TrimPrefix(token, "_"))
}

// TypedName is the constant name of a typed token.
func TypedName(token string) string {
	return strings.ToUpper(token)
}

// DynamicName is the constant name of a dynamic core symbol.
func DynamicName(name string) string {
	return strings.ToUpper(name)
}
