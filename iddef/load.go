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
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

//go:embed core.toml
var coreTOML []byte

// catalogFile is the TOML shape of a catalog.
type catalogFile struct {
	Capacity   int            `toml:"capacity"`
	Dynamic    []string       `toml:"dynamic"`
	TokenOps   string         `toml:"token_ops"`
	Predefined string         `toml:"predefined"`
	Characters charactersFile `toml:"characters"`
}

type charactersFile struct {
	// Either List, or the range First..Last minus letters, digits and Exclude.
	List            string            `toml:"list"`
	First           string            `toml:"first"`
	Last            string            `toml:"last"`
	Exclude         string            `toml:"exclude"`
	Offsets         string            `toml:"offsets"`
	FirstOpID       uint64            `toml:"first_op_id"`
	SequentialStart uint64            `toml:"sequential_start"`
	Names           map[string]string `toml:"names"`
}

var (
	coreOnce    sync.Once
	coreCatalog *Catalog
	coreErr     error
)

// Default returns a copy of the embedded core catalog.
func Default() (*Catalog, error) {
	coreOnce.Do(func() {
		coreCatalog, coreErr = Load(bytes.NewReader(coreTOML))
		if coreErr != nil {
			coreErr = fmt.Errorf("iddef: embedded core catalog: %w", coreErr)
		}
	})
	if coreErr != nil {
		return nil, coreErr
	}
	return coreCatalog.Clone(), nil
}

// LoadFile reads a TOML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	return c, nil
}

// Load decodes a TOML catalog and validates it.
func Load(r io.Reader) (*Catalog, error) {
	var f catalogFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, &ConfigError{"keys", fmt.Sprintf("unknown key %v", undecoded[0])}
	}

	c := &Catalog{
		Capacity:        f.Capacity,
		FirstOpID:       f.Characters.FirstOpID,
		SequentialStart: f.Characters.SequentialStart,
		Dynamic:         f.Dynamic,
	}

	switch f.Characters.Offsets {
	case "", "code":
		c.Offsets = OffsetsCode
	case "position":
		c.Offsets = OffsetsPosition
	default:
		return nil, &ConfigError{"offsets", fmt.Sprintf("unknown mode %q", f.Characters.Offsets)}
	}

	if c.Characters, err = f.Characters.build(); err != nil {
		return nil, err
	}
	if c.Operators, err = parseTokenOps(f.TokenOps); err != nil {
		return nil, err
	}

	defs, err := parsePredefined(f.Predefined)
	if err != nil {
		return nil, err
	}
	c.Preserved = defs.preserved
	c.Predefined = defs.predefined
	for _, t := range defs.order {
		c.Types = append(c.Types, TypeGroup{Type: t, Tokens: defs.typed[t]})
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// build resolves the character set and attaches every character's name.
func (f *charactersFile) build() ([]Character, error) {
	var chars []rune
	if f.List != "" {
		if f.First != "" || f.Last != "" {
			return nil, &ConfigError{"characters", "list and first/last are exclusive"}
		}
		chars = []rune(f.List)
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	} else if f.First != "" || f.Last != "" {
		first, err := single("first", f.First)
		if err != nil {
			return nil, err
		}
		last, err := single("last", f.Last)
		if err != nil {
			return nil, err
		}
		for c := first; c <= last; c++ {
			if unicode.IsLetter(c) || unicode.IsDigit(c) || strings.ContainsRune(f.Exclude, c) {
				continue
			}
			chars = append(chars, c)
		}
	}

	out := make([]Character, 0, len(chars))
	for _, c := range chars {
		name, ok := f.Names[string(c)]
		if !ok {
			return nil, &ConfigError{"characters", fmt.Sprintf("%q has no name", c)}
		}
		out = append(out, Character{Char: c, Name: name})
	}
	return out, nil
}

func single(field, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, &ConfigError{"characters." + field, fmt.Sprintf("%q is not a single character", s)}
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
