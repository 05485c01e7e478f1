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

package main

import (
	"io"

	"github.com/amazon-ion/ion-go/ion"

	"github.com/turrisxyz/truffleruby/symbol"
)

// table is the Ion form of a static symbol table.
type table struct {
	FirstOpID         uint64     `ion:"first_op_id"`
	FirstSequentialID uint64     `ion:"first_sequential_id"`
	LastOpID          uint64     `ion:"last_op_id"`
	Capacity          int        `ion:"capacity"`
	Symbols           []entry    `ion:"symbols"`
	Reserved          []reserved `ion:"reserved,omitempty"`
}

type entry struct {
	Name   string `ion:"name"`
	Text   string `ion:"text"`
	ID     uint64 `ion:"id"`
	Index  int    `ion:"index"`
	Kind   string `ion:"kind"`
	Global bool   `ion:"global,omitempty"`
}

type reserved struct {
	Token string `ion:"token"`
	Index int    `ion:"index"`
}

func dump(args []string) error {
	o, err := newOptions(args)
	if err != nil {
		return err
	}
	o.configureLogging()

	syms, err := o.symbols()
	if err != nil {
		return err
	}
	return writeOutput(o.output, func(w io.Writer) error {
		return writeTable(w, syms)
	})
}

func newTable(syms *symbol.CoreSymbols) *table {
	l := syms.Layout()
	t := &table{
		FirstOpID:         uint64(l.FirstOpID),
		FirstSequentialID: uint64(l.FirstSequentialID),
		LastOpID:          uint64(l.LastOpID),
		Capacity:          l.Capacity,
	}
	for _, e := range syms.Entries() {
		t.Symbols = append(t.Symbols, entry{
			Name:   e.Name,
			Text:   e.Text,
			ID:     uint64(e.ID),
			Index:  e.Index,
			Kind:   e.Kind.Category.String(),
			Global: e.Kind.Global,
		})
	}
	for _, r := range syms.Reserved() {
		t.Reserved = append(t.Reserved, reserved{Token: r.Token, Index: r.Index})
	}
	return t
}

// writeTable writes syms to out as pretty Ion text.
func writeTable(out io.Writer, syms *symbol.CoreSymbols) error {
	w := ion.NewTextWriterOpts(out, ion.TextWriterPretty)
	if err := ion.MarshalTo(w, newTable(syms)); err != nil {
		return err
	}
	return w.Finish()
}
