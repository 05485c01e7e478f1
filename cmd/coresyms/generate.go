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
	"strconv"

	"fortio.org/safecast"
	"github.com/dave/jennifer/jen"

	"github.com/turrisxyz/truffleruby/symbol"
)

const symbolPath = "github.com/turrisxyz/truffleruby/symbol"

// generate writes Go source declaring one constant per static symbol.
func generate(args []string) error {
	o, err := newOptions(args)
	if err != nil {
		return err
	}
	o.configureLogging()

	syms, err := o.symbols()
	if err != nil {
		return err
	}
	f, err := constantsFile(syms, o.pkg)
	if err != nil {
		return err
	}
	return writeOutput(o.output, func(w io.Writer) error {
		return f.Render(w)
	})
}

// constantsFile lays out the identities of syms as a Go file in package pkg.
func constantsFile(syms *symbol.CoreSymbols, pkg string) (*jen.File, error) {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by coresyms generate. DO NOT EDIT.")

	l := syms.Layout()
	layout := []struct {
		name string
		id   symbol.ID
	}{
		{"FirstOpID", l.FirstOpID},
		{"FirstSequentialID", l.FirstSequentialID},
		{"LastOpID", l.LastOpID},
	}

	var defs []jen.Code
	for _, d := range layout {
		lit, err := literal(d.id)
		if err != nil {
			return nil, err
		}
		defs = append(defs, jen.Id(d.name).Qual(symbolPath, "ID").Op("=").Add(lit))
	}
	defs = append(defs, jen.Id("StaticSymbolsSize").Op("=").Lit(l.Capacity))
	f.Const().Defs(defs...)
	f.Line()

	var consts []jen.Code
	for _, e := range syms.Entries() {
		lit, err := literal(e.ID)
		if err != nil {
			return nil, err
		}
		consts = append(consts, jen.Id("Sym"+e.Name).Qual(symbolPath, "ID").Op("=").Add(lit).
			Comment(strconv.Quote(e.Text)))
	}
	f.Comment("Identities of the static core symbols.")
	f.Const().Defs(consts...)

	return f, nil
}

// literal renders id as an untyped integer constant.
func literal(id symbol.ID) (jen.Code, error) {
	n, err := safecast.Convert[int](uint64(id))
	if err != nil {
		return nil, err
	}
	return jen.Lit(n), nil
}
