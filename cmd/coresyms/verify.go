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
	"fmt"
	"io"
	"os"

	"github.com/turrisxyz/truffleruby/symbol"
)

// verify builds the table and prints a summary. Any catalog error is
// returned, which makes main exit non-zero.
func verify(args []string) error {
	o, err := newOptions(args)
	if err != nil {
		return err
	}
	if o.output != "" || o.read != "" {
		return usagef("verify takes only -c and -v")
	}
	o.configureLogging()

	syms, err := o.symbols()
	if err != nil {
		return err
	}
	return summarize(os.Stdout, syms)
}

func summarize(w io.Writer, syms *symbol.CoreSymbols) error {
	l := syms.Layout()
	_, err := fmt.Fprintf(w, "ok: %v static symbols in %v slots, operators %v..%v, sequential from %v, %v reserved\n",
		syms.Table().Len(), l.Capacity, l.FirstOpID, l.LastOpID, l.FirstSequentialID, len(syms.Reserved()))
	return err
}
