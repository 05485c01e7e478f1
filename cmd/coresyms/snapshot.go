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
	"os"

	"github.com/turrisxyz/truffleruby/symbol"
)

// snapshot writes a CBOR snapshot with -o, or with -r reads one back and
// dumps it as Ion.
func snapshot(args []string) error {
	o, err := newOptions(args)
	if err != nil {
		return err
	}
	o.configureLogging()

	if o.read != "" {
		if o.catalog != "" {
			return usagef("-c and -r cannot be used together")
		}
		data, err := os.ReadFile(o.read)
		if err != nil {
			return err
		}
		syms, err := symbol.LoadSnapshot(data)
		if err != nil {
			return err
		}
		log.Infof("read %v static symbols from %v", syms.Table().Len(), o.read)
		return writeOutput(o.output, func(w io.Writer) error {
			return writeTable(w, syms)
		})
	}

	if o.output == "" {
		return usagef("snapshot needs -o or -r")
	}
	syms, err := o.symbols()
	if err != nil {
		return err
	}
	data, err := symbol.MarshalSnapshot(syms)
	if err != nil {
		return err
	}
	return writeOutput(o.output, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
