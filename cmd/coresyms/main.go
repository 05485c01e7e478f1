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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amazon-ion/ion-go/ion"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/turrisxyz/truffleruby/internal"
)

var log = commonlog.GetLogger("coresyms")

// main is the main entry point for coresyms.
func main() {
	if len(os.Args) <= 1 {
		printHelp()
		return
	}

	var err error

	switch os.Args[1] {
	case "help", "--help", "-h":
		printHelp()

	case "version", "--version":
		err = printVersion(os.Stdout)

	case "generate":
		err = generate(os.Args[2:])

	case "dump":
		err = dump(os.Args[2:])

	case "verify":
		err = verify(os.Args[2:])

	case "snapshot":
		err = snapshot(os.Args[2:])

	default:
		err = errors.New("unrecognized command \"" + os.Args[1] + "\"")
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		if _, ok := err.(*usageError); ok {
			printHelp()
		}
		os.Exit(1)
	}
}

// printHelp prints the help message for the program.
func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  coresyms help")
	fmt.Println("  coresyms version")
	fmt.Println("  coresyms generate [-c catalog.toml] [-p package] [-o out.go]")
	fmt.Println("  coresyms dump [-c catalog.toml] [-o out.ion]")
	fmt.Println("  coresyms verify [-c catalog.toml]")
	fmt.Println("  coresyms snapshot [-c catalog.toml] -o out.cbor")
	fmt.Println("  coresyms snapshot -r in.cbor [-o out.ion]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  help       Prints this help message.")
	fmt.Println("  version    Prints version information about this tool.")
	fmt.Println("  generate   Writes Go constants for every static core symbol.")
	fmt.Println("  dump       Writes the static symbol table as Ion text.")
	fmt.Println("  verify     Builds the static symbol table and reports its layout.")
	fmt.Println("  snapshot   Writes the static symbol table as CBOR, or reads one back and dumps it.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -c, --catalog   Token catalog to use instead of the built-in one.")
	fmt.Println("  -o, --output    Output file, standard output if not given.")
	fmt.Println("  -p, --package   Package name for generated Go source (default \"coresym\").")
	fmt.Println("  -r, --read      Snapshot file to read.")
	fmt.Println("  -v, --verbose   Log more; repeat for debug output.")
}

// printVersion prints (in ion) the version info for this tool.
func printVersion(out io.Writer) error {
	w := ion.NewTextWriterOpts(out, ion.TextWriterPretty)

	if err := w.BeginStruct(); err != nil {
		return err
	}
	{
		if err := w.FieldName(ion.NewSymbolTokenFromString("version")); err != nil {
			return err
		}
		if err := w.WriteString(internal.GitCommit); err != nil {
			return err
		}

		if err := w.FieldName(ion.NewSymbolTokenFromString("build_time")); err != nil {
			return err
		}
		buildtime, err := ion.NewTimestampFromStr(internal.BuildTime, ion.TimestampPrecisionSecond, ion.TimezoneUTC)
		if err == nil {
			err = w.WriteTimestamp(buildtime)
		} else {
			err = w.WriteString(internal.BuildTime)
		}
		if err != nil {
			return err
		}
	}
	if err := w.EndStruct(); err != nil {
		return err
	}

	return w.Finish()
}
