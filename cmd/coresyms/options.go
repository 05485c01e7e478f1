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
	"strings"

	"github.com/tliron/commonlog"

	"github.com/turrisxyz/truffleruby/iddef"
	"github.com/turrisxyz/truffleruby/symbol"
)

const defaultPackage = "coresym"

// A usageError is a problem with the command line rather than the catalog.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(msg string) error {
	return &usageError{msg}
}

// options are the flags shared by every command.
type options struct {
	catalog string
	output  string
	pkg     string
	read    string
	verbose int
}

func newOptions(args []string) (*options, error) {
	ret := &options{pkg: defaultPackage}

	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			break
		}
		if arg == "-" || arg == "--" {
			i++
			break
		}

		switch arg {
		case "-c", "--catalog":
			i++
			if i >= len(args) {
				return nil, usagef("no catalog file specified")
			}
			ret.catalog = args[i]

		case "-o", "--output":
			i++
			if i >= len(args) {
				return nil, usagef("no output file specified")
			}
			ret.output = args[i]

		case "-p", "--package":
			i++
			if i >= len(args) {
				return nil, usagef("no package name specified")
			}
			ret.pkg = args[i]

		case "-r", "--read":
			i++
			if i >= len(args) {
				return nil, usagef("no snapshot file specified")
			}
			ret.read = args[i]

		case "-v", "--verbose":
			ret.verbose++

		case "-vv":
			ret.verbose += 2

		default:
			return nil, usagef("unrecognized option \"" + arg + "\"")
		}
	}

	if i < len(args) {
		return nil, usagef("unexpected argument \"" + args[i] + "\"")
	}

	return ret, nil
}

// configureLogging sends log output to stderr at the requested verbosity.
func (o *options) configureLogging() {
	commonlog.Configure(o.verbose, nil)
}

// loadCatalog returns the catalog named by -c, or the built-in one.
func (o *options) loadCatalog() (*iddef.Catalog, error) {
	if o.catalog == "" {
		return iddef.Default()
	}
	log.Infof("loading catalog %v", o.catalog)
	return iddef.LoadFile(o.catalog)
}

// symbols generates the static table from the selected catalog.
func (o *options) symbols() (*symbol.CoreSymbols, error) {
	c, err := o.loadCatalog()
	if err != nil {
		return nil, err
	}
	return symbol.Generate(c)
}
