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
	"bytes"
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/amazon-ion/ion-go/ion"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turrisxyz/truffleruby/symbol"
)

func TestNewOptions(t *testing.T) {
	test := func(args []string, expected options) {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			o, err := newOptions(args)
			require.NoError(t, err)
			assert.Equal(t, expected, *o)
		})
	}

	test(nil, options{pkg: defaultPackage})
	test([]string{"-c", "core.toml", "-o", "out.go"}, options{catalog: "core.toml", output: "out.go", pkg: defaultPackage})
	test([]string{"--package", "syms", "-v", "-v"}, options{pkg: "syms", verbose: 2})
	test([]string{"-vv", "-r", "table.cbor"}, options{pkg: defaultPackage, read: "table.cbor", verbose: 2})
	test([]string{"--"}, options{pkg: defaultPackage})
}

func TestNewOptionsErrors(t *testing.T) {
	test := func(args ...string) {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := newOptions(args)
			var usage *usageError
			assert.True(t, errors.As(err, &usage), "got %v", err)
		})
	}

	test("-c")
	test("-o")
	test("-p")
	test("-r")
	test("--bogus")
	test("stray")
	test("-v", "--", "stray")
}

func TestConstantsFile(t *testing.T) {
	f, err := constantsFile(symbol.MustDefault(), "coresym")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	src := buf.String()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "coresym.go", src, parser.ParseComments)
	require.NoError(t, err, src)
	assert.Equal(t, "coresym", file.Name.Name)
	assert.True(t, ast.IsGenerated(file), "missing generated header")

	test := func(name, value string) {
		t.Run(name, func(t *testing.T) {
			re := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(name) + `\s+(symbol\.ID\s+)?=\s+` + value + `\b`)
			assert.Regexp(t, re, src)
		})
	}

	test("FirstOpID", "33")
	test("FirstSequentialID", "128")
	test("LastOpID", "165")
	test("StaticSymbolsSize", "216")
	test("SymPLUS", "43")
	test("SymDOT2", "128")
	test("SymNULL", "150")
	test("SymMETHODMISSING", "2769")
	test("Sym__SEND__", "3009")
	test("SymLASTLINE", "3431")

	assert.Contains(t, src, `// "method_missing"`)
	assert.NotContains(t, src, "SymCLASS", "dynamic names have no identity")
}

func TestWriteTable(t *testing.T) {
	syms := symbol.MustDefault()

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, syms))

	var got table
	require.NoError(t, ion.Unmarshal(buf.Bytes(), &got))

	if diff := cmp.Diff(*newTable(syms), got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, got.Symbols, syms.Table().Len())
	assert.Equal(t, []reserved{{Token: "_debug_created_info", Index: 165}}, got.Reserved)
}

func TestSnapshotCommand(t *testing.T) {
	dir := t.TempDir()
	cbor := filepath.Join(dir, "core.cbor")
	out := filepath.Join(dir, "core.ion")

	require.NoError(t, snapshot([]string{"-o", cbor}))
	require.NoError(t, snapshot([]string{"-r", cbor, "-o", out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var got table
	require.NoError(t, ion.Unmarshal(data, &got))
	if diff := cmp.Diff(*newTable(symbol.MustDefault()), got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}

	var usage *usageError
	assert.True(t, errors.As(snapshot(nil), &usage))
	assert.True(t, errors.As(snapshot([]string{"-r", cbor, "-c", "x.toml"}), &usage))
}

func TestVerifyCommand(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("capacity = 0\n"), 0644))
	assert.Error(t, verify([]string{"-c", bad}))

	var buf bytes.Buffer
	require.NoError(t, summarize(&buf, symbol.MustDefault()))
	assert.Equal(t, "ok: 118 static symbols in 216 slots, operators 33..165, sequential from 128, 1 reserved\n", buf.String())
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale contents that are longer"), 0o644))

	require.NoError(t, writeOutput(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "fresh")
		return err
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data), "output must be truncated")

	failure := errors.New("write failed")
	assert.Same(t, failure, writeOutput(path, func(io.Writer) error { return failure }))

	w, err := openOutput("")
	require.NoError(t, err)
	_, isFile := w.(*os.File)
	assert.False(t, isFile, "standard output is wrapped")
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "closing the wrapper leaves standard output open")

	_, err = openOutput(filepath.Join(t.TempDir(), "missing", "out.txt"))
	assert.Error(t, err)
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printVersion(&buf))

	var got struct {
		Version   string `ion:"version"`
		BuildTime string `ion:"build_time"`
	}
	require.NoError(t, ion.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "unknown-commit", got.Version)
	assert.Equal(t, "unknown-buildtime", got.BuildTime)
}
