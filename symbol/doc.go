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

// Package symbol interns the runtime's well-known names.
//
// Every name in an iddef.Catalog gets a stable identity and a slot in a
// fixed-size static table. Identities are bit-packed integers:
//
//	bit 0      static flag
//	bits 1-2   global flags (0b11 for global names)
//	bits 4-    table index, for identities above LastOpID
//
// Identities from FirstOpID to LastOpID (operator characters, compound
// operators and preserved tokens) are their own table index.
//
// Generate walks a catalog once and returns a CoreSymbols holding the
// static table and the append-only catalog of every symbol created. The
// static table is immutable afterwards and safe for concurrent readers;
// dynamic symbols may be created from any goroutine.
//
//	syms := symbol.MustDefault()
//	plus, _ := syms.ByName("PLUS")
//	s, err := syms.Lookup(plus.ID())
package symbol
