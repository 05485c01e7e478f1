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

// Package iddef describes the well-known names that are interned into the
// static symbol table.
//
// A Catalog is closed configuration: operator characters, compound operator
// tokens, preserved tokens and typed tokens, each group in a fixed order.
// The order matters because identities are assigned from a running index as
// the groups are walked. The default catalog is embedded TOML in the id.def
// line format and is returned by Default.
package iddef
