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

import "fmt"

// Type is the scope a typed token is interned with. The set is closed.
type Type uint8

const (
	// Local names, such as method and local variable names.
	Local Type = iota
	// Global variable names.
	Global
)

// Types lists every Type.
var Types = []Type{Local, Global}

// IsGlobal reports whether tokens of this type carry global semantics.
func (t Type) IsGlobal() bool {
	switch t {
	case Local:
		return false
	case Global:
		return true
	}
	panic(fmt.Sprintf("iddef: unknown type %d", uint8(t)))
}

// Valid reports whether t is one of Types.
func (t Type) Valid() bool {
	for _, v := range Types {
		if t == v {
			return true
		}
	}
	return false
}

func (t Type) String() string {
	switch t {
	case Local:
		return "LOCAL"
	case Global:
		return "GLOBAL"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}
