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

// A ConfigError is returned when a catalog is internally inconsistent.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("iddef: invalid %v: %v", e.Field, e.Msg)
}

// A SyntaxError is returned when an id.def line cannot be parsed.
type SyntaxError struct {
	Section string
	Msg     string
	Line    int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("iddef: syntax error in %v: %v (line %v)", e.Section, e.Msg, e.Line)
}

// A DuplicateNameError is returned when a name or token is defined twice.
type DuplicateNameError struct {
	Name string
	Line int
	Prev int
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("iddef: %v is already registered at line %v (line %v)", e.Name, e.Prev, e.Line)
}

// An UnsupportedNameError is returned for a predefined name whose scope has
// no static encoding, such as a constant or an instance variable.
type UnsupportedNameError struct {
	Name  string
	Scope string
	Line  int
}

func (e *UnsupportedNameError) Error() string {
	return fmt.Sprintf("iddef: %v name %q has no static encoding (line %v)", e.Scope, e.Name, e.Line)
}
