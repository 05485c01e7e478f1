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

package symbol

import "sync"

// A Catalog records every symbol ever created, static and dynamic, in
// creation order. It is for enumeration only.
type Catalog struct {
	mu      sync.RWMutex
	symbols []*Symbol
}

// add appends s. Each call is atomic and fixes s's place in the order.
func (c *Catalog) add(s *Symbol) {
	c.mu.Lock()
	c.symbols = append(c.symbols, s)
	c.mu.Unlock()
}

// Len returns the number of symbols created so far.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.symbols)
}

// At returns the i'th symbol created.
func (c *Catalog) At(i int) (*Symbol, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i < 0 || i >= len(c.symbols) {
		return nil, false
	}
	return c.symbols[i], true
}

// Symbols returns a copy of the catalog.
func (c *Catalog) Symbols() []*Symbol {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*Symbol, len(c.symbols))
	copy(result, c.symbols)
	return result
}

// Range calls fn for each symbol present when Range was called, in creation
// order, until fn returns false.
func (c *Catalog) Range(fn func(i int, s *Symbol) bool) {
	for i, s := range c.Symbols() {
		if !fn(i, s) {
			return
		}
	}
}
