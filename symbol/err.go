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

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Lookup for an identity that is structurally
// valid but was never assigned a static symbol.
var ErrNotFound = errors.New("symbol: no static symbol for identity")

// A CapacityMismatchError is returned when the running index after walking
// the whole catalog differs from the declared capacity.
type CapacityMismatchError struct {
	Want int
	Got  int
}

func (e *CapacityMismatchError) Error() string {
	return fmt.Sprintf("symbol: catalog fills %v slots but capacity is %v", e.Got, e.Want)
}

// A DuplicateSlotError is returned when two symbols compute the same table
// index.
type DuplicateSlotError struct {
	Index    int
	Existing string
	Text     string
}

func (e *DuplicateSlotError) Error() string {
	return fmt.Sprintf("symbol: slot %v already holds %q, cannot place %q", e.Index, e.Existing, e.Text)
}

// An OutOfRangeError means an identity maps past the end of the static
// table. Identities built by this package never do.
type OutOfRangeError struct {
	ID       ID
	Capacity int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("symbol: identity %v is outside a static table of %v slots", uint64(e.ID), e.Capacity)
}

// A MalformedIDError is returned when decoding an identity whose bits match
// no category.
type MalformedIDError struct {
	ID  ID
	Msg string
}

func (e *MalformedIDError) Error() string {
	return fmt.Sprintf("symbol: malformed identity %v: %v", uint64(e.ID), e.Msg)
}

// A SnapshotError is returned when a snapshot cannot be decoded or does not
// describe a consistent table.
type SnapshotError struct {
	Msg string
	Err error
}

func (e *SnapshotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("symbol: bad snapshot: %v: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("symbol: bad snapshot: %v", e.Msg)
}

func (e *SnapshotError) Unwrap() error {
	return e.Err
}
