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
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/turrisxyz/truffleruby/iddef"
)

const snapshotVersion = 1

// snapshot is the CBOR form of a generated table, for processes that would
// rather read the table than regenerate it.
type snapshot struct {
	Version  int              `cbor:"version"`
	Layout   snapshotLayout   `cbor:"layout"`
	Dynamic  []string         `cbor:"dynamic"`
	Entries  []snapshotEntry  `cbor:"entries"`
	Reserved []snapshotReserv `cbor:"reserved"`
}

type snapshotLayout struct {
	FirstOpID         uint64 `cbor:"first_op_id"`
	FirstSequentialID uint64 `cbor:"first_sequential_id"`
	LastOpID          uint64 `cbor:"last_op_id"`
	Capacity          int    `cbor:"capacity"`
}

type snapshotEntry struct {
	Name string `cbor:"name"`
	Text string `cbor:"text"`
	ID   uint64 `cbor:"id"`
}

type snapshotReserv struct {
	Token string `cbor:"token"`
	Index int    `cbor:"index"`
}

var snapshotEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("symbol: failed to create CBOR enc mode: %v", err))
	}
	snapshotEncMode = em
}

// MarshalSnapshot encodes the static table of cs together with the dynamic
// core names created during generation. Other dynamic symbols are not kept.
func MarshalSnapshot(cs *CoreSymbols) ([]byte, error) {
	l := cs.table.layout
	snap := snapshot{
		Version: snapshotVersion,
		Layout: snapshotLayout{
			FirstOpID:         uint64(l.FirstOpID),
			FirstSequentialID: uint64(l.FirstSequentialID),
			LastOpID:          uint64(l.LastOpID),
			Capacity:          l.Capacity,
		},
		Dynamic: append([]string(nil), cs.dynamic...),
		Entries: make([]snapshotEntry, len(cs.entries)),
	}

	for i, e := range cs.entries {
		snap.Entries[i] = snapshotEntry{Name: e.Name, Text: e.Text, ID: uint64(e.ID)}
	}
	for _, r := range cs.reserved {
		snap.Reserved = append(snap.Reserved, snapshotReserv{Token: r.Token, Index: r.Index})
	}

	return snapshotEncMode.Marshal(&snap)
}

// LoadSnapshot rebuilds a CoreSymbols from MarshalSnapshot output. The same
// slot, closure and round-trip checks as Generate are applied.
func LoadSnapshot(data []byte) (*CoreSymbols, error) {
	var snap snapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, &SnapshotError{Msg: "cannot decode", Err: err}
	}
	if snap.Version != snapshotVersion {
		return nil, &SnapshotError{Msg: fmt.Sprintf("unsupported version %v", snap.Version)}
	}
	if snap.Layout.Capacity <= 0 {
		return nil, &SnapshotError{Msg: fmt.Sprintf("capacity %v", snap.Layout.Capacity)}
	}

	cs := newCoreSymbols(snap.Layout.Capacity)
	cs.table.layout = Layout{
		FirstOpID:         ID(snap.Layout.FirstOpID),
		FirstSequentialID: ID(snap.Layout.FirstSequentialID),
		LastOpID:          ID(snap.Layout.LastOpID),
		Capacity:          snap.Layout.Capacity,
	}
	l := cs.table.layout
	if l.FirstSequentialID < l.FirstOpID || l.LastOpID < l.FirstOpID || uint64(l.LastOpID) >= uint64(l.Capacity) {
		return nil, &SnapshotError{Msg: fmt.Sprintf("inconsistent layout %+v", l)}
	}

	for _, name := range snap.Dynamic {
		cs.byName[iddef.DynamicName(name)] = cs.CreateDynamic(name)
	}
	cs.dynamic = snap.Dynamic

	for _, e := range snap.Entries {
		id := ID(e.ID)
		kind, err := cs.table.layout.Decode(id)
		if err != nil {
			return nil, &SnapshotError{Msg: "entry " + e.Name, Err: err}
		}
		if kind.Category == CategoryDynamic {
			return nil, &SnapshotError{Msg: "entry " + e.Name + " has no identity"}
		}
		if _, dup := cs.byName[e.Name]; dup {
			return nil, &SnapshotError{Msg: "entry " + e.Name + " appears twice"}
		}
		index := cs.table.layout.IDToIndex(id)

		s := newSymbol(e.Text, id, kind.Category)
		if err := cs.table.place(index, s); err != nil {
			return nil, err
		}
		cs.catalog.add(s)
		cs.entries = append(cs.entries, Entry{Name: e.Name, Text: e.Text, ID: id, Index: index, Kind: kind})
		cs.byName[e.Name] = s
	}

	next := 0
	for _, e := range cs.entries {
		if e.Index >= next {
			next = e.Index + 1
		}
	}
	for _, r := range snap.Reserved {
		if r.Index < 0 || r.Index >= snap.Layout.Capacity {
			return nil, &SnapshotError{Msg: fmt.Sprintf("reserved slot %v out of range", r.Index)}
		}
		if r.Index >= next {
			next = r.Index + 1
		}
		cs.reserved = append(cs.reserved, Reserved{Token: r.Token, Index: r.Index})
	}
	// The running index ends right after the highest slot in use.
	if next != snap.Layout.Capacity {
		return nil, &CapacityMismatchError{Want: snap.Layout.Capacity, Got: next}
	}

	if err := cs.verify(); err != nil {
		return nil, err
	}
	return cs, nil
}
