// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import (
	"bytes"
	"sort"
)

// PayloadID uniquely identifies one entry of a commitment payload.
type PayloadID [2]byte

// MMRRootID is the payload id for an MMR root hash, the cumulative chain
// commitment conventionally carried by every BEEFY payload.
var MMRRootID = PayloadID{'m', 'h'}

// PayloadItem is a single tagged entry of a payload. The data layer does not
// interpret Data; producers and light clients agree on its meaning per id.
type PayloadItem struct {
	ID   PayloadID
	Data []byte
}

// Payload is an ordered set of tagged opaque byte blobs agreed upon by BEEFY
// validators. Entries are kept sorted by id so that equal payloads always
// SCALE-encode to identical bytes.
type Payload []PayloadItem

// NewPayload returns a payload holding a single entry.
func NewPayload(id PayloadID, data []byte) Payload {
	return Payload{}.PushRaw(id, data)
}

// Get returns the raw data of the first entry with the given id, or nil if no
// such entry exists.
func (p Payload) Get(id PayloadID) []byte {
	for _, item := range p {
		if item.ID == id {
			return item.Data
		}
	}
	return nil
}

// PushRaw returns a new payload with an entry inserted at its sorted
// position. Multiple entries may share an id. The receiver is never
// modified, so a payload already embedded in a commitment stays stable.
func (p Payload) PushRaw(id PayloadID, data []byte) Payload {
	index := sort.Search(len(p), func(i int) bool {
		return !(bytes.Compare(p[i].ID[:], id[:]) < 0)
	})
	out := make(Payload, len(p)+1)
	copy(out, p[:index])
	out[index] = PayloadItem{ID: id, Data: data}
	copy(out[index+1:], p[index:])
	return out
}

// Compare defines a total order over payloads: entry by entry, first by id
// then by data, with a shorter payload ordering before its extension. The
// order carries no semantic weight; it only makes commitment ordering a
// well defined function.
func (p Payload) Compare(other Payload) int {
	for i := 0; i < len(p) && i < len(other); i++ {
		if c := bytes.Compare(p[i].ID[:], other[i].ID[:]); c != 0 {
			return c
		}
		if c := bytes.Compare(p[i].Data, other[i].Data); c != 0 {
			return c
		}
	}
	switch {
	case len(p) < len(other):
		return -1
	case len(p) > len(other):
		return 1
	}
	return 0
}
