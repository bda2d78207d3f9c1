// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import (
	"testing"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPayloadEncode(t *testing.T) {
	encodedValue, err := scale.Marshal("Hello World!")
	require.NoError(t, err)
	payload := NewPayload(MMRRootID, encodedValue)

	encoded, err := scale.Marshal(payload)
	require.NoError(t, err)
	require.Equal(t, common.MustHexToBytes("0x046d68343048656c6c6f20576f726c6421"), encoded)

	decoded := Payload{}
	err = scale.Unmarshal(encoded, &decoded)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}

func TestPayloadPushRawKeepsOrder(t *testing.T) {
	payload := NewPayload(MMRRootID, []byte{1}).
		PushRaw(PayloadID{'z', 'z'}, []byte{2}).
		PushRaw(PayloadID{'a', 'b'}, []byte{3})

	want := Payload{
		{ID: PayloadID{'a', 'b'}, Data: []byte{3}},
		{ID: MMRRootID, Data: []byte{1}},
		{ID: PayloadID{'z', 'z'}, Data: []byte{2}},
	}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestPayloadPushRawLeavesReceiverIntact(t *testing.T) {
	// Spare capacity in the backing array must not let an insert write
	// through into the receiver.
	base := make(Payload, 0, 4).
		PushRaw(MMRRootID, []byte{1}).
		PushRaw(PayloadID{'z', 'z'}, []byte{2})
	snapshot := Payload{
		{ID: MMRRootID, Data: []byte{1}},
		{ID: PayloadID{'z', 'z'}, Data: []byte{2}},
	}
	require.Equal(t, snapshot, base)

	extended := base.PushRaw(PayloadID{'a', 'a'}, []byte{3})

	require.Equal(t, snapshot, base)
	require.Equal(t, Payload{
		{ID: PayloadID{'a', 'a'}, Data: []byte{3}},
		{ID: MMRRootID, Data: []byte{1}},
		{ID: PayloadID{'z', 'z'}, Data: []byte{2}},
	}, extended)
}

func TestPayloadGet(t *testing.T) {
	payload := NewPayload(MMRRootID, []byte{1}).PushRaw(PayloadID{'a', 'b'}, []byte{3})

	require.Equal(t, []byte{1}, payload.Get(MMRRootID))
	require.Equal(t, []byte{3}, payload.Get(PayloadID{'a', 'b'}))
	require.Nil(t, payload.Get(PayloadID{'z', 'z'}))
}

func TestPayloadCompare(t *testing.T) {
	base := NewPayload(MMRRootID, []byte{1})

	require.Equal(t, 0, base.Compare(NewPayload(MMRRootID, []byte{1})))
	require.True(t, base.Compare(NewPayload(MMRRootID, []byte{2})) < 0)
	require.True(t, base.Compare(NewPayload(PayloadID{'a', 'a'}, []byte{1})) > 0)
	// A payload orders before any of its extensions.
	require.True(t, base.Compare(base.PushRaw(PayloadID{'z', 'z'}, nil)) < 0)
}
