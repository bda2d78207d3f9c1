// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import (
	"testing"

	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/go-beefy/ecdsa"
)

func TestPackBitfieldPadding(t *testing.T) {
	first, _ := mockSignatures()
	cases := []struct {
		slots            int
		wantBitfieldSize int
	}{
		{slots: 1, wantBitfieldSize: 1},
		{slots: 7, wantBitfieldSize: 1},
		// A multiple of 8 slots always gains a whole extra padding byte.
		{slots: 8, wantBitfieldSize: 2},
		{slots: 9, wantBitfieldSize: 2},
		{slots: 16, wantBitfieldSize: 3},
		{slots: 1024, wantBitfieldSize: 129},
	}
	for _, tt := range cases {
		signatures := make([]*ecdsa.Signature, tt.slots)
		signatures[0] = &first
		compact := packCompact(testSignedCommitment{
			Commitment: newTestCommitment(t, 5, 0),
			Signatures: signatures,
		})
		require.Len(t, compact.SignaturesFrom, tt.wantBitfieldSize, "slots=%d", tt.slots)
		require.Equal(t, uint32(tt.slots), compact.ValidatorSetLen)
	}
}

func TestPackBitOrder(t *testing.T) {
	first, second := mockSignatures()
	// Slot 0 lives in the most significant bit of the first byte.
	compact := packCompact(testSignedCommitment{
		Commitment: newTestCommitment(t, 5, 0),
		Signatures: []*ecdsa.Signature{&first, nil, nil, nil, nil, nil, nil, nil, nil, &second},
	})
	require.Equal(t, []byte{0b1000_0000, 0b0100_0000}, compact.SignaturesFrom)
	require.Equal(t, []ecdsa.Signature{first, second}, compact.SignaturesCompact)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	first, second := mockSignatures()
	for _, slots := range []int{1, 2, 7, 8, 9, 31, 32, 100, 257} {
		signatures := make([]*ecdsa.Signature, slots)
		for i := range signatures {
			switch i % 3 {
			case 0:
				signatures[i] = &first
			case 1:
				signatures[i] = &second
			}
		}
		signed := testSignedCommitment{
			Commitment: newTestCommitment(t, 5, 0),
			Signatures: signatures,
		}

		unpacked, err := packCompact(signed).unpack()
		require.NoError(t, err)
		require.Equal(t, signed, unpacked, "slots=%d", slots)
	}
}

func TestDecodeMissingSignatures(t *testing.T) {
	first, second := mockSignatures()
	compact := packCompact(testSignedCommitment{
		Commitment: newTestCommitment(t, 5, 0),
		Signatures: []*ecdsa.Signature{nil, nil, &first, &second},
	})
	// Drop one signature; the bitfield still advertises two.
	compact.SignaturesCompact = compact.SignaturesCompact[:1]
	encoded, err := scale.Marshal(compact)
	require.NoError(t, err)

	decoded := testSignedCommitment{}
	err = decoded.Decode(encoded)
	require.ErrorIs(t, err, ErrMalformedCompactCommitment)
}

func TestDecodeLeftoverSignatures(t *testing.T) {
	first, second := mockSignatures()
	compact := packCompact(testSignedCommitment{
		Commitment: newTestCommitment(t, 5, 0),
		Signatures: []*ecdsa.Signature{nil, nil, &first, nil},
	})
	// Smuggle in a signature no bit accounts for.
	compact.SignaturesCompact = append(compact.SignaturesCompact, second)
	encoded, err := scale.Marshal(compact)
	require.NoError(t, err)

	decoded := testSignedCommitment{}
	err = decoded.Decode(encoded)
	require.ErrorIs(t, err, ErrMalformedCompactCommitment)
}

func TestDecodeShortBitfield(t *testing.T) {
	first, second := mockSignatures()
	compact := packCompact(testSignedCommitment{
		Commitment: newTestCommitment(t, 5, 0),
		Signatures: []*ecdsa.Signature{nil, nil, &first, &second},
	})
	// Claim more slots than the bitfield can describe.
	compact.ValidatorSetLen = 100
	encoded, err := scale.Marshal(compact)
	require.NoError(t, err)

	decoded := testSignedCommitment{}
	err = decoded.Decode(encoded)
	require.ErrorIs(t, err, ErrMalformedCompactCommitment)
}

func TestDecodeGarbage(t *testing.T) {
	decoded := testSignedCommitment{}
	err := decoded.Decode([]byte{0xff, 0xff, 0xff})
	require.ErrorIs(t, err, ErrMalformedCompactCommitment)
}
