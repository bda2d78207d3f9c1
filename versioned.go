// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import (
	"errors"
	"fmt"
)

// ErrUnsupportedVersion is returned when decoding a finality proof with an
// unknown or missing version discriminant.
var ErrUnsupportedVersion = errors.New("unsupported finality proof version")

// Discriminant byte of the V1 finality proof variant.
const proofVersionV1 byte = 1

// VersionedFinalityProof is the finality proof appended to a block's
// justifications, wrapped in a version tag so that future signature schemes
// can coexist without ambiguity. V1, a compact signed commitment, is the
// only version today.
type VersionedFinalityProof[N BlockNumber, S any] struct {
	V1 SignedCommitment[N, S]
}

// NewVersionedFinalityProof wraps a signed commitment in the current proof
// version.
func NewVersionedFinalityProof[N BlockNumber, S any](sc SignedCommitment[N, S]) VersionedFinalityProof[N, S] {
	return VersionedFinalityProof[N, S]{V1: sc}
}

// Encode returns the version discriminant followed by the encoded inner
// signed commitment.
func (vfp VersionedFinalityProof[N, S]) Encode() ([]byte, error) {
	inner, err := vfp.V1.Encode()
	if err != nil {
		return nil, err
	}
	return append([]byte{proofVersionV1}, inner...), nil
}

// Decode decodes a versioned finality proof, rejecting any version other
// than V1.
func (vfp *VersionedFinalityProof[N, S]) Decode(in []byte) error {
	if len(in) == 0 {
		return fmt.Errorf("%w: missing version byte", ErrUnsupportedVersion)
	}
	if in[0] != proofVersionV1 {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, in[0])
	}
	return vfp.V1.Decode(in[1:])
}
