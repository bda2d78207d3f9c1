// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ChainSafe/gossamer/pkg/scale"
	"golang.org/x/exp/constraints"
)

// Precondition failures of VerifySignatures. They are distinct from
// cryptographic failure, which is never an error.
var (
	ErrInvalidSignaturesLength = errors.New("signature slots do not match validator set length")
	ErrInvalidValidatorSetID   = errors.New("commitment is for a different validator set")
	ErrInvalidBlockNumber      = errors.New("commitment is for a different block number")
)

// BlockNumber is the set of types usable as a commitment block height: the
// unsigned integers, plus *scale.Uint128 for chains with 128 bit heights.
type BlockNumber interface {
	constraints.Unsigned | *scale.Uint128
}

// compareBlockNumber returns -1, 0 or 1 if a is less than, equal to or
// greater than b.
func compareBlockNumber[N BlockNumber](a, b N) int {
	switch a := any(a).(type) {
	case *scale.Uint128:
		return a.Compare(any(b).(*scale.Uint128))
	default:
		au, bu := reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint()
		switch {
		case au < bu:
			return -1
		case au > bu:
			return 1
		}
		return 0
	}
}

// Commitment is a payload extracted from the finalized block at the given
// height, signed by the BEEFY validator set identified by ValidatorSetID.
// Validators collect signatures on commitments and a stream of signed
// commitments forms the BEEFY protocol.
//
// A commitment is a value: once constructed it is never mutated, and its
// SCALE encoding is the exact byte string validators sign.
type Commitment[N BlockNumber] struct {
	Payload        Payload
	BlockNumber    N
	ValidatorSetID ValidatorSetID
}

// Compare defines the total order over commitments: a newer validator set
// always dominates, within one set a higher block dominates, and the payload
// order breaks the remaining tie deterministically.
func (c Commitment[N]) Compare(other Commitment[N]) int {
	switch {
	case c.ValidatorSetID < other.ValidatorSetID:
		return -1
	case c.ValidatorSetID > other.ValidatorSetID:
		return 1
	}
	if cmp := compareBlockNumber(c.BlockNumber, other.BlockNumber); cmp != 0 {
		return cmp
	}
	return c.Payload.Compare(other.Payload)
}

// SignedCommitment is a commitment with matching BEEFY validators'
// signatures. Slot i of Signatures is the signature of validator i of the
// active set, or nil if that validator did not sign.
//
// The wire form is the bit packed compact representation; use Encode and
// Decode rather than the scale package directly.
type SignedCommitment[N BlockNumber, S any] struct {
	Commitment Commitment[N]
	Signatures []*S
}

// String implements fmt.Stringer.
func (sc SignedCommitment[N, S]) String() string {
	return fmt.Sprintf("SignedCommitment(commitment: %+v, signature_count: %d)",
		sc.Commitment, sc.SignatureCount())
}

// SignatureCount returns the number of occupied signature slots.
func (sc SignedCommitment[N, S]) SignatureCount() (count int) {
	for _, signature := range sc.Signatures {
		if signature != nil {
			count++
		}
	}
	return count
}

// Encode returns the SCALE encoding of the compact wire form.
func (sc SignedCommitment[N, S]) Encode() ([]byte, error) {
	return scale.Marshal(packCompact(sc))
}

// Decode decodes the compact wire form produced by Encode.
func (sc *SignedCommitment[N, S]) Decode(in []byte) error {
	var compact compactSignedCommitment[N, S]
	if err := scale.Unmarshal(in, &compact); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedCompactCommitment, err)
	}
	unpacked, err := compact.unpack()
	if err != nil {
		return err
	}
	*sc = unpacked
	return nil
}

// KnownSignature is a commitment signature accompanied by the id of the
// validator it belongs to.
type KnownSignature[ID, S any] struct {
	ValidatorID ID
	Signature   S
}

// VerifySignatures verifies the signatures of a signed commitment against
// the validator set that was active at the block the commitment is for, and
// returns the cryptographically valid validator-signature pairs in validator
// index order.
//
// The call fails only on a precondition mismatch: wrong slot vector length,
// wrong validator set id or wrong block number. An individual signature that
// does not verify is silently omitted from the result; quorum policy is the
// caller's concern.
func VerifySignatures[N BlockNumber, S any, ID AuthorityID[S]](
	sc SignedCommitment[N, S], expectedHeight N, validatorSet ValidatorSet[ID],
) ([]KnownSignature[ID, S], error) {
	switch {
	case len(sc.Signatures) != validatorSet.Len():
		return nil, fmt.Errorf("%w: %d slots, %d validators",
			ErrInvalidSignaturesLength, len(sc.Signatures), validatorSet.Len())
	case sc.Commitment.ValidatorSetID != validatorSet.ID():
		return nil, fmt.Errorf("%w: commitment has set id %d, validator set has %d",
			ErrInvalidValidatorSetID, sc.Commitment.ValidatorSetID, validatorSet.ID())
	case compareBlockNumber(sc.Commitment.BlockNumber, expectedHeight) != 0:
		return nil, fmt.Errorf("%w: %v, expected %v",
			ErrInvalidBlockNumber, sc.Commitment.BlockNumber, expectedHeight)
	}

	encodedCommitment, err := scale.Marshal(sc.Commitment)
	if err != nil {
		return nil, fmt.Errorf("encoding commitment: %w", err)
	}

	// Signature slots are arranged in the same order as the validators of
	// the set.
	signatories := make([]KnownSignature[ID, S], 0, sc.SignatureCount())
	for i, validator := range validatorSet.Validators() {
		signature := sc.Signatures[i]
		if signature == nil {
			continue
		}
		if validator.Verify(*signature, encodedCommitment) {
			signatories = append(signatories, KnownSignature[ID, S]{
				ValidatorID: validator,
				Signature:   *signature,
			})
		}
	}
	return signatories, nil
}
