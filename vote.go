// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import "github.com/ChainSafe/gossamer/pkg/scale"

// VoteMessage is a single validator's vote gossiped during one BEEFY round:
// a commitment together with the voter's id and its signature over the
// SCALE-encoded commitment.
type VoteMessage[N BlockNumber, ID comparable, S any] struct {
	Commitment Commitment[N]
	ID         ID
	Signature  S
}

// DoubleVotingProof is proof that a validator voted for two different
// payloads in the same round. Equivocations on the commitment layer are
// slashable; the consumer of this proof decides the penalty.
type DoubleVotingProof[N BlockNumber, ID comparable, S any] struct {
	First  VoteMessage[N, ID, S]
	Second VoteMessage[N, ID, S]
}

// SetID returns the validator set id of the round the equivocation happened
// in.
func (p DoubleVotingProof[N, ID, S]) SetID() ValidatorSetID {
	return p.First.Commitment.ValidatorSetID
}

// Offender returns the id of the equivocating validator.
func (p DoubleVotingProof[N, ID, S]) Offender() ID {
	return p.First.ID
}

// CheckDoubleVotingProof reports whether a double voting proof is valid:
// both votes are from the same validator in the same round, the payloads
// differ, and both signatures verify.
func CheckDoubleVotingProof[N BlockNumber, S any, ID AuthorityID[S]](proof DoubleVotingProof[N, ID, S]) bool {
	first, second := proof.First, proof.Second

	if first.Commitment.ValidatorSetID != second.Commitment.ValidatorSetID ||
		compareBlockNumber(first.Commitment.BlockNumber, second.Commitment.BlockNumber) != 0 ||
		first.ID != second.ID {
		return false
	}
	// Both votes have to be for different payloads, otherwise nothing was
	// equivocated.
	if first.Commitment.Payload.Compare(second.Commitment.Payload) == 0 {
		return false
	}

	encodedFirst, err := scale.Marshal(first.Commitment)
	if err != nil {
		return false
	}
	encodedSecond, err := scale.Marshal(second.Commitment)
	if err != nil {
		return false
	}
	return first.ID.Verify(first.Signature, encodedFirst) &&
		second.ID.Verify(second.Signature, encodedSecond)
}
