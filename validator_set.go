// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import "errors"

// ErrEmptyValidatorSet is returned by NewValidatorSet for an empty set.
var ErrEmptyValidatorSet = errors.New("empty validator set")

// ValidatorSetID identifies one BEEFY validator set. It increases
// monotonically with every session that changes the set. It is an alias so
// that commitments SCALE-encode the id as a plain u64.
type ValidatorSetID = uint64

// AuthorityID is the capability required of a BEEFY authority public key:
// verifying a signature of type S over an arbitrary message.
type AuthorityID[S any] interface {
	comparable
	Verify(sig S, msg []byte) bool
}

// ValidatorSet is an immutable snapshot of the BEEFY authorities of one
// session, in the order they occupy signature slots.
type ValidatorSet[ID comparable] struct {
	validators []ID
	id         ValidatorSetID
}

// NewValidatorSet returns a validator set snapshot, or an error if
// validators is empty.
func NewValidatorSet[ID comparable](validators []ID, id ValidatorSetID) (ValidatorSet[ID], error) {
	if len(validators) == 0 {
		return ValidatorSet[ID]{}, ErrEmptyValidatorSet
	}
	owned := make([]ID, len(validators))
	copy(owned, validators)
	return ValidatorSet[ID]{validators: owned, id: id}, nil
}

// ID returns the set id.
func (vs ValidatorSet[ID]) ID() ValidatorSetID {
	return vs.id
}

// Validators returns a copy of the validators, in signature slot order. The
// snapshot itself stays immutable.
func (vs ValidatorSet[ID]) Validators() []ID {
	validators := make([]ID, len(vs.validators))
	copy(validators, vs.validators)
	return validators
}

// Len returns the number of validators in the set.
func (vs ValidatorSet[ID]) Len() int {
	return len(vs.validators)
}
