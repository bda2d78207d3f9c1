// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import (
	"errors"
	"fmt"
)

// ErrMalformedCompactCommitment is returned when decoding a compact signed
// commitment whose bitfield disagrees with its signature list, or whose
// underlying field encoding is broken.
var ErrMalformedCompactCommitment = errors.New("malformed compact signed commitment")

// Number of presence bits packed into one bitfield byte.
const containerBitSize = 8

// compactSignedCommitment is the wire representation of a SignedCommitment.
// Instead of paying an option tag per slot it carries a presence bitfield
// and the occupied signatures densely. The type never leaves the codec:
// only the canonical form produced by packCompact is a legal wire value.
type compactSignedCommitment[N BlockNumber, S any] struct {
	Commitment Commitment[N]
	// Bit i, counted most significant first within each byte, is set iff
	// slot i holds a signature.
	SignaturesFrom []byte
	// Number of significant bits of SignaturesFrom. The bitfield length is
	// not authoritative; it includes 1 to 8 padding bits, so a slot count
	// that is a multiple of 8 carries a whole trailing zero byte.
	ValidatorSetLen   uint32
	SignaturesCompact []S
}

// packCompact builds the canonical compact form of a signed commitment.
func packCompact[N BlockNumber, S any](sc SignedCommitment[N, S]) compactSignedCommitment[N, S] {
	validatorSetLen := uint32(len(sc.Signatures))

	signaturesCompact := make([]S, 0, sc.SignatureCount())
	bits := make([]byte, 0, len(sc.Signatures)+containerBitSize)
	for _, signature := range sc.Signatures {
		if signature != nil {
			signaturesCompact = append(signaturesCompact, *signature)
			bits = append(bits, 1)
		} else {
			bits = append(bits, 0)
		}
	}

	// Pad to a whole number of bytes. The excess is always 1 to 8 bits, so
	// a multiple-of-8 slot count gains a full zero byte; consumers rely on
	// ValidatorSetLen instead of the bitfield length.
	excessBitsLen := containerBitSize - len(sc.Signatures)%containerBitSize
	bits = append(bits, make([]byte, excessBitsLen)...)

	signaturesFrom := make([]byte, 0, len(bits)/containerBitSize)
	for i := 0; i < len(bits); i += containerBitSize {
		var packed byte
		for _, bit := range bits[i : i+containerBitSize] {
			packed = packed<<1 | bit
		}
		signaturesFrom = append(signaturesFrom, packed)
	}

	return compactSignedCommitment[N, S]{
		Commitment:        sc.Commitment,
		SignaturesFrom:    signaturesFrom,
		ValidatorSetLen:   validatorSetLen,
		SignaturesCompact: signaturesCompact,
	}
}

// unpack expands the compact form back into the dense slot vector. It fails
// if the set bits of the bitfield do not pair up exactly with the compact
// signature list.
func (csc compactSignedCommitment[N, S]) unpack() (SignedCommitment[N, S], error) {
	bits := make([]byte, 0, len(csc.SignaturesFrom)*containerBitSize)
	for _, packed := range csc.SignaturesFrom {
		for i := 0; i < containerBitSize; i++ {
			bits = append(bits, packed>>(containerBitSize-i-1)&1)
		}
	}
	if len(bits) < int(csc.ValidatorSetLen) {
		return SignedCommitment[N, S]{}, fmt.Errorf(
			"%w: bitfield holds %d slots, expected %d",
			ErrMalformedCompactCommitment, len(bits), csc.ValidatorSetLen)
	}
	// Anything past the significant bits is padding and is discarded
	// unexamined.
	bits = bits[:csc.ValidatorSetLen]

	signatures := make([]*S, 0, len(bits))
	next := 0
	for _, bit := range bits {
		if bit == 0 {
			signatures = append(signatures, nil)
			continue
		}
		if next == len(csc.SignaturesCompact) {
			return SignedCommitment[N, S]{}, fmt.Errorf(
				"%w: bitfield has more set bits than signatures", ErrMalformedCompactCommitment)
		}
		signature := csc.SignaturesCompact[next]
		signatures = append(signatures, &signature)
		next++
	}
	if next != len(csc.SignaturesCompact) {
		return SignedCommitment[N, S]{}, fmt.Errorf(
			"%w: %d signatures not accounted for by the bitfield",
			ErrMalformedCompactCommitment, len(csc.SignaturesCompact)-next)
	}

	return SignedCommitment[N, S]{Commitment: csc.Commitment, Signatures: signatures}, nil
}
