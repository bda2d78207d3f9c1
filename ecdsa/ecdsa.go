// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package ecdsa implements the BEEFY authority key scheme: secp256k1 ECDSA
// with recoverable signatures over the keccak-256 hash of the message.
package ecdsa

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// PublicKeyLength is the expected public key length in compressed SEC 1
	// form.
	PublicKeyLength = 33
	// SignatureLength is the expected signature length, 64 bytes of r || s
	// plus one recovery byte.
	SignatureLength = 65
	// SeedLength is the expected seed length.
	SeedLength = 32
)

// Public is a compressed secp256k1 public key identifying one BEEFY
// authority.
type Public [PublicKeyLength]byte

// Signature is a recoverable ECDSA signature over the keccak-256 hash of
// the signed message.
type Signature [SignatureLength]byte

// NewPublicFromSlice returns a Public from a compressed key slice.
func NewPublicFromSlice(data []byte) (Public, error) {
	if len(data) != PublicKeyLength {
		return Public{}, fmt.Errorf("invalid public key length: %d", len(data))
	}
	var pub Public
	copy(pub[:], data)
	return pub, nil
}

// Verify reports whether sig is a valid signature by this authority over
// msg. The signer is recovered from the signature and compared to the
// receiver, so no distinction is made between a corrupt signature and a
// signature by someone else.
func (p Public) Verify(sig Signature, msg []byte) bool {
	digest := crypto.Keccak256(msg)
	recovered, err := crypto.SigToPub(digest, sig[:])
	if err != nil {
		return false
	}
	var signer Public
	copy(signer[:], crypto.CompressPubkey(recovered))
	return p == signer
}

// String returns the hex representation of the public key.
func (p Public) String() string {
	return "0x" + hex.EncodeToString(p[:])
}

// Pair is a BEEFY authority key pair.
type Pair struct {
	secret *ecdsa.PrivateKey
}

// NewPairFromSeed derives a key pair from a 32 byte secret seed.
//
// WARNING: this is only as secure as the seed itself.
func NewPairFromSeed(seed [SeedLength]byte) (Pair, error) {
	secret, err := crypto.ToECDSA(seed[:])
	if err != nil {
		return Pair{}, fmt.Errorf("seed is not a valid secret key: %w", err)
	}
	return Pair{secret: secret}, nil
}

// Public returns the compressed public key of the pair.
func (p Pair) Public() Public {
	var pub Public
	copy(pub[:], crypto.CompressPubkey(&p.secret.PublicKey))
	return pub
}

// Sign produces a recoverable signature over the keccak-256 hash of msg.
func (p Pair) Sign(msg []byte) (Signature, error) {
	digest := crypto.Keccak256(msg)
	sig, err := crypto.Sign(digest, p.secret)
	if err != nil {
		return Signature{}, err
	}
	var signature Signature
	copy(signature[:], sig)
	return signature, nil
}
