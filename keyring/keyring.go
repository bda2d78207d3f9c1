// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package keyring provides a set of deterministic BEEFY authority accounts
// for tests.
package keyring

import (
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ChainSafe/go-beefy/ecdsa"
)

// Keyring is a well known test account.
type Keyring uint

const (
	Alice Keyring = iota
	Bob
	Charlie
	Dave
	Eve
	Ferdie
)

func (k Keyring) String() string {
	switch k {
	case Alice:
		return "Alice"
	case Bob:
		return "Bob"
	case Charlie:
		return "Charlie"
	case Dave:
		return "Dave"
	case Eve:
		return "Eve"
	case Ferdie:
		return "Ferdie"
	}
	return "unknown"
}

// Iter returns all test accounts.
func Iter() []Keyring {
	return []Keyring{Alice, Bob, Charlie, Dave, Eve, Ferdie}
}

// Pair returns the account's key pair. Seeds are the keccak-256 hash of the
// account's derivation string, so keys are stable across runs.
func (k Keyring) Pair() ecdsa.Pair {
	var seed [ecdsa.SeedLength]byte
	copy(seed[:], crypto.Keccak256([]byte("//"+k.String())))
	pair, err := ecdsa.NewPairFromSeed(seed)
	if err != nil {
		panic("static seeds are known good: " + err.Error())
	}
	return pair
}

// Public returns the account's public key.
func (k Keyring) Public() ecdsa.Public {
	return k.Pair().Public()
}

// Sign signs msg with the account's key.
func (k Keyring) Sign(msg []byte) ecdsa.Signature {
	signature, err := k.Pair().Sign(msg)
	if err != nil {
		panic("signing with a static key cannot fail: " + err.Error())
	}
	return signature
}
