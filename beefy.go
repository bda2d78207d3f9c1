// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package beefy implements the commitment data layer of the BEEFY finality
// gadget: the commitment and signed commitment types, their size optimised
// SCALE wire codec, the versioned finality proof wrapper and signature
// verification against a validator set snapshot.
//
// BEEFY runs alongside GRANDPA and produces, per finalized block, a compact
// signed commitment which a light client on a foreign chain can verify
// cheaply. This package is pure and synchronous: it performs no I/O, holds
// no shared state, and all operations are safe for concurrent use on
// immutable inputs. Gossip, the round state machine, payload production and
// validator set rotation are the concern of its consumers.
package beefy
