// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keccak implements the Keccak permutations on a 1600-bit state.
//
// The state is represented as 200 bytes, interpreted as 25 little-endian
// uint64 lanes: lane (x, y) occupies bytes 8*(x+5*y) through 8*(x+5*y)+7.
package keccak

// F1600 applies the Keccak-f[1600] permutation to the state (24 rounds).
func F1600(state *[200]byte) {
	keccakF1600Generic(state, 24)
}

// P1600 applies the Keccak-p[1600, 12] permutation to the state. These are
// the final 12 rounds of the Keccak-f[1600] schedule, with round constants
// RC[12] through RC[23].
func P1600(state *[200]byte) {
	keccakF1600Generic(state, 12)
}
