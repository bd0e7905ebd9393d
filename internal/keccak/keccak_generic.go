// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import (
	"encoding/binary"
	"math/bits"
)

// rc stores the 24 round constants for use in the ι step. A permutation of
// n < 24 rounds uses the trailing n entries, preserving the round indexing
// of the full Keccak-f[1600] schedule.
var rc = [24]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

func keccakF1600Generic(a *[200]byte, rounds int) {
	var lanes [25]uint64
	for i := range lanes {
		lanes[i] = binary.LittleEndian.Uint64(a[8*i:])
	}

	permute(&lanes, rounds)

	for i, v := range lanes {
		binary.LittleEndian.PutUint64(a[8*i:], v)
	}
}

// permute applies the trailing rounds of Keccak-f[1600] to the 25-lane state,
// indexed as a[x+5*y].
func permute(a *[25]uint64, rounds int) {
	for _, roundConstant := range rc[24-rounds:] {
		// θ
		var c, d [5]uint64
		for x := range 5 {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := range 5 {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for x := range 5 {
			a[x] ^= d[x]
			a[x+5] ^= d[x]
			a[x+10] ^= d[x]
			a[x+15] ^= d[x]
			a[x+20] ^= d[x]
		}

		// ρ and π, fused: walk the (x, y) -> (y, 2x+3y) cycle starting at
		// (1, 0), rotating each lane into its π destination. Lane (0, 0) is
		// fixed by both steps.
		x, y := 1, 0
		current := a[1]
		for t := range 24 {
			x, y = y, (2*x+3*y)%5
			offset := ((t + 1) * (t + 2) / 2) % 64
			current, a[x+5*y] = a[x+5*y], bits.RotateLeft64(current, offset)
		}

		// χ, row by row from a snapshot taken before the row is written.
		for y := 0; y < 25; y += 5 {
			var row [5]uint64
			copy(row[:], a[y:y+5])
			for x := range 5 {
				a[y+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
			}
		}

		// ι
		a[0] ^= roundConstant
	}
}
