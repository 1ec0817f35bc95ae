//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package sortid

import "encoding/binary"

// uint128 is 128-bit unsigned integer composed of hi and lo 64-bit halves.
// Codecs use it as bit accumulator, single uint64 loses high-order bits.
type uint128 struct{ hi, lo uint64 }

func load128(b []byte) uint128 {
	return uint128{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

func (x uint128) store(b []byte) {
	binary.BigEndian.PutUint64(b[0:8], x.hi)
	binary.BigEndian.PutUint64(b[8:16], x.lo)
}

func (x uint128) shl(n uint) uint128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{hi: x.lo << (n - 64)}
	default:
		return uint128{hi: x.hi<<n | x.lo>>(64-n), lo: x.lo << n}
	}
}

func (x uint128) shr(n uint) uint128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{lo: x.hi >> (n - 64)}
	default:
		return uint128{hi: x.hi >> n, lo: x.lo>>n | x.hi<<(64-n)}
	}
}

func (x uint128) or(v uint64) uint128 {
	x.lo |= v
	return x
}

// split decomposes 128-bit value into 26 cells of 5 bits, most significant
// cell first. The value is treated as 130-bit one, it is shifted left by
// 2 bits so that tail cell carries 3 bits of value and 2 zero bits of padding.
func split(x uint128) (cells [ULIDTextSize]byte) {
	//
	//  5bit  5bit         5bit   3bit 2bit
	//  |----|----| ... |----|---|--|
	//  ^                           ^
	// 127                          0 (+ 2 bits of padding)
	//
	cells[ULIDTextSize-1] = byte(x.lo<<2) & 0x1f
	x = x.shr(3)

	for i := ULIDTextSize - 2; i >= 0; i-- {
		cells[i] = byte(x.lo & 0x1f)
		x = x.shr(5)
	}

	return
}

// fold composes 128-bit value from 5-bit cells. The operation is inverse to
// split for 26 cells: 130 bits are folded, 2 trailing bits are discarded.
// 25 cells give 125 bits, the value is zero extended to 128 bits.
func fold(cells []byte) (x uint128) {
	head := min(len(cells), ULIDTextSize-1)

	for _, c := range cells[:head] {
		x = x.shl(5).or(uint64(c))
	}

	if len(cells) == ULIDTextSize {
		x = x.shl(3).or(uint64(cells[ULIDTextSize-1] >> 2))
	}

	return
}
