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

import "bytes"

/*******************************************************************************

Identity "Algebra"

*******************************************************************************/

func raw[T Identity](id T) []byte {
	switch v := any(id).(type) {
	case ULID:
		return v[:]
	case OID:
		return v[:]
	default:
		return nil
	}
}

// Compare returns -1, 0, 1 using unsigned lexicographical order of bytes.
func Compare[T Identity](a, b T) int {
	return bytes.Compare(raw(a), raw(b))
}

// Equal returns true if identifiers are equal
func Equal[T Identity](a, b T) bool { return a == b }

// NotEqual returns true if identifiers are different
func NotEqual[T Identity](a, b T) bool { return a != b }

// Less returns true if a < b
func Less[T Identity](a, b T) bool { return Compare(a, b) < 0 }

// LessOrEqual returns true if a <= b
func LessOrEqual[T Identity](a, b T) bool { return Compare(a, b) <= 0 }

// Greater returns true if a > b
func Greater[T Identity](a, b T) bool { return Compare(a, b) > 0 }

// GreaterOrEqual returns true if a >= b
func GreaterOrEqual[T Identity](a, b T) bool { return Compare(a, b) >= 0 }

// Before is alias to Less, a is allocated before b
func Before[T Identity](a, b T) bool { return Less(a, b) }

// After is alias to Greater, a is allocated after b
func After[T Identity](a, b T) bool { return Greater(a, b) }

// Hash is non-cryptographic hash of identifier, it is suitable for
// hash partitioning only.
func Hash[T Identity](id T) uint32 {
	h := uint32(0)
	for _, b := range raw(id) {
		h = h*31 + uint32(b)
	}
	return h
}
