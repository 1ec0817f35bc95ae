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

import "fmt"

// Crockford's Base32 alphabet, the order of characters follows ASCII order
// so that text sorts as binary does.
var alphabet = [32]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E', 'F',
	'G', 'H', 'J', 'K', 'M', 'N', 'P', 'Q', 'R', 'S', 'T', 'V', 'W', 'X', 'Y', 'Z',
}

// invalid cell of decoding table
const none = 0xff

// permissive decoding table: case folded, I and L are 1, O is 0
var decoding = func() (table [256]byte) {
	for i := range table {
		table[i] = none
	}

	for i, x := range alphabet {
		table[x] = byte(i)
		if x >= 'A' && x <= 'Z' {
			table[x+('a'-'A')] = byte(i)
		}
	}

	for _, x := range []byte{'I', 'i', 'L', 'l'} {
		table[x] = 1
	}
	table['O'] = 0
	table['o'] = 0

	return
}()

// EncodeBase32 encodes ULID to canonical 26 characters of Crockford's Base32.
func EncodeBase32(uid ULID) string {
	b := make([]byte, ULIDTextSize)
	for i, x := range split(load128(uid[:])) {
		b[i] = alphabet[x]
	}
	return string(b)
}

// DecodeBase32 decodes ULID from Crockford's Base32. It accepts 26 or 25
// characters in any case.
func DecodeBase32(text string) (uid ULID, err error) {
	if len(text) != ULIDTextSize && len(text) != ULIDTextSize-1 {
		return ZeroULID, fmt.Errorf("%w: ulid requires %d characters, got %d", ErrInvalidText, ULIDTextSize, len(text))
	}

	cells := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		x := decoding[text[i]]
		if x == none {
			return ZeroULID, fmt.Errorf("%w: ulid contains %q at %d", ErrInvalidText, text[i], i)
		}
		cells[i] = x
	}

	fold(cells).store(uid[:])
	return
}
