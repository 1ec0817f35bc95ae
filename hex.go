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

import (
	"encoding/hex"
	"fmt"
)

// EncodeHex encodes OID to 24 lowercase hexadecimal characters.
func EncodeHex(oid OID) string {
	return hex.EncodeToString(oid[:])
}

// DecodeHex decodes OID from 24 hexadecimal characters in any case.
func DecodeHex(text string) (oid OID, err error) {
	if len(text) != OIDTextSize {
		return ZeroOID, fmt.Errorf("%w: oid requires %d characters, got %d", ErrInvalidText, OIDTextSize, len(text))
	}

	if _, err := hex.Decode(oid[:], []byte(text)); err != nil {
		return ZeroOID, fmt.Errorf("%w: oid %v", ErrInvalidText, err)
	}

	return
}
