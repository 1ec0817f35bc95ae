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
	"fmt"

	"github.com/google/uuid"
)

// ToUUID reinterprets ULID as UUID. Bytes are copied as-is, the result
// does not carry any UUID version or variant.
func ToUUID(uid ULID) uuid.UUID {
	return uuid.UUID(uid)
}

// FromUUID reinterprets UUID as ULID, bytes are copied as-is.
func FromUUID(u uuid.UUID) ULID {
	return ULID(u)
}

// ULIDFromUUIDBytes reinterprets 16 raw bytes of UUID as ULID.
func ULIDFromUUIDBytes(b []byte) (ULID, error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return ZeroULID, fmt.Errorf("%w: uuid %v", ErrWrongByteLength, err)
	}

	return FromUUID(u), nil
}

// ULIDFromUUIDString reinterprets UUID text as ULID.
func ULIDFromUUIDString(s string) (ULID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ZeroULID, fmt.Errorf("%w: uuid %v", ErrInvalidText, err)
	}

	return FromUUID(u), nil
}
