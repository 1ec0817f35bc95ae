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
	"bytes"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"time"
)

// ParseULID decodes identifier from Crockford's Base32 text
func ParseULID(text string) (ULID, error) {
	return DecodeBase32(text)
}

// MustParseULID decodes identifier from text, it panics on malformed input.
func MustParseULID(text string) ULID {
	return Must(ParseULID(text))
}

// ULIDFromBytes decodes identifier from exactly 16 raw bytes.
func ULIDFromBytes(b []byte) (uid ULID, err error) {
	if len(b) != ULIDSize {
		return ZeroULID, fmt.Errorf("%w: ulid requires %d bytes, got %d", ErrWrongByteLength, ULIDSize, len(b))
	}

	copy(uid[:], b)
	return
}

/*******************************************************************************

Lenses

*******************************************************************************/

// Timestamp returns ⟨𝒕⟩ fraction, milliseconds since unix epoch.
func (uid ULID) Timestamp() int64 {
	return int64(uid[0])<<40 | int64(uid[1])<<32 | int64(uid[2])<<24 |
		int64(uid[3])<<16 | int64(uid[4])<<8 | int64(uid[5])
}

// Time returns ⟨𝒕⟩ fraction as time.Time
func (uid ULID) Time() time.Time {
	return time.UnixMilli(uid.Timestamp())
}

// Counter returns ⟨𝒔⟩ fraction of identifiers made by monotonic issuer.
// It is a part of random payload for other identifiers.
func (uid ULID) Counter() uint32 {
	return binary.BigEndian.Uint32(uid[6:10])
}

// Payload returns copy of 80 bits following ⟨𝒕⟩
func (uid ULID) Payload() []byte {
	return bytes.Clone(uid[6:])
}

// Bytes returns copy of raw 16 bytes
func (uid ULID) Bytes() []byte {
	return bytes.Clone(uid[:])
}

// String encodes identifier to canonical text
func (uid ULID) String() string {
	return EncodeBase32(uid)
}

// Compare returns -1, 0, 1 using lexicographical order of bytes
func (uid ULID) Compare(other ULID) int {
	return bytes.Compare(uid[:], other[:])
}

// IsZero checks identifier for zero value
func (uid ULID) IsZero() bool {
	return uid == ZeroULID
}

/*******************************************************************************

Codecs

*******************************************************************************/

// MarshalText encodes identifier to canonical text, JSON uses it as well.
func (uid ULID) MarshalText() ([]byte, error) {
	return []byte(EncodeBase32(uid)), nil
}

// UnmarshalText decodes identifier from text
func (uid *ULID) UnmarshalText(text []byte) error {
	val, err := DecodeBase32(string(text))
	if err != nil {
		return err
	}

	*uid = val
	return nil
}

// MarshalBinary returns raw bytes of identifier
func (uid ULID) MarshalBinary() ([]byte, error) {
	return uid.Bytes(), nil
}

// UnmarshalBinary decodes identifier from raw bytes
func (uid *ULID) UnmarshalBinary(b []byte) error {
	val, err := ULIDFromBytes(b)
	if err != nil {
		return err
	}

	*uid = val
	return nil
}

// Value implements driver.Valuer, identifier is stored as raw bytes
func (uid ULID) Value() (driver.Value, error) {
	return uid.Bytes(), nil
}

// Scan implements sql.Scanner. It accepts raw bytes or canonical text.
func (uid *ULID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*uid = ZeroULID
		return nil
	case []byte:
		if len(v) == ULIDSize {
			return uid.UnmarshalBinary(v)
		}
		return uid.UnmarshalText(v)
	case string:
		return uid.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("sortid: unable to scan %T into ULID", src)
	}
}
