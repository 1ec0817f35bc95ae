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

// ParseOID decodes identifier from hexadecimal text
func ParseOID(text string) (OID, error) {
	return DecodeHex(text)
}

// MustParseOID decodes identifier from text, it panics on malformed input.
func MustParseOID(text string) OID {
	return Must(ParseOID(text))
}

// OIDFromBytes decodes identifier from exactly 12 raw bytes.
func OIDFromBytes(b []byte) (oid OID, err error) {
	if len(b) != OIDSize {
		return ZeroOID, fmt.Errorf("%w: oid requires %d bytes, got %d", ErrWrongByteLength, OIDSize, len(b))
	}

	copy(oid[:], b)
	return
}

/*******************************************************************************

Lenses

*******************************************************************************/

// Timestamp returns ⟨𝒕⟩ fraction, seconds since unix epoch.
func (oid OID) Timestamp() int64 {
	return int64(binary.BigEndian.Uint32(oid[0:4]))
}

// Time returns ⟨𝒕⟩ fraction as time.Time
func (oid OID) Time() time.Time {
	return time.Unix(oid.Timestamp(), 0)
}

// Counter returns ⟨𝒔⟩ fraction of identifiers made by monotonic issuer.
func (oid OID) Counter() uint32 {
	return binary.BigEndian.Uint32(oid[4:8])
}

// Payload returns copy of 64 bits following ⟨𝒕⟩
func (oid OID) Payload() []byte {
	return bytes.Clone(oid[4:])
}

// Bytes returns copy of raw 12 bytes
func (oid OID) Bytes() []byte {
	return bytes.Clone(oid[:])
}

// String encodes identifier to canonical text
func (oid OID) String() string {
	return EncodeHex(oid)
}

// Compare returns -1, 0, 1 using lexicographical order of bytes
func (oid OID) Compare(other OID) int {
	return bytes.Compare(oid[:], other[:])
}

// IsZero checks identifier for zero value
func (oid OID) IsZero() bool {
	return oid == ZeroOID
}

/*******************************************************************************

Codecs

*******************************************************************************/

// MarshalText encodes identifier to canonical text, JSON uses it as well.
func (oid OID) MarshalText() ([]byte, error) {
	return []byte(EncodeHex(oid)), nil
}

// UnmarshalText decodes identifier from text
func (oid *OID) UnmarshalText(text []byte) error {
	val, err := DecodeHex(string(text))
	if err != nil {
		return err
	}

	*oid = val
	return nil
}

// MarshalBinary returns raw bytes of identifier
func (oid OID) MarshalBinary() ([]byte, error) {
	return oid.Bytes(), nil
}

// UnmarshalBinary decodes identifier from raw bytes
func (oid *OID) UnmarshalBinary(b []byte) error {
	val, err := OIDFromBytes(b)
	if err != nil {
		return err
	}

	*oid = val
	return nil
}

// Value implements driver.Valuer, identifier is stored as raw bytes
func (oid OID) Value() (driver.Value, error) {
	return oid.Bytes(), nil
}

// Scan implements sql.Scanner. It accepts raw bytes or canonical text.
func (oid *OID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*oid = ZeroOID
		return nil
	case []byte:
		if len(v) == OIDSize {
			return oid.UnmarshalBinary(v)
		}
		return oid.UnmarshalText(v)
	case string:
		return oid.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("sortid: unable to scan %T into OID", src)
	}
}
