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
	"errors"
	"io"
)

// Size of identifiers in bytes
const (
	ULIDSize = 16
	OIDSize  = 12
)

// Length of canonical text forms
const (
	ULIDTextSize = 26
	OIDTextSize  = 24
)

// ULID is 128-bit identifier
//
//	   48 bit              80 bit
//	|-----------|--------------------------|
//	  ⟨𝒕⟩ ms          random payload
//
// The monotonic issuer splits payload into 32-bit counter ⟨𝒔⟩ and 48 bit
// of randomness.
type ULID [ULIDSize]byte

// OID is 96-bit identifier, the layout of ObjectId
//
//	  32 bit          64 bit
//	|-------|------------------|
//	 ⟨𝒕⟩ sec     opaque payload
type OID [OIDSize]byte

// Identity is a type constraint of identifiers supported by the library.
type Identity interface {
	ULID | OID
}

// Chronos is an abstraction of the clock used by generators.
type Chronos interface {
	// Milliseconds since unix epoch, the ⟨𝒕⟩ of ULID
	Millis() int64
	// Seconds since unix epoch, the ⟨𝒕⟩ of OID
	Seconds() int64
}

// RandomSource supplies payload bytes. Any io.Reader fits, reads are
// done with io.ReadFull.
type RandomSource = io.Reader

// Errors returned by the library
var (
	// Text does not match alphabet or length of identifier
	ErrInvalidText = errors.New("invalid character or length")

	// Raw bytes are not exactly 12 or 16 bytes
	ErrWrongByteLength = errors.New("wrong byte length")

	// RandomSource failed to supply bytes
	ErrEntropyUnavailable = errors.New("entropy unavailable")
)

// Zero values of identifiers
var (
	ZeroULID ULID
	ZeroOID  OID
)

// ⟨𝒕⟩ of ULID is 48 bits wide
const mask48 = 1<<48 - 1
