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
	"encoding/binary"
	"time"
)

// Generator produces identifiers with random payload. It does not hold
// any mutable state, it is safe for concurrent use.
type Generator struct {
	clock   Chronos
	entropy RandomSource
}

// NewGenerator creates instance of generator. The default one uses global
// Clock and crypto/rand.
func NewGenerator(opts ...Config) *Generator {
	conf := newConfig(opts)

	return &Generator{
		clock:   conf.clock,
		entropy: conf.entropy,
	}
}

// ULID generates identifier using current time of the clock.
func (g *Generator) ULID() (ULID, error) {
	return g.ULIDWithTimestamp(g.clock.Millis())
}

// ULIDWithTime generates identifier with ⟨𝒕⟩ of given time.
func (g *Generator) ULIDWithTime(t time.Time) (ULID, error) {
	return g.ULIDWithTimestamp(t.UnixMilli())
}

// ULIDWithTimestamp generates identifier with ⟨𝒕⟩ of given milliseconds.
// The value is truncated to 48 bits.
func (g *Generator) ULIDWithTimestamp(ms int64) (uid ULID, err error) {
	putMillis(uid[:], ms)

	if err := fill(g.entropy, uid[6:]); err != nil {
		return ZeroULID, err
	}

	return
}

// OID generates identifier using current time of the clock.
func (g *Generator) OID() (OID, error) {
	return g.OIDWithTimestamp(g.clock.Seconds())
}

// OIDWithTime generates identifier with ⟨𝒕⟩ of given time.
func (g *Generator) OIDWithTime(t time.Time) (OID, error) {
	return g.OIDWithTimestamp(t.Unix())
}

// OIDWithTimestamp generates identifier with ⟨𝒕⟩ of given seconds.
// The value is truncated to 32 bits.
func (g *Generator) OIDWithTimestamp(sec int64) (oid OID, err error) {
	putSeconds(oid[:], sec)

	if err := fill(g.entropy, oid[4:]); err != nil {
		return ZeroOID, err
	}

	return
}

// writes 48 low bits of ms as big-endian
func putMillis(b []byte, ms int64) {
	t := uint64(ms) & mask48
	b[0] = byte(t >> 40)
	b[1] = byte(t >> 32)
	b[2] = byte(t >> 24)
	b[3] = byte(t >> 16)
	b[4] = byte(t >> 8)
	b[5] = byte(t)
}

// writes 32 low bits of sec as big-endian
func putSeconds(b []byte, sec int64) {
	binary.BigEndian.PutUint32(b[0:4], uint32(sec))
}

/*******************************************************************************

Defaults

*******************************************************************************/

var std = NewGenerator()

// NewULID generates ULID using default generator
func NewULID() (ULID, error) { return std.ULID() }

// NewOID generates OID using default generator
func NewOID() (OID, error) { return std.OID() }

// Must panics if identifier is not generated or decoded
func Must[T Identity](id T, err error) T {
	if err != nil {
		panic(err)
	}
	return id
}
