/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

/*
Package sortid implements compact, sortable, unique identifiers for storage
systems that need surrogate keys. Identifiers are fixed size binaries, the
timestamp is a prefix of the binary and the canonical text encoding preserves
the binary order.

# Key features

↣ Identifiers are sortable by allocation time, byte-wise order of binary
equals character-wise order of canonical text.

↣ IDs allocation does not require coordination, the payload is random.

↣ Monotonic issuer gives strictly increasing sequence of identifiers within
the process.

↣ The binary form is the persisted layout, there is no variable length
representation.

# Identity Schema

ULID is 128-bit identifier, ⟨𝒕⟩ is 48-bit milliseconds since unix epoch

	   48 bit              80 bit
	|-----------|--------------------------|
	   ⟨𝒕⟩ ms            random

The monotonic issuer uses 32-bit counter ⟨𝒔⟩ as a prefix of the payload

	   48 bit      32 bit       48 bit
	|-----------|--------|---------------|
	   ⟨𝒕⟩ ms       ⟨𝒔⟩         random

The canonical text is 26 characters of Crockford's Base32
(0123456789ABCDEFGHJKMNPQRSTVWXYZ). 128 bits are shifted left by 2 bits,
130 bits are emitted as 26 groups of 5 bits, most significant group first.
Decoding is permissive, it folds case, accepts I and L as 1, O as 0 and
accepts 25 characters, which are zero extended to 128 bits.

OID is 96-bit identifier, the layout of ObjectId. ⟨𝒕⟩ is 32-bit seconds since
unix epoch.

	  32 bit          64 bit
	|-------|------------------|
	 ⟨𝒕⟩ sec    opaque payload

The canonical text is 24 lowercase hexadecimal characters.

# Generators

Generator is stateless, it writes ⟨𝒕⟩ from the clock or from the given
timestamp and fills the payload from RandomSource. Timestamps are truncated
to the width of the field, they wrap silently.

	uid, err := sortid.NewGenerator().ULID()

Issuer keeps ⟨𝒕⟩, ⟨𝒔⟩ state behind a mutex. The counter is reset each time
the clock moves forward. The counter overflow within single tick is handled
by the configured Overflow policy.

	issuer := sortid.NewIssuer(sortid.WithOverflow(sortid.OverflowAdvance))
	a, _ := issuer.ULID()
	b, _ := issuer.ULID()
	sortid.Before(a, b) // true
*/
package sortid
