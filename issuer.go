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
	"math"
	"sync"

	"go.uber.org/zap"
)

// sequence is the state of monotonic ⟨𝒕⟩, ⟨𝒔⟩ pair
type sequence struct {
	last    int64
	counter uint32
}

// next moves the sequence to the tick now. It returns true if the counter
// has overflowed.
func (seq *sequence) next(now int64, policy Overflow) bool {
	if now > seq.last {
		seq.last = now
		seq.counter = 0
	}

	if seq.counter < math.MaxUint32 {
		seq.counter++
		return false
	}

	if policy == OverflowAdvance {
		seq.last++
		seq.counter = 1
	}

	return true
}

// Issuer generates strictly increasing identifiers. The guarantee is local
// to the issuer instance, the application owns as many issuers as it needs
// independent sequences. Issuer is safe for concurrent use.
type Issuer struct {
	mu      sync.Mutex
	ulid    sequence
	oid     sequence
	clock   Chronos
	entropy RandomSource
	policy  Overflow
	logger  *zap.Logger
	metrics *metrics
}

// NewIssuer creates instance of monotonic issuer
func NewIssuer(opts ...Config) *Issuer {
	conf := newConfig(opts)

	return &Issuer{
		clock:   conf.clock,
		entropy: conf.entropy,
		policy:  conf.overflow,
		logger:  conf.logger,
		metrics: newMetrics(conf.registerer),
	}
}

// Overflow returns the counter overflow policy of the issuer
func (is *Issuer) Overflow() Overflow { return is.policy }

// ULID issues identifier
//
//	   48 bit      32 bit       48 bit
//	|-----------|--------|---------------|
//	  ⟨𝒕⟩ ms       ⟨𝒔⟩         random
//
// ⟨𝒔⟩ is reset to 1 on each new millisecond, it increments otherwise.
func (is *Issuer) ULID() (uid ULID, err error) {
	is.mu.Lock()
	defer is.mu.Unlock()

	seq := is.ulid
	is.advance(kindULID, &seq, is.clock.Millis())

	putMillis(uid[:], seq.last)
	binary.BigEndian.PutUint32(uid[6:10], seq.counter)

	if err := fill(is.entropy, uid[10:]); err != nil {
		is.logger.Error("entropy unavailable", zap.String("kind", kindULID), zap.Error(err))
		return ZeroULID, err
	}

	is.ulid = seq
	is.metrics.onIssued(kindULID)
	return
}

// OID issues identifier
//
//	  32 bit    32 bit    32 bit
//	|--------|--------|--------|
//	 ⟨𝒕⟩ sec     ⟨𝒔⟩      random
//
// ⟨𝒔⟩ is reset to 1 on each new second, it increments otherwise.
func (is *Issuer) OID() (oid OID, err error) {
	is.mu.Lock()
	defer is.mu.Unlock()

	seq := is.oid
	is.advance(kindOID, &seq, is.clock.Seconds())

	putSeconds(oid[:], seq.last)
	binary.BigEndian.PutUint32(oid[4:8], seq.counter)

	if err := fill(is.entropy, oid[8:]); err != nil {
		is.logger.Error("entropy unavailable", zap.String("kind", kindOID), zap.Error(err))
		return ZeroOID, err
	}

	is.oid = seq
	is.metrics.onIssued(kindOID)
	return
}

func (is *Issuer) advance(kind string, seq *sequence, now int64) {
	if now < seq.last {
		is.logger.Debug("clock is behind issued timestamp",
			zap.String("kind", kind),
			zap.Int64("clock", now),
			zap.Int64("issued", seq.last),
		)
	}

	if seq.next(now, is.policy) {
		is.logger.Warn("counter overflow",
			zap.String("kind", kind),
			zap.Stringer("policy", is.policy),
			zap.Int64("timestamp", seq.last),
		)
		is.metrics.onOverflow(kind)
	}
}
