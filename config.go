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
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Overflow defines the behavior of monotonic issuer when the counter
// exceeds 32 bits within single tick of the clock.
type Overflow int

const (
	// OverflowAdvance moves the issued timestamp by one tick ahead of the
	// clock and resets the counter. Identifiers remain strictly ordered.
	OverflowAdvance Overflow = iota

	// OverflowSaturate keeps the counter at its maximum value. Identifiers
	// issued after the overflow share timestamp and counter, the strict
	// ordering is broken.
	OverflowSaturate
)

// String returns the name of the policy
func (o Overflow) String() string {
	switch o {
	case OverflowAdvance:
		return "advance"
	case OverflowSaturate:
		return "saturate"
	default:
		return fmt.Sprintf("overflow(%d)", int(o))
	}
}

// ParseOverflow converts the policy name into Overflow
func ParseOverflow(s string) (Overflow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "advance":
		return OverflowAdvance, nil
	case "saturate":
		return OverflowSaturate, nil
	default:
		return OverflowAdvance, fmt.Errorf("unknown overflow policy %q", s)
	}
}

type config struct {
	clock      Chronos
	entropy    RandomSource
	logger     *zap.Logger
	registerer prometheus.Registerer
	overflow   Overflow
}

func newConfig(opts []Config) *config {
	conf := &config{
		clock:    Clock,
		entropy:  rand.Reader,
		logger:   zap.NewNop(),
		overflow: OverflowAdvance,
	}

	for _, opt := range opts {
		opt(conf)
	}
	return conf
}

// Config option of generators and issuers.
type Config func(*config)

// WithChronos configures the clock used for ⟨𝒕⟩
func WithChronos(clock Chronos) Config {
	return func(conf *config) {
		if clock != nil {
			conf.clock = clock
		}
	}
}

// WithEntropy configures the source of payload randomness
func WithEntropy(entropy RandomSource) Config {
	return func(conf *config) {
		if entropy != nil {
			conf.entropy = entropy
		}
	}
}

// WithLogger configures the logger of issuer events
func WithLogger(logger *zap.Logger) Config {
	return func(conf *config) {
		if logger != nil {
			conf.logger = logger
		}
	}
}

// WithRegisterer enables issuer metrics at the registry
func WithRegisterer(registerer prometheus.Registerer) Config {
	return func(conf *config) {
		conf.registerer = registerer
	}
}

// WithOverflow configures the counter overflow policy of issuer
func WithOverflow(overflow Overflow) Config {
	return func(conf *config) {
		conf.overflow = overflow
	}
}

// WithOverflowFromEnv configures the counter overflow policy using env variable.
//
// CONFIG_SORTID_OVERFLOW - advance or saturate, unknown values keep the default
func WithOverflowFromEnv() Config {
	return func(conf *config) {
		if overflow, err := ParseOverflow(os.Getenv("CONFIG_SORTID_OVERFLOW")); err == nil {
			conf.overflow = overflow
		}
	}
}

// fill reads random payload, short reads are failures
func fill(entropy RandomSource, b []byte) error {
	if _, err := io.ReadFull(entropy, b); err != nil {
		return fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	return nil
}
