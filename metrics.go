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

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics of monotonic issuer
const (
	// MetricIssued is total number of identifiers made by issuers (Counter)
	MetricIssued = "sortid_issued_total"

	// MetricCounterOverflow is total number of ⟨𝒔⟩ overflows (Counter)
	MetricCounterOverflow = "sortid_counter_overflow_total"
)

// Values of "kind" label
const (
	kindULID = "ulid"
	kindOID  = "oid"
)

type metrics struct {
	issued   *prometheus.CounterVec
	overflow *prometheus.CounterVec
}

// newMetrics registers counters, the counters already known by the registry
// are reused so that multiple issuers share them.
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}

	m := &metrics{
		issued: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricIssued,
				Help: "Total number of identifiers made by monotonic issuers.",
			},
			[]string{"kind"},
		),
		overflow: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricCounterOverflow,
				Help: "Total number of counter overflows within single clock tick.",
			},
			[]string{"kind"},
		),
	}

	m.issued = register(reg, m.issued)
	m.overflow = register(reg, m.overflow)

	return m
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return c
}

func (m *metrics) onIssued(kind string) {
	if m != nil {
		m.issued.WithLabelValues(kind).Inc()
	}
}

func (m *metrics) onOverflow(kind string) {
	if m != nil {
		m.overflow.WithLabelValues(kind).Inc()
	}
}
