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
	"math"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSequenceNext(t *testing.T) {
	seq := sequence{}

	a := seq.next(10, OverflowAdvance)
	b := seq.next(10, OverflowAdvance)
	snapshot := seq
	c := seq.next(5, OverflowAdvance)

	it.Then(t).Should(
		it.True(!a), it.True(!b), it.True(!c),
		it.Equal(snapshot, sequence{last: 10, counter: 2}),
		it.Equal(seq, sequence{last: 10, counter: 3}),
	)
}

func TestSequenceOverflow(t *testing.T) {
	adv := sequence{last: 10, counter: math.MaxUint32}
	sat := sequence{last: 10, counter: math.MaxUint32}

	it.Then(t).Should(
		it.True(adv.next(10, OverflowAdvance)),
		it.Equal(adv, sequence{last: 11, counter: 1}),
		it.True(sat.next(10, OverflowSaturate)),
		it.Equal(sat, sequence{last: 10, counter: math.MaxUint32}),
	)
}

func overflowIssuer(policy Overflow) (*Issuer, *observer.ObservedLogs, *prometheus.Registry) {
	core, logs := observer.New(zapcore.WarnLevel)
	reg := prometheus.NewRegistry()

	is := NewIssuer(
		WithChronos(NewClockMock(WithClockMillis(func() int64 { return 5000 }))),
		WithOverflow(policy),
		WithLogger(zap.New(core)),
		WithRegisterer(reg),
	)
	is.ulid = sequence{last: 5000, counter: math.MaxUint32 - 1}
	is.oid = sequence{last: 5, counter: math.MaxUint32 - 1}

	return is, logs, reg
}

func TestIssuerOverflowAdvance(t *testing.T) {
	is, logs, _ := overflowIssuer(OverflowAdvance)

	a, _ := is.ULID()
	b, _ := is.ULID()
	c, _ := is.ULID()
	x, _ := is.OID()
	y, _ := is.OID()

	it.Then(t).Should(
		it.Equal(a.Timestamp(), 5000),
		it.Equal(a.Counter(), math.MaxUint32),
		it.Equal(b.Timestamp(), 5001),
		it.Equal(b.Counter(), 1),
		it.Equal(c.Timestamp(), 5001),
		it.Equal(c.Counter(), 2),
		it.True(Less(a, b)),
		it.True(Less(b, c)),
		it.Equal(y.Timestamp(), 6),
		it.True(Less(x, y)),
		it.Equal(logs.FilterMessage("counter overflow").Len(), 2),
		it.Equal(testutil.ToFloat64(is.metrics.overflow.WithLabelValues(kindULID)), 1),
		it.Equal(testutil.ToFloat64(is.metrics.overflow.WithLabelValues(kindOID)), 1),
	)
}

func TestIssuerOverflowSaturate(t *testing.T) {
	is, logs, _ := overflowIssuer(OverflowSaturate)

	a, _ := is.ULID()
	b, _ := is.ULID()
	c, _ := is.ULID()

	it.Then(t).Should(
		it.Equal(a.Counter(), math.MaxUint32),
		it.Equal(b.Counter(), math.MaxUint32),
		it.Equal(c.Counter(), math.MaxUint32),
		it.Equal(b.Timestamp(), 5000),
		it.Equal(c.Timestamp(), 5000),
		it.Equal(logs.FilterMessage("counter overflow").Len(), 2),
		it.Equal(testutil.ToFloat64(is.metrics.overflow.WithLabelValues(kindULID)), 2),
		it.Equal(testutil.ToFloat64(is.metrics.issued.WithLabelValues(kindULID)), 3),
	)
}
