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

package sortid_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/sortid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func frozen(ms int64) sortid.Chronos {
	return sortid.NewClockMock(
		sortid.WithClockMillis(func() int64 { return ms }),
	)
}

// flakyReader fails while the flag is set
type flakyReader struct{ fail atomic.Bool }

func (r *flakyReader) Read(b []byte) (int, error) {
	if r.fail.Load() {
		return 0, errors.New("no entropy")
	}
	for i := range b {
		b[i] = 0x5a
	}
	return len(b), nil
}

func TestIssuerSameTick(t *testing.T) {
	is := sortid.NewIssuer(sortid.WithChronos(frozen(1700000000000)))

	a, erra := is.ULID()
	b, errb := is.ULID()

	it.Then(t).Should(
		it.Nil(erra),
		it.Nil(errb),
		it.Equal(a.Timestamp(), b.Timestamp()),
		it.Equal(a.Timestamp(), 1700000000000),
		it.Equal(a.Counter(), 1),
		it.Equal(b.Counter()-a.Counter(), 1),
		it.True(sortid.Before(a, b)),
	)
}

func TestIssuerNextTick(t *testing.T) {
	ms := int64(1700000000000)
	is := sortid.NewIssuer(sortid.WithChronos(
		sortid.NewClockMock(sortid.WithClockMillis(func() int64 { return ms })),
	))

	a, _ := is.ULID()
	b, _ := is.ULID()
	ms++
	c, _ := is.ULID()

	it.Then(t).Should(
		it.Equal(b.Counter(), 2),
		it.Equal(c.Counter(), 1),
		it.Equal(c.Timestamp(), 1700000000001),
		it.True(sortid.Before(a, b)),
		it.True(sortid.Before(b, c)),
	)
}

func TestIssuerClockRegression(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	ms := int64(1000)
	is := sortid.NewIssuer(
		sortid.WithChronos(
			sortid.NewClockMock(sortid.WithClockMillis(func() int64 { return ms })),
		),
		sortid.WithLogger(zap.New(core)),
	)

	a, _ := is.ULID()
	ms = 900
	b, _ := is.ULID()

	it.Then(t).Should(
		it.Equal(b.Timestamp(), 1000),
		it.Equal(b.Counter(), 2),
		it.True(sortid.Before(a, b)),
		it.Equal(logs.FilterMessage("clock is behind issued timestamp").Len(), 1),
	)
}

func TestIssuerMonotonic(t *testing.T) {
	is := sortid.NewIssuer()

	prev, _ := is.ULID()
	poid, _ := is.OID()
	for i := 0; i < 10000; i++ {
		uid, erru := is.ULID()
		oid, erro := is.OID()

		it.Then(t).Should(
			it.Nil(erru),
			it.Nil(erro),
			it.True(sortid.Less(prev, uid)),
			it.True(sortid.Less(poid, oid)),
			it.True(prev.String() < uid.String()),
		)
		prev, poid = uid, oid
	}
}

func TestIssuerOID(t *testing.T) {
	is := sortid.NewIssuer(
		sortid.WithChronos(frozen(1700000000999)),
		sortid.WithEntropy(bytes.NewReader(bytes.Repeat([]byte{0xee}, 64))),
	)

	a, _ := is.OID()
	b, _ := is.OID()

	it.Then(t).Should(
		it.Equal(a.Timestamp(), 1700000000),
		it.Equal(a.Counter(), 1),
		it.Equal(b.Counter(), 2),
		it.Equal(a.String(), "6553f10000000001eeeeeeee"),
		it.True(sortid.Before(a, b)),
	)
}

func TestIssuerEntropyUnavailable(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	entropy := &flakyReader{}

	is := sortid.NewIssuer(
		sortid.WithChronos(frozen(1700000000000)),
		sortid.WithEntropy(entropy),
		sortid.WithLogger(zap.New(core)),
	)

	a, _ := is.ULID()
	entropy.fail.Store(true)
	x, errx := is.ULID()
	y, erry := is.OID()
	entropy.fail.Store(false)
	b, _ := is.ULID()

	it.Then(t).Should(
		it.True(errors.Is(errx, sortid.ErrEntropyUnavailable)),
		it.True(errors.Is(erry, sortid.ErrEntropyUnavailable)),
		it.Equal(x, sortid.ZeroULID),
		it.Equal(y, sortid.ZeroOID),
		it.Equal(b.Counter()-a.Counter(), 1),
		it.Equal(logs.FilterMessage("entropy unavailable").Len(), 2),
	)
}

func TestIssuerConcurrent(t *testing.T) {
	is := sortid.NewIssuer()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[sortid.ULID]struct{}{}
		fail atomic.Int32
	)

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var prev sortid.ULID
			for i := 0; i < 1000; i++ {
				uid, err := is.ULID()
				if err != nil || !sortid.Less(prev, uid) {
					fail.Add(1)
				}
				prev = uid

				mu.Lock()
				seen[uid] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	it.Then(t).Should(
		it.Equal(fail.Load(), 0),
		it.Equal(len(seen), 8000),
	)
}

func TestIssuerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	is := sortid.NewIssuer(sortid.WithRegisterer(reg))
	// second issuer shares counters of the registry
	js := sortid.NewIssuer(sortid.WithRegisterer(reg))

	for i := 0; i < 3; i++ {
		is.ULID()
	}
	is.OID()
	js.OID()

	expect := `
# HELP sortid_issued_total Total number of identifiers made by monotonic issuers.
# TYPE sortid_issued_total counter
sortid_issued_total{kind="oid"} 2
sortid_issued_total{kind="ulid"} 3
`

	it.Then(t).Should(
		it.Nil(testutil.GatherAndCompare(reg, strings.NewReader(expect), sortid.MetricIssued)),
	)
}

func TestWithOverflow(t *testing.T) {
	it.Then(t).Should(
		it.Equal(sortid.NewIssuer().Overflow(), sortid.OverflowAdvance),
		it.Equal(sortid.NewIssuer(sortid.WithOverflow(sortid.OverflowSaturate)).Overflow(), sortid.OverflowSaturate),
	)
}

func TestWithOverflowFromEnv(t *testing.T) {
	t.Setenv("CONFIG_SORTID_OVERFLOW", "saturate")
	a := sortid.NewIssuer(sortid.WithOverflowFromEnv())

	t.Setenv("CONFIG_SORTID_OVERFLOW", "unknown")
	b := sortid.NewIssuer(sortid.WithOverflow(sortid.OverflowSaturate), sortid.WithOverflowFromEnv())

	t.Setenv("CONFIG_SORTID_OVERFLOW", "Advance")
	c := sortid.NewIssuer(sortid.WithOverflow(sortid.OverflowSaturate), sortid.WithOverflowFromEnv())

	it.Then(t).Should(
		it.Equal(a.Overflow(), sortid.OverflowSaturate),
		it.Equal(b.Overflow(), sortid.OverflowSaturate),
		it.Equal(c.Overflow(), sortid.OverflowAdvance),
	)
}

func TestParseOverflow(t *testing.T) {
	a, erra := sortid.ParseOverflow("saturate")
	b, errb := sortid.ParseOverflow("")
	_, errc := sortid.ParseOverflow("block")

	it.Then(t).Should(
		it.Nil(erra),
		it.Nil(errb),
		it.Equal(a, sortid.OverflowSaturate),
		it.Equal(b, sortid.OverflowAdvance),
		it.True(errc != nil),
		it.Equal(sortid.OverflowSaturate.String(), "saturate"),
	)
}
