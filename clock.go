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

import "time"

// Clock is global default instance of the clock
var Clock Chronos = NewClock()

// Clock Type, the default one
type clock struct {
	ticker func() time.Time
}

func (clock clock) Millis() int64  { return clock.ticker().UnixMilli() }
func (clock clock) Seconds() int64 { return clock.ticker().Unix() }

// Creates instance of the clock
func NewClock(opts ...ClockConfig) Chronos {
	clock := &clock{}
	defopt := []ClockConfig{WithClockUnix()}

	for _, opt := range append(defopt, opts...) {
		opt(clock)
	}
	return clock
}

// Create mock instance of the clock, it is frozen at unix epoch
func NewClockMock(opts ...ClockConfig) Chronos {
	clock := &clock{
		ticker: func() time.Time { return time.Unix(0, 0) },
	}

	for _, opt := range opts {
		opt(clock)
	}
	return clock
}

// ClockConfig option of default clock behavior.
type ClockConfig func(*clock)

// WithClock configures a custom time source
func WithClock(ticker func() time.Time) ClockConfig {
	return func(clock *clock) {
		clock.ticker = ticker
	}
}

// WithClockUnix configures time.Now() as time source
func WithClockUnix() ClockConfig {
	return func(clock *clock) {
		clock.ticker = time.Now
	}
}

// WithClockMillis configures time source that returns milliseconds since epoch.
func WithClockMillis(ticker func() int64) ClockConfig {
	return func(clock *clock) {
		clock.ticker = func() time.Time { return time.UnixMilli(ticker()) }
	}
}
