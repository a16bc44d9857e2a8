/* Copyright 2026 Lectern Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package clock abstracts the standard time package so that tests can
// control the current time.
package clock

import (
	"sync"
	"time"
)

// Clock tells the current time. Production code uses the real clock and
// tests substitute a mock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (c systemClock) Now() time.Time {
	return time.Now()
}

// New returns a clock backed by the system time.
func New() Clock {
	return systemClock{}
}

// Mock is a clock whose current time is set by the test.
type Mock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMock returns a mock clock frozen at an arbitrary fixed instant.
func NewMock() *Mock {
	return &Mock{
		now: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Now returns the mock's current time.
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetNow pins the mock's current time to t.
func (m *Mock) SetNow(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Forward advances the mock's current time by d.
func (m *Mock) Forward(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
