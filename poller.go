// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import (
	"math"
	"time"
)

const (
	pollerDefaultEventsNum = 1 << 8
)

// poller is the capability surface a native readiness mechanism provides.
// Registrations are level-triggered and keyed by an opaque 64-bit token.
// Native flag words are widened to uint32 whatever the backend uses
type poller interface {
	add(fd int, token uint64, interest IoType) (events uint32, err error)
	mod(fd int, token uint64, interest IoType) (events uint32, err error)
	del(fd int, token uint64) error
	// wait blocks for up to d and returns the number of entries event can yield
	wait(d time.Duration) (n int, err error)
	event(i int) (token uint64, events uint32)
	readiness(events uint32, interest IoType) IoType
	Close() error
}

// waitMsec converts d for millisecond based wait calls.
// d < 0 blocks forever; positive durations below one millisecond round up
// so that a short timeout does not turn into a busy loop
func waitMsec(d time.Duration) int {
	if d < 0 {
		return -1
	}
	if d == 0 {
		return 0
	}
	ms := (d + time.Millisecond - 1) / time.Millisecond
	if ms > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(ms)
}
