// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import "iter"

// Event reports that a registered resource is ready in the Ready directions
type Event struct {
	ID    ResourceID
	Ready IoType
}

// Events holds the batch produced by one Poll call.
// Its content is replaced by the next Poll call
type Events struct {
	evts  []Event
	woken bool
}

// NewEvents returns a batch buffer holding at most capacity events.
// capacity < 1 selects the default capacity
func NewEvents(capacity int) *Events {
	if capacity < 1 {
		capacity = pollerDefaultEventsNum
	}
	return &Events{evts: make([]Event, 0, capacity)}
}

func (e *Events) Len() int {
	return len(e.evts)
}

func (e *Events) Cap() int {
	return cap(e.evts)
}

// Woken reports whether the registered waker was signalled in this batch.
// The waker itself never appears as an Event
func (e *Events) Woken() bool {
	return e.woken
}

func (e *Events) At(i int) Event {
	return e.evts[i]
}

// All iterates the current batch once
//
//	for id, ready := range events.All() {
//		...
//	}
func (e *Events) All() iter.Seq2[ResourceID, IoType] {
	return func(yield func(ResourceID, IoType) bool) {
		for _, ev := range e.evts {
			if !yield(ev.ID, ev.Ready) {
				return
			}
		}
	}
}

func (e *Events) Reset() {
	e.evts = e.evts[:0]
	e.woken = false
}

func (e *Events) push(ev Event) bool {
	if len(e.evts) == cap(e.evts) {
		return false
	}
	e.evts = append(e.evts, ev)
	return true
}
