// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package reactor multiplexes readiness of many descriptors behind one
// interface, with interchangeable epoll and poll(2) backends and a
// waker that interrupts a blocked Poll from another goroutine.
//
// A Poll instance is owned by one goroutine. Only WakerSend.Wake may be
// called concurrently with it.
package reactor

import (
	"time"

	"go.uber.org/atomic"
)

// PollFd is anything exposing a native descriptor.
// The descriptor must stay open while it is registered
type PollFd interface {
	Fd() int
}

// Poll is the reactor contract every backend satisfies
type Poll interface {
	// Register adds fd with the given interest and returns its id
	Register(fd PollFd, interest IoType) (ResourceID, error)
	// SetInterest replaces the interest of a registered resource
	SetInterest(id ResourceID, interest IoType) error
	// Unregister removes a resource. The id is dead afterwards
	Unregister(id ResourceID) error
	// RegisterWaker watches the receive half of a waker pair.
	// Its readiness is reported through Events.Woken
	RegisterWaker(fd PollFd) error
	// UnregisterWaker stops watching the waker so another one may be registered
	UnregisterWaker() error
	// Poll waits for readiness and fills events with the current batch.
	// d < 0 blocks until readiness or wake, d == 0 returns immediately.
	// The returned count excludes the waker
	Poll(events *Events, d time.Duration) (n int, err error)
	// Close releases the backend. Registered descriptors are left open
	Close() error
}

// Backend selects the native readiness mechanism
type Backend int

const (
	BackendDefault Backend = iota
	BackendEpoll
	BackendPoll
)

func (b Backend) String() string {
	switch b {
	case BackendEpoll:
		return "epoll"
	case BackendPoll:
		return "poll"
	}
	return "default"
}

// reactor does the bookkeeping shared by all backends on top of a native poller
type reactor struct {
	backend Backend
	p       poller
	table   resourceTable
	wakerFd int
	closed  atomic.Bool
}

func newReactor(backend Backend, p poller) *reactor {
	return &reactor{
		backend: backend,
		p:       p,
		table:   newResourceTable(),
		wakerFd: -1,
	}
}

func (r *reactor) opError(op string, id ResourceID, err error) error {
	return &OpError{Op: op, Backend: r.backend, ID: id, Err: err}
}

func (r *reactor) Register(fd PollFd, interest IoType) (ResourceID, error) {
	if r.closed.Load() {
		return ResourceID{}, ErrClosed
	}
	if fd == nil {
		return ResourceID{}, r.opError(opRegister, ResourceID{}, ErrInvalidParam)
	}
	if interest.IsEmpty() {
		return ResourceID{}, r.opError(opRegister, ResourceID{}, ErrEmptyInterest)
	}
	id := r.table.alloc()
	raw := fd.Fd()
	events, err := r.p.add(raw, id.token(), interest)
	if err != nil {
		return ResourceID{}, r.opError(opRegister, id, err)
	}
	r.table.insert(&resource{id: id, fd: raw, interest: interest, events: events})

	return id, nil
}

func (r *reactor) SetInterest(id ResourceID, interest IoType) error {
	if r.closed.Load() {
		return ErrClosed
	}
	res, ok := r.table.lookup(id)
	if !ok {
		return r.opError(opModify, id, ErrUnknownResource)
	}
	if interest.IsEmpty() {
		return r.opError(opModify, id, ErrEmptyInterest)
	}
	events, err := r.p.mod(res.fd, id.token(), interest)
	if err != nil {
		return r.opError(opModify, id, err)
	}
	res.interest, res.events = interest, events

	return nil
}

// Unregister drops the entry even when the native removal fails,
// e.g. because the caller closed the descriptor first
func (r *reactor) Unregister(id ResourceID) error {
	if r.closed.Load() {
		return ErrClosed
	}
	res, ok := r.table.remove(id)
	if !ok {
		return r.opError(opUnregister, id, ErrUnknownResource)
	}
	err := r.p.del(res.fd, id.token())
	if err != nil {
		return r.opError(opUnregister, id, err)
	}

	return nil
}

func (r *reactor) RegisterWaker(fd PollFd) error {
	if r.closed.Load() {
		return ErrClosed
	}
	if fd == nil {
		return r.opError(opRegisterWaker, ResourceID{}, ErrInvalidParam)
	}
	if r.wakerFd >= 0 {
		return r.opError(opRegisterWaker, ResourceID{}, ErrWakerRegistered)
	}
	raw := fd.Fd()
	_, err := r.p.add(raw, wakerToken, Readable)
	if err != nil {
		return r.opError(opRegisterWaker, ResourceID{}, err)
	}
	r.wakerFd = raw

	return nil
}

// UnregisterWaker forgets the waker even when the native removal fails,
// e.g. because both halves were closed first
func (r *reactor) UnregisterWaker() error {
	if r.closed.Load() {
		return ErrClosed
	}
	if r.wakerFd < 0 {
		return r.opError(opUnregisterWaker, ResourceID{}, ErrNotRegistered)
	}
	fd := r.wakerFd
	r.wakerFd = -1
	err := r.p.del(fd, wakerToken)
	if err != nil {
		return r.opError(opUnregisterWaker, ResourceID{}, err)
	}

	return nil
}

func (r *reactor) Poll(events *Events, d time.Duration) (int, error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}
	if events == nil || events.Cap() < 1 {
		return 0, r.opError(opWait, ResourceID{}, ErrInvalidParam)
	}
	events.Reset()
	n, err := r.p.wait(d)
	if err != nil {
		return 0, r.opError(opWait, ResourceID{}, err)
	}
	for i := 0; i < n; i++ {
		token, native := r.p.event(i)
		if token == wakerToken {
			events.woken = true
			continue
		}
		res, ok := r.table.lookup(ResourceID{n: token})
		if !ok {
			continue
		}
		ready := r.p.readiness(native, res.interest)
		if ready.IsEmpty() {
			continue
		}
		// a full batch keeps scanning so a wake is not missed
		events.push(Event{ID: res.id, Ready: ready})
	}

	return events.Len(), nil
}

func (r *reactor) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	return r.p.Close()
}
