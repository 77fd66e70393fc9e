// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import (
	"go.uber.org/atomic"
)

// wakeFd is the OS primitive behind a waker. It must become readable
// after notify and stay readable until drain
type wakeFd interface {
	PollFd
	notify() error
	drain() error
	Close() error
}

// waker is shared by one WakerSend and one WakerRecv.
// armed collapses repeated Wake calls into a single pending wake
type waker struct {
	armed atomic.Bool
	refs  atomic.Int32
	fd    wakeFd
}

func (w *waker) release() error {
	if w.refs.Dec() > 0 {
		return nil
	}
	return w.fd.Close()
}

// NewWaker creates a waker pair. The send half may be used from any goroutine,
// the receive half belongs to the goroutine that polls
func NewWaker() (*WakerSend, *WakerRecv, error) {
	fd, err := newWakeFd()
	if err != nil {
		return nil, nil, err
	}
	w := &waker{fd: fd}
	w.refs.Store(2)

	return &WakerSend{w: w}, &WakerRecv{w: w}, nil
}

// WakerSend is the signalling half of a waker pair
type WakerSend struct {
	w      *waker
	closed atomic.Bool
}

// Wake arms the waker so that a Poll blocked on the registered
// receive half returns. Wake never blocks. Calls made while the waker
// is still armed are absorbed by the pending wake
func (s *WakerSend) Wake() error {
	if s.closed.Load() {
		return ErrClosed
	}
	if !s.w.armed.CompareAndSwap(false, true) {
		return nil
	}
	err := s.w.fd.notify()
	if err == ErrTemporarilyUnavailable {
		// counter saturated, the descriptor is readable anyway
		return nil
	}
	if err != nil {
		s.w.armed.Store(false)
		return err
	}

	return nil
}

// Close drops this handle. The OS primitive is released
// once both halves are closed
func (s *WakerSend) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.w.release()
}

// WakerRecv is the consuming half of a waker pair
type WakerRecv struct {
	w      *waker
	closed atomic.Bool
}

// Fd returns the descriptor to pass to Poll.RegisterWaker
func (r *WakerRecv) Fd() int {
	return r.w.fd.Fd()
}

// Armed reports whether a wake is pending
func (r *WakerRecv) Armed() bool {
	return r.w.armed.Load()
}

// Reset consumes a pending wake. The poll loop must call it after
// Events.Woken reports true, otherwise the next Poll returns at once.
//
// A Wake racing with Reset is merged into the wake being consumed and
// produces no later readiness. Call Reset before draining the work the
// wake announced, so that work published before such a Wake is still seen
func (r *WakerRecv) Reset() error {
	if r.closed.Load() {
		return ErrClosed
	}
	err := r.w.fd.drain()
	r.w.armed.Store(false)

	return err
}

// Close drops this handle. The OS primitive is released
// once both halves are closed
func (r *WakerRecv) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	return r.w.release()
}
