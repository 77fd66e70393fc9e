// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package reactor

import (
	"time"

	"golang.org/x/sys/unix"
)

type epoll struct {
	fd   int
	evts []unix.EpollEvent
}

// NewEpoll creates a reactor backed by epoll(7).
// n is the number of native events fetched per wait
func NewEpoll(n int) (Poll, error) {
	ep, err := newEpoll(n)
	if err != nil {
		return nil, err
	}
	return newReactor(BackendEpoll, ep), nil
}

func newEpoll(n int) (*epoll, error) {
	if n < 1 {
		return nil, ErrInvalidParam
	}
	evts := make([]unix.EpollEvent, n)

	fd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, errFromUnixErrno(err)
	}

	return &epoll{fd: fd, evts: evts}, nil
}

// the token is split over the Fd and Pad words of epoll_data
func epollEvent(events uint32, token uint64) *unix.EpollEvent {
	return &unix.EpollEvent{
		Events: events,
		Fd:     int32(uint32(token)),
		Pad:    int32(uint32(token >> 32)),
	}
}

func epollToken(evt *unix.EpollEvent) uint64 {
	return uint64(uint32(evt.Fd)) | uint64(uint32(evt.Pad))<<32
}

func (ep *epoll) add(fd int, token uint64, interest IoType) (uint32, error) {
	return ep.ctl(unix.EPOLL_CTL_ADD, fd, token, interest)
}

func (ep *epoll) mod(fd int, token uint64, interest IoType) (uint32, error) {
	return ep.ctl(unix.EPOLL_CTL_MOD, fd, token, interest)
}

func (ep *epoll) ctl(op, fd int, token uint64, interest IoType) (uint32, error) {
	events, err := interest.EpollEvents()
	if err != nil {
		return 0, err
	}
	err = unix.EpollCtl(ep.fd, op, fd, epollEvent(events, token))
	if err != nil {
		return 0, errFromUnixErrno(err)
	}

	return events, nil
}

func (ep *epoll) del(fd int, _ uint64) error {
	err := unix.EpollCtl(ep.fd, unix.EPOLL_CTL_DEL, fd, nil)
	if err != nil {
		return errFromUnixErrno(err)
	}

	return nil
}

func (ep *epoll) wait(d time.Duration) (n int, err error) {
	n, err = unix.EpollWait(ep.fd, ep.evts, waitMsec(d))
	if err != nil {
		return 0, errFromUnixErrno(err)
	}

	return n, nil
}

func (ep *epoll) event(i int) (token uint64, events uint32) {
	evt := &ep.evts[i]
	return epollToken(evt), evt.Events
}

func (ep *epoll) readiness(events uint32, interest IoType) IoType {
	return readinessFromEpoll(events, interest)
}

func (ep *epoll) Close() error {
	err := unix.Close(ep.fd)
	if err != nil {
		return errFromUnixErrno(err)
	}
	return nil
}
