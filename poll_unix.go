// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package reactor

import (
	"time"

	"golang.org/x/sys/unix"
)

// pollSet keeps the pollfd array handed to poll(2) together with
// the token of every slot. Removal swaps the last slot into the hole
type pollSet struct {
	fds    []unix.PollFd
	tokens []uint64
	index  map[uint64]int
	ready  []int
	limit  int
}

// NewPoller creates a reactor backed by poll(2).
// n caps the number of ready entries taken from one wait
func NewPoller(n int) (Poll, error) {
	ps, err := newPollSet(n)
	if err != nil {
		return nil, err
	}
	return newReactor(BackendPoll, ps), nil
}

func newPollSet(n int) (*pollSet, error) {
	if n < 1 {
		return nil, ErrInvalidParam
	}
	return &pollSet{
		index: make(map[uint64]int),
		ready: make([]int, 0, n),
		limit: n,
	}, nil
}

func (ps *pollSet) add(fd int, token uint64, interest IoType) (uint32, error) {
	if fd < 0 {
		return 0, ErrBadDescriptor
	}
	// poll(2) accepts anything; reject a dead descriptor the way epoll_ctl does
	if _, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0); err != nil {
		return 0, errFromUnixErrno(err)
	}
	if _, ok := ps.index[token]; ok {
		return 0, ErrAlreadyExists
	}
	for i := range ps.fds {
		if int(ps.fds[i].Fd) == fd {
			return 0, ErrAlreadyExists
		}
	}
	events, err := interest.PollEvents()
	if err != nil {
		return 0, err
	}
	ps.index[token] = len(ps.fds)
	ps.fds = append(ps.fds, unix.PollFd{Fd: int32(fd), Events: events})
	ps.tokens = append(ps.tokens, token)

	return uint32(uint16(events)), nil
}

func (ps *pollSet) mod(fd int, token uint64, interest IoType) (uint32, error) {
	i, ok := ps.index[token]
	if !ok || int(ps.fds[i].Fd) != fd {
		return 0, ErrNotRegistered
	}
	events, err := interest.PollEvents()
	if err != nil {
		return 0, err
	}
	ps.fds[i].Events = events

	return uint32(uint16(events)), nil
}

func (ps *pollSet) del(fd int, token uint64) error {
	i, ok := ps.index[token]
	if !ok || int(ps.fds[i].Fd) != fd {
		return ErrNotRegistered
	}
	last := len(ps.fds) - 1
	if i != last {
		ps.fds[i] = ps.fds[last]
		ps.tokens[i] = ps.tokens[last]
		ps.index[ps.tokens[i]] = i
	}
	ps.fds = ps.fds[:last]
	ps.tokens = ps.tokens[:last]
	delete(ps.index, token)

	return nil
}

func (ps *pollSet) wait(d time.Duration) (int, error) {
	ps.ready = ps.ready[:0]
	n, err := unix.Poll(ps.fds, waitMsec(d))
	if err != nil {
		return 0, errFromUnixErrno(err)
	}
	// a descriptor closed while registered is dropped, as epoll drops it
	// from its interest list; kept, it would fail every later poll(2) at once
	for i := len(ps.fds) - 1; i >= 0; i-- {
		if ps.fds[i].Revents&unix.POLLNVAL != 0 {
			_ = ps.del(int(ps.fds[i].Fd), ps.tokens[i])
		}
	}
	for i := 0; i < len(ps.fds) && n > 0; i++ {
		if ps.fds[i].Revents == 0 {
			continue
		}
		n--
		if len(ps.ready) < ps.limit || ps.tokens[i] == wakerToken {
			ps.ready = append(ps.ready, i)
		}
	}

	return len(ps.ready), nil
}

func (ps *pollSet) event(i int) (token uint64, events uint32) {
	slot := ps.ready[i]
	return ps.tokens[slot], uint32(uint16(ps.fds[slot].Revents))
}

func (ps *pollSet) readiness(events uint32, interest IoType) IoType {
	return readinessFromPoll(int16(uint16(events)), interest)
}

// Close forgets every slot; poll(2) holds no kernel object of its own
func (ps *pollSet) Close() error {
	ps.fds, ps.tokens, ps.ready = nil, nil, nil
	clear(ps.index)
	return nil
}
