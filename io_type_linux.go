// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package reactor

import "golang.org/x/sys/unix"

const epollInterestMask = unix.EPOLLIN | unix.EPOLLOUT

// EpollEvents translates t into epoll interest flags
func (t IoType) EpollEvents() (uint32, error) {
	switch {
	case t.Read && t.Write:
		return unix.EPOLLIN | unix.EPOLLOUT, nil
	case t.Read:
		return unix.EPOLLIN, nil
	case t.Write:
		return unix.EPOLLOUT, nil
	}
	return 0, ErrEmptyInterest
}

// IoTypeFromEpollEvents is the inverse of IoType.EpollEvents.
// Any bit other than EPOLLIN and EPOLLOUT is rejected
func IoTypeFromEpollEvents(events uint32) (IoType, error) {
	if events&^epollInterestMask != 0 {
		return IoType{}, ErrUnsupportedFlags
	}
	t := IoType{
		Read:  events&unix.EPOLLIN != 0,
		Write: events&unix.EPOLLOUT != 0,
	}
	if t.IsEmpty() {
		return IoType{}, ErrEmptyInterest
	}
	return t, nil
}

func readinessFromEpoll(events uint32, interest IoType) IoType {
	ready := IoType{
		Read:  events&(unix.EPOLLIN|unix.EPOLLPRI|unix.EPOLLRDHUP) != 0,
		Write: events&unix.EPOLLOUT != 0,
	}
	if events&(unix.EPOLLERR|unix.EPOLLHUP) != 0 {
		ready = ready.merge(interest)
	}
	return ready
}
