// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package reactor

import "golang.org/x/sys/unix"

const pollInterestMask = unix.POLLIN | unix.POLLOUT

// PollEvents translates t into poll(2) interest flags
func (t IoType) PollEvents() (int16, error) {
	switch {
	case t.Read && t.Write:
		return unix.POLLIN | unix.POLLOUT, nil
	case t.Read:
		return unix.POLLIN, nil
	case t.Write:
		return unix.POLLOUT, nil
	}
	return 0, ErrEmptyInterest
}

// IoTypeFromPollEvents is the inverse of IoType.PollEvents.
// Any bit other than POLLIN and POLLOUT is rejected
func IoTypeFromPollEvents(events int16) (IoType, error) {
	if events&^pollInterestMask != 0 {
		return IoType{}, ErrUnsupportedFlags
	}
	t := IoType{
		Read:  events&unix.POLLIN != 0,
		Write: events&unix.POLLOUT != 0,
	}
	if t.IsEmpty() {
		return IoType{}, ErrEmptyInterest
	}
	return t, nil
}

func readinessFromPoll(revents int16, interest IoType) IoType {
	ready := IoType{
		Read:  revents&(unix.POLLIN|unix.POLLPRI) != 0,
		Write: revents&unix.POLLOUT != 0,
	}
	if revents&(unix.POLLERR|unix.POLLHUP) != 0 {
		ready = ready.merge(interest)
	}
	return ready
}
