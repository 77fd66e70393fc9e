// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix && !linux

package reactor

import (
	"golang.org/x/sys/unix"
)

// wakePipe is the eventfd substitute for platforms without eventfd
type wakePipe struct {
	r int
	w int
}

func newWakeFd() (wakeFd, error) {
	var p [2]int
	err := unix.Pipe(p[:])
	if err != nil {
		return nil, errFromUnixErrno(err)
	}
	for _, fd := range p {
		unix.CloseOnExec(fd)
		if err = unix.SetNonblock(fd, true); err != nil {
			_ = unix.Close(p[0])
			_ = unix.Close(p[1])
			return nil, errFromUnixErrno(err)
		}
	}

	return &wakePipe{r: p[0], w: p[1]}, nil
}

func (p *wakePipe) Fd() int {
	return p.r
}

func (p *wakePipe) notify() error {
	_, err := unix.Write(p.w, []byte{1})
	if err != nil {
		return errFromUnixErrno(err)
	}
	return nil
}

func (p *wakePipe) drain() error {
	var buf [64]byte
	for {
		n, err := unix.Read(p.r, buf[:])
		if err == unix.EAGAIN {
			return nil
		}
		if err != nil {
			return errFromUnixErrno(err)
		}
		if n < len(buf) {
			return nil
		}
	}
}

func (p *wakePipe) Close() error {
	err := unix.Close(p.r)
	if err1 := unix.Close(p.w); err == nil {
		err = err1
	}
	return errFromUnixErrno(err)
}
