// ©Hayabusa Cloud Co., Ltd. 2022. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package reactor

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

type eventfd int

func newWakeFd() (wakeFd, error) {
	fd, err := newEventfd()
	if err != nil {
		return nil, err
	}
	return fd, nil
}

func newEventfd() (eventfd, error) {
	fd, err := unix.Eventfd(0, unix.EFD_NONBLOCK|unix.EFD_CLOEXEC)
	if err != nil {
		return -1, errFromUnixErrno(err)
	}

	return eventfd(fd), nil
}

func (fd eventfd) Fd() int {
	return int(fd)
}

func (fd eventfd) ReadUint64() (val uint64, err error) {
	var buf [8]byte
	_, err = unix.Read(int(fd), buf[:])
	if err != nil {
		return 0, errFromUnixErrno(err)
	}
	val = binary.NativeEndian.Uint64(buf[:])

	return val, nil
}

func (fd eventfd) WriteUint64(val uint64) error {
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], val)
	_, err := unix.Write(int(fd), buf[:])
	if err != nil {
		return errFromUnixErrno(err)
	}

	return nil
}

func (fd eventfd) notify() error {
	return fd.WriteUint64(1)
}

// drain zeroes the counter; a single read is enough for a non-semaphore eventfd
func (fd eventfd) drain() error {
	_, err := fd.ReadUint64()
	if err == ErrTemporarilyUnavailable {
		return nil
	}

	return err
}

func (fd eventfd) Close() error {
	err := unix.Close(int(fd))
	if err != nil {
		return errFromUnixErrno(err)
	}
	return nil
}
