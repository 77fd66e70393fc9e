// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package reactor

import (
	"errors"

	"golang.org/x/sys/unix"
)

func errFromUnixErrno(err error) error {
	if err == nil {
		return nil
	}
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return err
	}
	switch errno {
	case unix.EINTR:
		return ErrInterruptedSyscall
	case unix.EAGAIN:
		return ErrTemporarilyUnavailable
	case unix.EFAULT:
		return ErrFaultParams
	case unix.EINVAL:
		return ErrInvalidParam
	case unix.EBADF:
		return ErrBadDescriptor
	case unix.EEXIST:
		return ErrAlreadyExists
	case unix.ENOENT:
		return ErrNotRegistered
	case unix.EMFILE:
		return ErrProcessFileLimit
	case unix.ENFILE:
		return ErrSystemFileLimit
	case unix.ENODEV:
		return ErrNoDevice
	case unix.ENOMEM:
		return ErrNoAvailableMemory
	case unix.EPERM:
		return ErrNoPermission
	default:
		return errno
	}
}
