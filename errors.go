// ©Hayabusa Cloud Co., Ltd. 2024. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reactor

import (
	"errors"
	"strings"
)

var (
	ErrInterruptedSyscall     = errors.New("interrupted system call")
	ErrTemporarilyUnavailable = errors.New("resource temporarily unavailable")
	ErrFaultParams            = errors.New("fault parameters")
	ErrInvalidParam           = errors.New("invalid param")
	ErrBadDescriptor          = errors.New("bad file descriptor")
	ErrAlreadyExists          = errors.New("file descriptor already registered")
	ErrNotRegistered          = errors.New("file descriptor not registered")
	ErrProcessFileLimit       = errors.New("process open fd limit")
	ErrSystemFileLimit        = errors.New("system open fd limit")
	ErrNoDevice               = errors.New("no device")
	ErrNoAvailableMemory      = errors.New("no available kernel memory")
	ErrNoPermission           = errors.New("operation not permitted")
)

var (
	// ErrEmptyInterest is returned when an IoType with neither Read nor Write is translated
	ErrEmptyInterest = errors.New("interest set is empty, not representable")
	// ErrUnsupportedFlags is returned when native flags carry bits other than readable and writable
	ErrUnsupportedFlags = errors.New("interest contains unsupported flags")
	// ErrUnknownResource is returned for an id that was never registered or is already unregistered
	ErrUnknownResource = errors.New("unknown resource id")
	// ErrWakerRegistered is returned when RegisterWaker is called twice on one backend
	ErrWakerRegistered = errors.New("waker already registered")
	ErrClosed          = errors.New("use of closed reactor object")
	ErrNotSupported    = errors.New("operation not supported on this platform")
)

const (
	opRegister        = "register"
	opModify          = "modify"
	opUnregister      = "unregister"
	opRegisterWaker   = "register waker"
	opUnregisterWaker = "unregister waker"
	opWait            = "wait"
)

// OpError describes a failed backend operation.
// ID is the zero ResourceID when the failure names no resource,
// e.g. a Register rejected before an id was allocated
type OpError struct {
	Op      string
	Backend Backend
	ID      ResourceID
	Err     error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(e.Backend.String())
	b.WriteByte(' ')
	b.WriteString(e.Op)
	if e.ID.IsValid() {
		b.WriteByte(' ')
		b.WriteString(e.ID.String())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Temporary reports whether retrying the operation may succeed
func (e *OpError) Temporary() bool {
	return errors.Is(e.Err, ErrInterruptedSyscall) || errors.Is(e.Err, ErrTemporarilyUnavailable)
}
