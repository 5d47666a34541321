//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package setbaud

import "syscall"

// Handle is a borrowed reference to an open serial port descriptor.
// It never opens, duplicates or closes the descriptor: the caller keeps
// ownership for the whole lifetime of the Handle.
type Handle struct {
	fd uintptr
}

// Borrow wraps an already open descriptor (a file descriptor on unix,
// a HANDLE on windows).
func Borrow(fd uintptr) Handle {
	return Handle{fd: fd}
}

// Fd returns the borrowed descriptor.
func (h Handle) Fd() uintptr {
	return h.fd
}

// SetBaud asks the driver behind h to run at the given baud rate.
// The rate is not validated: the driver decides what is acceptable.
// Any failure is reported as a *PortError with code IOCtlFailed.
func SetBaud(h Handle, baud int) error {
	return nativeSetBaud(h.fd, baud)
}

// GetBaud returns the output speed currently configured on h.
func GetBaud(h Handle) (int, error) {
	return nativeGetBaud(h.fd)
}

// SetBaudConn is like SetBaud but takes the descriptor from c (for example
// an *os.File). The descriptor is only used while c guarantees it stays open.
func SetBaudConn(c syscall.Conn, baud int) error {
	raw, err := c.SyscallConn()
	if err != nil {
		return &PortError{code: IOCtlFailed}
	}
	var setErr error
	if err := raw.Control(func(fd uintptr) {
		setErr = SetBaud(Borrow(fd), baud)
	}); err != nil {
		return &PortError{code: IOCtlFailed}
	}
	return setErr
}

// GetBaudConn is like GetBaud but takes the descriptor from c.
func GetBaudConn(c syscall.Conn) (int, error) {
	raw, err := c.SyscallConn()
	if err != nil {
		return 0, &PortError{code: IOCtlFailed}
	}
	var baud int
	var getErr error
	if err := raw.Control(func(fd uintptr) {
		baud, getErr = GetBaud(Borrow(fd))
	}); err != nil {
		return 0, &PortError{code: IOCtlFailed}
	}
	return baud, getErr
}

// PortError is the error type returned by this package
type PortError struct {
	code PortErrorCode
}

// PortErrorCode is a code to easily identify the type of error
type PortErrorCode int

const (
	// IOCtlFailed the device-control request did not succeed
	IOCtlFailed PortErrorCode = iota
	// FunctionNotImplemented there is no custom baud rate mechanism on this OS
	FunctionNotImplemented
)

// EncodedErrorString returns a string explaining the error code
func (e PortError) EncodedErrorString() string {
	switch e.code {
	case IOCtlFailed:
		return "Could not set port speed"
	case FunctionNotImplemented:
		return "Function not implemented"
	default:
		return "Other error"
	}
}

// Error returns the complete error code
func (e PortError) Error() string {
	return e.EncodedErrorString()
}

// Code returns an identifier for the kind of error occurred
func (e PortError) Code() PortErrorCode {
	return e.code
}
