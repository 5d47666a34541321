//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

//go:build dragonfly || freebsd || netbsd || openbsd

package setbaud

import "golang.org/x/sys/unix"

// On these systems speed_t holds the rate itself, so the plain
// termios calls already accept any value.

const ioctlTcgetattr = unix.TIOCGETA
const ioctlTcsetattr = unix.TIOCSETA

// speed is uint32 on freebsd/dragonfly and int32 on netbsd/openbsd
type speed interface {
	~int32 | ~uint32
}

func setSpeed[T speed](ispeed, ospeed *T, baud int) {
	*ispeed = T(baud)
	*ospeed = T(baud)
}

func nativeSetBaud(fd uintptr, baud int) error {
	settings, err := unix.IoctlGetTermios(int(fd), ioctlTcgetattr)
	if err != nil {
		return &PortError{code: IOCtlFailed}
	}
	setSpeed(&settings.Ispeed, &settings.Ospeed, baud)
	if err := unix.IoctlSetTermios(int(fd), ioctlTcsetattr, settings); err != nil {
		return &PortError{code: IOCtlFailed}
	}
	return nil
}

func nativeGetBaud(fd uintptr) (int, error) {
	settings, err := unix.IoctlGetTermios(int(fd), ioctlTcgetattr)
	if err != nil {
		return 0, &PortError{code: IOCtlFailed}
	}
	return int(settings.Ospeed), nil
}
