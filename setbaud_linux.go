//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package setbaud

import "golang.org/x/sys/unix"

func nativeSetBaud(fd uintptr, baud int) error {
	settings, err := unix.IoctlGetTermios(int(fd), ioctlGetSpeed)
	if err != nil {
		return &PortError{code: IOCtlFailed}
	}
	settings.Cflag &^= unix.CBAUD
	settings.Cflag |= unix.BOTHER
	settings.Ispeed = uint32(baud)
	settings.Ospeed = uint32(baud)
	if err := unix.IoctlSetTermios(int(fd), ioctlSetSpeed, settings); err != nil {
		return &PortError{code: IOCtlFailed}
	}
	return nil
}

func nativeGetBaud(fd uintptr) (int, error) {
	settings, err := unix.IoctlGetTermios(int(fd), ioctlGetSpeed)
	if err != nil {
		return 0, &PortError{code: IOCtlFailed}
	}
	return int(settings.Ospeed), nil
}
