//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package setbaud

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// speedT matches speed_t (unsigned long)
type speedT = uint64

// see <sys/ioccom.h>
const (
	iocIn       = 0x80000000
	iocParmMask = 0x1fff
)

// ioctlIOSSIOSPEED is _IOW('T', 2, speed_t) from <IOKit/serial/ioss.h>
const ioctlIOSSIOSPEED = iocIn | (uint(unsafe.Sizeof(speedT(0)))&iocParmMask)<<16 | uint('T')<<8 | 2

const ioctlTcgetattr = unix.TIOCGETA

func nativeSetBaud(fd uintptr, baud int) error {
	speed := speedT(baud)
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(ioctlIOSSIOSPEED), uintptr(unsafe.Pointer(&speed)))
	if errno != 0 {
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
