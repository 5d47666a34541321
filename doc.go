//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

/*
Package setbaud sets arbitrary (non-standard) baud rates on serial ports
that have already been opened and configured by a serial library.

The portable termios API only understands a fixed list of speeds (see
StandardRates). Anything else has to go through the driver's private
control request, and that is the only thing this package does:

	port, err := os.OpenFile("/dev/cu.usbserial-1420", os.O_RDWR|syscall.O_NOCTTY, 0)
	if err != nil {
		log.Fatal(err)
	}
	defer port.Close()

	if err := setbaud.SetBaudConn(port, 250000); err != nil {
		log.Fatal(err)
	}

When only a raw descriptor is available it can be borrowed with Borrow.
The package never closes or duplicates it:

	if err := setbaud.SetBaud(setbaud.Borrow(fd), 31250); err != nil {
		log.Fatal(err)
	}

Failures are reported as a *PortError with code IOCtlFailed, whatever the
cause. The rate is never validated here: the driver is the only judge of
which values it supports.

The mechanism used depends on the target OS:

	darwin                     ioctl IOSSIOSPEED, _IOW('T', 2, speed_t)
	linux                      termios2 with BOTHER
	freebsd, netbsd, openbsd,  termios, speeds are plain integers
	dragonfly
	windows                    DCB.BaudRate

On any other OS the functions return FunctionNotImplemented.

This library doesn't make use of cgo and "C" package, so it's a pure go library
that can be easily cross compiled.
*/
package setbaud // import "github.com/abakum/go-setbaud"
