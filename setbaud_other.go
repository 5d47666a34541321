//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

//go:build !darwin && !linux && !dragonfly && !freebsd && !netbsd && !openbsd && !windows

package setbaud

func nativeSetBaud(fd uintptr, baud int) error {
	return &PortError{code: FunctionNotImplemented}
}

func nativeGetBaud(fd uintptr) (int, error) {
	return 0, &PortError{code: FunctionNotImplemented}
}
