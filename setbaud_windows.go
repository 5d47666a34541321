//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package setbaud

/*

// MSDN article on Serial Communications:
// http://msdn.microsoft.com/en-us/library/ff802693.aspx

*/

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func getCommState(handle windows.Handle) (*windows.DCB, error) {
	params := &windows.DCB{}
	params.DCBlength = uint32(unsafe.Sizeof(*params))
	if err := windows.GetCommState(handle, params); err != nil {
		return nil, err
	}
	return params, nil
}

// The DCB takes the rate verbatim, no divisor table involved.
func nativeSetBaud(fd uintptr, baud int) error {
	handle := windows.Handle(fd)
	params, err := getCommState(handle)
	if err != nil {
		return &PortError{code: IOCtlFailed}
	}
	params.BaudRate = uint32(baud)
	if err := windows.SetCommState(handle, params); err != nil {
		return &PortError{code: IOCtlFailed}
	}
	return nil
}

func nativeGetBaud(fd uintptr) (int, error) {
	params, err := getCommState(windows.Handle(fd))
	if err != nil {
		return 0, &PortError{code: IOCtlFailed}
	}
	return int(params.BaudRate), nil
}
