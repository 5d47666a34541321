//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package unixutils

import (
	"time"

	"github.com/creack/goselect"
)

// WaitReadable blocks until fd has data to read or the timeout expires.
// A negative timeout waits forever.
func WaitReadable(fd int, timeout time.Duration) (bool, error) {
	rd := &goselect.FDSet{}
	rd.Set(uintptr(fd))
	// the runtime preempts with signals, retry on EINTR
	if err := goselect.RetrySelect(fd+1, rd, nil, nil, timeout, 10, time.Millisecond); err != nil {
		return false, err
	}
	return rd.IsSet(uintptr(fd)), nil
}
