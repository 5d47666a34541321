//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

//go:build linux && (ppc64 || ppc64le)

package setbaud

import "golang.org/x/sys/unix"

// no TCGETS2 here: the plain termios already has the speed fields
const ioctlGetSpeed = unix.TCGETS
const ioctlSetSpeed = unix.TCSETS
