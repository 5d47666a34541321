//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

//go:build linux && !ppc64 && !ppc64le

package setbaud

import "golang.org/x/sys/unix"

// termios2 carries c_ispeed/c_ospeed
const ioctlGetSpeed = unix.TCGETS2
const ioctlSetSpeed = unix.TCSETS2
