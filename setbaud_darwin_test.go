//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package setbaud

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestIOSSIOSPEEDEncoding(t *testing.T) {
	// _IOW('T', 2, speed_t) with an 8 byte speed_t
	require.Equal(t, uintptr(8), unsafe.Sizeof(speedT(0)))
	require.Equal(t, uint(0x80085402), uint(ioctlIOSSIOSPEED))
}
