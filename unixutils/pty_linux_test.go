//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package unixutils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestPtyPassesData(t *testing.T) {
	p, err := OpenPty()
	if err != nil {
		t.Skipf("no pseudo-terminal available: %s", err)
	}
	defer p.Close()

	require.True(t, strings.HasPrefix(p.SlaveName(), "/dev/pts/"), p.SlaveName())

	_, err = unix.Write(p.SlaveFD(), []byte("abc"))
	require.NoError(t, err)

	ready, err := WaitReadable(p.MasterFD(), time.Second)
	require.NoError(t, err)
	require.True(t, ready)

	buf := make([]byte, 16)
	n, err := unix.Read(p.MasterFD(), buf)
	require.NoError(t, err)
	require.Equal(t, "abc", string(buf[:n]))
}

func TestPtyClose(t *testing.T) {
	p, err := OpenPty()
	if err != nil {
		t.Skipf("no pseudo-terminal available: %s", err)
	}
	require.NoError(t, p.Close())
	require.Equal(t, -1, p.MasterFD())
	require.Equal(t, -1, p.SlaveFD())
	require.ErrorIs(t, p.Close(), ErrClosed)
}
