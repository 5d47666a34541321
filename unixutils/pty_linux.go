//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package unixutils

import (
	"strconv"

	"golang.org/x/sys/unix"
)

// Pty is a pseudo-terminal pair. The slave side behaves like a serial
// port as far as termios is concerned.
type Pty struct {
	opened    bool
	master    int
	slave     int
	slaveName string
}

// OpenPty allocates a new pseudo-terminal from /dev/ptmx.
func OpenPty() (*Pty, error) {
	master, err := unix.Open("/dev/ptmx", unix.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}
	name, err := unlockPty(master)
	if err != nil {
		unix.Close(master)
		return nil, err
	}
	slave, err := unix.Open(name, unix.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0)
	if err != nil {
		unix.Close(master)
		return nil, err
	}
	return &Pty{
		opened:    true,
		master:    master,
		slave:     slave,
		slaveName: name,
	}, nil
}

// unlockPty is unlockpt(3) followed by ptsname(3).
func unlockPty(master int) (string, error) {
	if err := unix.IoctlSetPointerInt(master, unix.TIOCSPTLCK, 0); err != nil {
		return "", err
	}
	n, err := unix.IoctlGetUint32(master, unix.TIOCGPTN)
	if err != nil {
		return "", err
	}
	return "/dev/pts/" + strconv.FormatUint(uint64(n), 10), nil
}

// MasterFD returns the master side, or -1 after Close.
func (p *Pty) MasterFD() int {
	if !p.opened {
		return -1
	}
	return p.master
}

// SlaveFD returns the slave side, or -1 after Close.
func (p *Pty) SlaveFD() int {
	if !p.opened {
		return -1
	}
	return p.slave
}

// SlaveName returns the device path of the slave side.
func (p *Pty) SlaveName() string {
	return p.slaveName
}

// Close both sides of the pseudo-terminal
func (p *Pty) Close() error {
	if !p.opened {
		return ErrClosed
	}
	p.opened = false
	return closeBoth(p.slave, p.master)
}
