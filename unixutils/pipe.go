//
// Copyright 2014-2024 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package unixutils

import (
	"errors"

	"golang.org/x/sys/unix"
)

// ErrClosed is returned by the helpers of this package once Close was called.
var ErrClosed = errors.New("descriptor already closed")

// Pipe is a unix pipe. Both ends are ordinary, non-tty descriptors.
type Pipe struct {
	opened bool
	rd     int
	wr     int
}

// NewPipe creates a new pipe
func NewPipe() (*Pipe, error) {
	fds := []int{0, 0}
	if err := unix.Pipe(fds); err != nil {
		return nil, err
	}
	return &Pipe{
		rd:     fds[0],
		wr:     fds[1],
		opened: true,
	}, nil
}

// ReadFD returns the read side of the pipe, or -1 after Close.
func (p *Pipe) ReadFD() int {
	if !p.opened {
		return -1
	}
	return p.rd
}

// WriteFD returns the write side of the pipe, or -1 after Close.
func (p *Pipe) WriteFD() int {
	if !p.opened {
		return -1
	}
	return p.wr
}

func (p *Pipe) Write(data []byte) (int, error) {
	if !p.opened {
		return 0, ErrClosed
	}
	return unix.Write(p.wr, data)
}

func (p *Pipe) Read(data []byte) (int, error) {
	if !p.opened {
		return 0, ErrClosed
	}
	return unix.Read(p.rd, data)
}

// Close both ends of the pipe
func (p *Pipe) Close() error {
	if !p.opened {
		return ErrClosed
	}
	p.opened = false
	return closeBoth(p.rd, p.wr)
}

func closeBoth(a, b int) error {
	err1 := unix.Close(a)
	err2 := unix.Close(b)
	if err1 != nil {
		return err1
	}
	return err2
}
