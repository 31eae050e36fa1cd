// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

//go:build darwin || linux || freebsd

package mmap

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// File is an open, read-only mapping of a regular file.
type File struct {
	name string
	fd   int
	data []byte // mmap'd MAP_SHARED, PROT_READ; nil for empty files
}

// Open maps the file at path read-only.
func Open(path string) (*File, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("stating %s: %w", path, err)
	}
	if stat.Mode&unix.S_IFMT != unix.S_IFREG {
		unix.Close(fd)
		return nil, fmt.Errorf("%s is not a regular file", path)
	}

	f := &File{name: path, fd: fd}
	if stat.Size == 0 {
		return f, nil
	}
	if int64(int(stat.Size)) != stat.Size {
		unix.Close(fd)
		return nil, fmt.Errorf("%s is %d bytes, too large to map", path, stat.Size)
	}

	data, err := unix.Mmap(fd, 0, int(stat.Size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("memory-mapping %s: %w", path, err)
	}
	f.data = data
	return f, nil
}

// Close unmaps the view and closes the file descriptor. Calling Close
// more than once is a no-op.
func (f *File) Close() error {
	if f.fd < 0 {
		return nil
	}
	var firstErr error
	if f.data != nil {
		if err := unix.Munmap(f.data); err != nil {
			firstErr = fmt.Errorf("unmapping %s: %w", f.name, err)
		}
	}
	if err := unix.Close(f.fd); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("closing %s: %w", f.name, err)
	}
	f.data = nil
	f.fd = -1
	return firstErr
}
