// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

//go:build !(darwin || linux || freebsd)

package mmap

import (
	"fmt"
	"os"
)

// File holds a file's contents read into memory.
type File struct {
	name string
	data []byte
}

// Open reads the file at path.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &File{name: path, data: data}, nil
}

// Close releases the contents. Calling Close more than once is a no-op.
func (f *File) Close() error {
	f.data = nil
	return nil
}
