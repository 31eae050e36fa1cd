// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package mmap exposes a file's contents as a read-only byte view.
//
// On unix systems the view is a MAP_SHARED, PROT_READ memory map; the
// slice returned by Bytes is valid until Close. Empty files are never
// mapped and yield an empty view. Elsewhere the file is read into memory
// behind the same API.
package mmap

// Name returns the path the file was opened with.
func (f *File) Name() string { return f.name }

// Len returns the size of the view in bytes.
func (f *File) Len() int { return len(f.data) }

// Bytes returns the file contents. The slice must not be written to or
// used after Close.
func (f *File) Bytes() []byte { return f.data }
