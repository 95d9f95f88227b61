// Copyright 2023 The Project Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package loader feeds parsed MBN ROM segments to a host environment. The
// host is anything able to register a named memory region at an address; it
// is reached only through the Sink interface so the parsing core stays free
// of host dependencies.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/greencams/mbn-rom/mbn"
)

// Sink registers segments with the host. AddSegment is called once per
// segment, in carve order; the segment must not be mutated by the
// implementation.
type Sink interface {
	AddSegment(s mbn.Segment) error
}

// Result describes a loaded ROM.
type Result struct {
	Rom *mbn.Rom

	// EntryName and EntryPoint identify the first byte of the loaded
	// image, intended to be registered as an entry point.
	EntryName  string
	EntryPoint uint32
}

// Accept reports whether data parses as an MBN ROM. Intended for format
// probing before committing to a load.
func Accept(data []byte) bool {
	_, err := mbn.ParseRom(data)
	return err == nil
}

// BaseName derives a segment base name from a ROM file path: the file name
// with directories and everything from the first dot stripped. Falls back
// to "rom" when nothing usable remains.
func BaseName(path string) string {
	name := strings.SplitN(filepath.Base(path), ".", 2)[0]
	if name == "" {
		return "rom"
	}
	return name
}

// Load parses data as an MBN ROM and registers every segment with sink,
// named "<name>_<region>". Multiple calls with the same sink load several
// ROMs into one address space.
func Load(name string, data []byte, sink Sink, opts ...mbn.Option) (*Result, error) {
	rom, err := mbn.ParseRom(data, opts...)
	if err != nil {
		return nil, err
	}

	for _, s := range rom.Segments {
		s.Name = name + "_" + s.Name
		if err := sink.AddSegment(s); err != nil {
			return nil, fmt.Errorf("failed to register segment %q: %w", s.Name, err)
		}
	}

	return &Result{
		Rom:        rom,
		EntryName:  name + "_start",
		EntryPoint: rom.EntryPoint(),
	}, nil
}
