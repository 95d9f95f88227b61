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

// mbn_extract is a tool to carve one or more MBN ROM files into per-segment
// files. Passing several ROMs writes all of their segments into the same
// output directory, mirroring how they would share one address space.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/greencams/mbn-rom/loader"
	"github.com/greencams/mbn-rom/mbn"
)

var (
	outDir       = flag.String("out_dir", ".", "Directory to write segment files into")
	addressOrder = flag.Bool("address_order", false, "Unpack image sub-regions in ascending virtual address order instead of header field order")
)

// dirSink writes each registered segment to "<name>.bin" in a directory.
type dirSink struct {
	dir string
}

func (d *dirSink) AddSegment(s mbn.Segment) error {
	p := filepath.Join(d.dir, s.Name+".bin")
	if err := os.WriteFile(p, s.Data, 0644); err != nil {
		return err
	}
	glog.Infof("Wrote %s: %d bytes @ 0x%08X", p, len(s.Data), s.Base)
	return nil
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		glog.Exit("Usage: mbn_extract [flags] <rom file> [<rom file> ...]")
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		glog.Exitf("failed to create output directory: %v", err)
	}

	var opts []mbn.Option
	if *addressOrder {
		opts = append(opts, mbn.WithAddressOrder())
	}

	sink := &dirSink{dir: *outDir}
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			glog.Exitf("failed to read ROM file: %v", err)
		}
		if !loader.Accept(data) {
			glog.Exitf("%q is not a valid MBN ROM", path)
		}

		r, err := loader.Load(loader.BaseName(path), data, sink, opts...)
		if err != nil {
			glog.Exitf("Failed to load %q: %v", path, err)
		}
		fmt.Printf("%s: %d segment(s), entry %s @ 0x%08X\n",
			path, len(r.Rom.Segments), r.EntryName, r.EntryPoint)
	}
}
