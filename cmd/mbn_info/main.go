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

// mbn_info is a tool to print the layout of an MBN ROM file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/greencams/mbn-rom/loader"
	"github.com/greencams/mbn-rom/mbn"
)

var (
	rom          = flag.String("rom", "", "Path to the MBN ROM file")
	addressOrder = flag.Bool("address_order", false, "Unpack image sub-regions in ascending virtual address order instead of header field order")
)

func main() {
	flag.Parse()
	if err := validateFlags(); err != nil {
		glog.Exitf("Invalid flag(s):\n%s", err)
	}

	data, err := os.ReadFile(*rom)
	if err != nil {
		glog.Exitf("failed to read ROM file: %v", err)
	}

	var opts []mbn.Option
	if *addressOrder {
		opts = append(opts, mbn.WithAddressOrder())
	}

	name := loader.BaseName(*rom)
	r, err := mbn.ParseRom(data, opts...)
	if err != nil {
		glog.Exitf("Failed to parse %q: %v", *rom, err)
	}

	fmt.Print(loader.Report(name, r.Header))
	fmt.Println()
	for _, s := range r.Segments {
		fmt.Printf("%-8s 0x%08X - 0x%08X (%d bytes)\n", s.Name, s.Base, uint64(s.Base)+uint64(len(s.Data)), len(s.Data))
	}
	fmt.Printf("\n%-8s 0x%08X\n", "entry", r.EntryPoint())
}

func validateFlags() error {
	errs := make([]string, 0)
	if *rom == "" {
		errs = append(errs, "--rom can't be empty")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "\n"))
	}
	return nil
}
