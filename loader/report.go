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

package loader

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/greencams/mbn-rom/mbn"
)

// Report renders the header fields as human-readable annotations, one
// key/value pair per line. The image file offset is reported as an absolute
// file position, header included.
func Report(name string, h mbn.Header) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ROM: %s\n\n", name)

	row := func(key string, v uint32) {
		fmt.Fprintf(&b, "%-24s 0x%08X\n", key+":", v)
	}
	size := func(key string, v uint32) {
		fmt.Fprintf(&b, "%-24s 0x%08X (%s)\n", key+":", v, humanize.Bytes(uint64(v)))
	}

	row("Load Index", h.LoadIndex)
	row("Flash Partition Version", h.FlashPartitionVersion)
	row("Image File Offset", h.ImageOffset+mbn.HeaderSize)
	row("Image VA", h.ImageVirtualAddress)
	size("Image Size", h.ImageSize)
	size("Code Size", h.CodeSize)
	row("Signature VA", h.SignatureVirtualAddress)
	size("Signature Size", h.SignatureSize)
	row("Cert Chain VA", h.CertChainVirtualAddress)
	size("Cert Chain Size", h.CertChainSize)

	return b.String()
}
