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

// Package mbn parses MBN ROM firmware images into address-tagged memory
// segments.
//
// An MBN ROM starts with a fixed 40-byte SBL header followed by the image
// payload. The payload packs a code region, an optional signature, an
// optional certificate chain and an optional tail; any file bytes beyond the
// declared payload form an overlay. The header layout is taken from
// Ralekdev's description at
// http://forum.xda-developers.com/showpost.php?p=29925760
package mbn

import (
	"encoding/binary"
)

// HeaderSize is the size in bytes of the SBL header at the start of every
// MBN ROM.
const HeaderSize = 0x28

// Header is the fixed-layout SBL header. All fields are little-endian
// 32-bit values stored in declaration order at the start of the file.
// No validation is performed on any of the values; structural consistency
// is checked by ParseRom.
type Header struct {
	// Offset 0x00. Opaque ordering index.
	LoadIndex uint32
	// Offset 0x04. Opaque version tag.
	FlashPartitionVersion uint32
	// Offset 0x08. Byte offset of the image payload, relative to the end
	// of the header.
	ImageOffset uint32
	// Offset 0x0C. Load address of the image payload's first byte.
	ImageVirtualAddress uint32
	// Offset 0x10. Total byte length of the image payload.
	ImageSize uint32
	// Offset 0x14. Byte length of the code region at the start of the
	// image payload.
	CodeSize uint32
	// Offset 0x18. Load address of the signature region.
	SignatureVirtualAddress uint32
	// Offset 0x1C. Byte length of the signature region.
	SignatureSize uint32
	// Offset 0x20. Load address of the certificate chain region.
	CertChainVirtualAddress uint32
	// Offset 0x24. Byte length of the certificate chain region.
	CertChainSize uint32
}

// ParseHeader decodes the SBL header from the first HeaderSize bytes of
// data. It fails with TruncatedHeaderError if data is too short to contain
// a full header.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, &TruncatedHeaderError{Length: len(data)}
	}
	le := binary.LittleEndian
	return Header{
		LoadIndex:               le.Uint32(data[0x00:]),
		FlashPartitionVersion:   le.Uint32(data[0x04:]),
		ImageOffset:             le.Uint32(data[0x08:]),
		ImageVirtualAddress:     le.Uint32(data[0x0C:]),
		ImageSize:               le.Uint32(data[0x10:]),
		CodeSize:                le.Uint32(data[0x14:]),
		SignatureVirtualAddress: le.Uint32(data[0x18:]),
		SignatureSize:           le.Uint32(data[0x1C:]),
		CertChainVirtualAddress: le.Uint32(data[0x20:]),
		CertChainSize:           le.Uint32(data[0x24:]),
	}, nil
}
