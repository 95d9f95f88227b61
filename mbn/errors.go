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

package mbn

import (
	"fmt"
)

// TruncatedHeaderError indicates that the input is too short to contain an
// SBL header.
type TruncatedHeaderError struct {
	// Length is the input length in bytes.
	Length int
}

func (e *TruncatedHeaderError) Error() string {
	return fmt.Sprintf("truncated header: input is %d bytes, header needs %d", e.Length, HeaderSize)
}

// TruncatedImageError indicates that the header places the start of the
// image payload beyond the end of the input.
type TruncatedImageError struct {
	// ImageStart is the computed file offset of the image payload.
	ImageStart int64
	// FileSize is the input length in bytes.
	FileSize int
}

func (e *TruncatedImageError) Error() string {
	return fmt.Sprintf("truncated image: payload starts at offset 0x%X but input is only %d bytes", e.ImageStart, e.FileSize)
}

// EmptyImageError indicates that the image payload has zero length, either
// because the header declares a zero size or because no payload bytes are
// present after the declared offset.
type EmptyImageError struct {
	// ImageSize is the payload size declared by the header.
	ImageSize uint32
}

func (e *EmptyImageError) Error() string {
	return fmt.Sprintf("empty image: declared size 0x%X yields no payload bytes", e.ImageSize)
}

// MalformedLayoutError indicates that the code, signature and certificate
// chain sizes sum to more than the available image payload, leaving a
// negative tail.
type MalformedLayoutError struct {
	CodeSize      uint32
	SignatureSize uint32
	CertChainSize uint32
	// ImageLength is the actual payload length in bytes.
	ImageLength int
}

func (e *MalformedLayoutError) Error() string {
	return fmt.Sprintf("malformed layout: code (0x%X) + signature (0x%X) + cert chain (0x%X) exceed image payload (0x%X bytes)",
		e.CodeSize, e.SignatureSize, e.CertChainSize, e.ImageLength)
}
