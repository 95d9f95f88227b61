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
	"sort"
)

// Region names used for the segments carved out of a ROM.
const (
	SegCode      = "code"
	SegSignature = "sig"
	SegCertChain = "cert"
	SegTail      = "tail"
	SegOverlay   = "overlay"
)

// Segment is a named, contiguous region of the ROM together with the
// virtual address it should be loaded at. Segments are never mutated after
// creation; Data aliases the input buffer.
type Segment struct {
	Name string
	Base uint32
	Data []byte
}

// Rom is an MBN ROM broken up into its segments.
type Rom struct {
	Header Header

	// Segments holds the carved segments in carve order: the image
	// sub-regions first, then the tail, then the overlay. The code
	// segment is always present; all others appear only when non-empty.
	Segments []Segment
}

// Segment returns the named segment, if present.
func (r *Rom) Segment(name string) (Segment, bool) {
	for _, s := range r.Segments {
		if s.Name == name {
			return s, true
		}
	}
	return Segment{}, false
}

// EntryPoint returns the load address of the first code byte.
func (r *Rom) EntryPoint() uint32 {
	return r.Header.ImageVirtualAddress
}

// ParseRom parses data as a complete MBN ROM: it decodes the header and
// carves the remaining bytes into segments. The input is read only; the
// returned segments alias it.
func ParseRom(data []byte, opts ...Option) (*Rom, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	return Carve(data, h, opts...)
}

// Carve slices data into segments according to an already-parsed header.
// It fails with TruncatedImageError if the header places the payload beyond
// the end of data, EmptyImageError if the payload is empty, and
// MalformedLayoutError if the sub-region sizes exceed the payload.
func Carve(data []byte, h Header, opts ...Option) (*Rom, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	imageStart := int64(h.ImageOffset) + HeaderSize
	if imageStart > int64(len(data)) {
		return nil, &TruncatedImageError{ImageStart: imageStart, FileSize: len(data)}
	}

	imageEnd := imageStart + int64(h.ImageSize)
	if imageEnd > int64(len(data)) {
		imageEnd = int64(len(data))
	}
	image := data[imageStart:imageEnd]
	if len(image) == 0 {
		return nil, &EmptyImageError{ImageSize: h.ImageSize}
	}

	segs, err := carve(image, h, cfg.addressOrder)
	if err != nil {
		return nil, err
	}

	// Overlay: whatever the input holds past the declared payload. Absent
	// entirely when there are no trailing bytes.
	if overlay := data[imageEnd:]; len(overlay) > 0 {
		segs = append(segs, Segment{
			Name: SegOverlay,
			Base: h.ImageVirtualAddress + h.ImageSize,
			Data: overlay,
		})
	}

	return &Rom{Header: h, Segments: segs}, nil
}

// carve splits the image payload into the code, signature, cert chain and
// tail segments.
//
// XXX: This assumes the sub-regions are packed together in the payload in
// header field order (code, signature, cert chain). That matches every ROM
// seen so far but is not documented by the format. byAddress instead
// assigns the packed ranges in ascending virtual address order.
func carve(image []byte, h Header, byAddress bool) ([]Segment, error) {
	if total := int64(h.CodeSize) + int64(h.SignatureSize) + int64(h.CertChainSize); total > int64(len(image)) {
		return nil, &MalformedLayoutError{
			CodeSize:      h.CodeSize,
			SignatureSize: h.SignatureSize,
			CertChainSize: h.CertChainSize,
			ImageLength:   len(image),
		}
	}

	// The code segment is mandatory even when empty. The signature and
	// cert chain bases come straight from the header; they are
	// independently specified fields, not derived from the packing.
	regions := []Segment{
		{Name: SegCode, Base: h.ImageVirtualAddress},
	}
	if h.SignatureSize > 0 {
		regions = append(regions, Segment{Name: SegSignature, Base: h.SignatureVirtualAddress})
	}
	if h.CertChainSize > 0 {
		regions = append(regions, Segment{Name: SegCertChain, Base: h.CertChainVirtualAddress})
	}
	if byAddress {
		sort.SliceStable(regions, func(i, j int) bool {
			return regions[i].Base < regions[j].Base
		})
	}

	size := func(name string) uint32 {
		switch name {
		case SegSignature:
			return h.SignatureSize
		case SegCertChain:
			return h.CertChainSize
		default:
			return h.CodeSize
		}
	}

	off := uint32(0)
	for i := range regions {
		n := size(regions[i].Name)
		regions[i].Data = image[off : off+n]
		off += n
	}

	// Tail: payload bytes after the last packed sub-region.
	if int64(off) < int64(len(image)) {
		regions = append(regions, Segment{
			Name: SegTail,
			Base: h.ImageVirtualAddress + off,
			Data: image[off:],
		})
	}

	return regions, nil
}
