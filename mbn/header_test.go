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
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// headerBytes serializes a header the way it appears on disk.
func headerBytes(h Header) []byte {
	b := make([]byte, HeaderSize)
	le := binary.LittleEndian
	le.PutUint32(b[0x00:], h.LoadIndex)
	le.PutUint32(b[0x04:], h.FlashPartitionVersion)
	le.PutUint32(b[0x08:], h.ImageOffset)
	le.PutUint32(b[0x0C:], h.ImageVirtualAddress)
	le.PutUint32(b[0x10:], h.ImageSize)
	le.PutUint32(b[0x14:], h.CodeSize)
	le.PutUint32(b[0x18:], h.SignatureVirtualAddress)
	le.PutUint32(b[0x1C:], h.SignatureSize)
	le.PutUint32(b[0x20:], h.CertChainVirtualAddress)
	le.PutUint32(b[0x24:], h.CertChainSize)
	return b
}

func TestParseHeader(t *testing.T) {
	// Distinct field values so any field-order mixup shows up in the diff.
	full := Header{
		LoadIndex:               0x01010101,
		FlashPartitionVersion:   0x02020202,
		ImageOffset:             0x03030303,
		ImageVirtualAddress:     0x04040404,
		ImageSize:               0x05050505,
		CodeSize:                0x06060606,
		SignatureVirtualAddress: 0x07070707,
		SignatureSize:           0x08080808,
		CertChainVirtualAddress: 0x09090909,
		CertChainSize:           0x0A0A0A0A,
	}

	for _, test := range []struct {
		desc    string
		data    []byte
		want    Header
		wantErr bool
	}{
		{
			desc: "all fields decode in order",
			data: headerBytes(full),
			want: full,
		}, {
			desc: "exactly header sized",
			data: headerBytes(Header{ImageSize: 0x100}),
			want: Header{ImageSize: 0x100},
		}, {
			desc: "trailing bytes ignored",
			data: append(headerBytes(full), 0xDE, 0xAD),
			want: full,
		}, {
			desc:    "one byte short",
			data:    headerBytes(full)[:HeaderSize-1],
			wantErr: true,
		}, {
			desc:    "empty input",
			data:    nil,
			wantErr: true,
		},
	} {
		t.Run(test.desc, func(t *testing.T) {
			got, gotErr := ParseHeader(test.data)
			if (gotErr != nil) != test.wantErr {
				t.Fatalf("ParseHeader = %v, wantErr %v", gotErr, test.wantErr)
			}
			if gotErr != nil {
				var e *TruncatedHeaderError
				if !errors.As(gotErr, &e) {
					t.Fatalf("ParseHeader error = %T (%v), want TruncatedHeaderError", gotErr, gotErr)
				}
				return
			}
			if diff := cmp.Diff(test.want, got); len(diff) != 0 {
				t.Fatalf("Parsed header with diff %s", diff)
			}
		})
	}
}

func TestParseHeaderLittleEndian(t *testing.T) {
	data := make([]byte, HeaderSize)
	copy(data[0x10:], []byte{0x78, 0x56, 0x34, 0x12})

	h, err := ParseHeader(data)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if got, want := h.ImageSize, uint32(0x12345678); got != want {
		t.Fatalf("ImageSize = 0x%X, want 0x%X", got, want)
	}
}
