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

type config struct {
	addressOrder bool
}

// Option configures how a ROM is carved.
type Option func(*config)

// WithAddressOrder carves the packed image sub-regions in ascending virtual
// address order instead of the default header field order (code, signature,
// cert chain). The format does not document which order the sub-regions are
// packed in; field order holds for every ROM examined so far, and this
// option exists in case an image turns up that contradicts it.
func WithAddressOrder() Option {
	return func(c *config) {
		c.addressOrder = true
	}
}
