// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal provides values, structures, and functions used by the sharing schemes that are not
// part of the public API.
package internal

import (
	cryptorand "crypto/rand"
	"fmt"

	group "github.com/bytemare/crypto"
)

// Concatenate returns the concatenation of all bytes composing the input elements.
func Concatenate(input ...[]byte) []byte {
	if len(input) == 0 {
		return []byte{}
	}

	if len(input) == 1 {
		if len(input[0]) == 0 {
			return nil
		}

		// shallow clone
		return append(input[0][:0:0], input[0]...)
	}

	length := 0
	for _, in := range input {
		length += len(in)
	}

	buf := make([]byte, 0, length)

	for _, in := range input {
		buf = append(buf, in...)
	}

	return buf
}

// RandomBytes returns length random bytes (wrapper for crypto/rand).
func RandomBytes(length int) []byte {
	r := make([]byte, length)
	if _, err := cryptorand.Read(r); err != nil {
		// We can as well not panic and try again in a loop and a counter to stop.
		panic(fmt.Errorf("unexpected error in generating random bytes : %w", err))
	}

	return r
}

// IntegerToScalar returns a scalar set to the integer i.
func IntegerToScalar(g group.Group, i uint64) *group.Scalar {
	return g.NewScalar().SetUInt64(i)
}
