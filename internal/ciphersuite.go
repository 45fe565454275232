// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"crypto"
	"math/big"

	"filippo.io/edwards25519"
	group "github.com/bytemare/crypto"
	"github.com/bytemare/hash"
	"github.com/bytemare/hash2curve"
	"github.com/gtank/ristretto255"
)

// Ciphersuite combines the group and hashing routines.
type Ciphersuite struct {
	ContextString []byte
	Hash          hash.Hash
	Group         group.Group
}

// Ed25519ScalarFrom64Bytes reduces the input modulo the Ed25119 prime order, and returns a corresponding scalar.
func Ed25519ScalarFrom64Bytes(g group.Group, input []byte) *group.Scalar {
	var s *edwards25519.Scalar
	var err error

	if len(input) < 64 {
		wide := make([]byte, 64)
		copy(wide, input)
		input = wide
	}

	s, err = edwards25519.NewScalar().SetUniformBytes(input)
	if err != nil {
		panic(err)
	}

	scalar := g.NewScalar()
	if err := scalar.Decode(s.Bytes()); err != nil {
		panic(err)
	}

	return scalar
}

// HashToScalar maps the input bytes to a uniformly distributed scalar of the suite's group, under the
// given domain separation tag.
func (c Ciphersuite) HashToScalar(input, dst []byte) *group.Scalar {
	var sc []byte

	switch c.Group {
	case group.Edwards25519Sha512:
		h := c.Hash.Hash(c.ContextString, dst, input)

		return Ed25519ScalarFrom64Bytes(group.Edwards25519Sha512, h)
	case group.Ristretto255Sha512:
		h := c.Hash.Hash(c.ContextString, dst, input)
		sc = ristretto255.NewScalar().FromUniformBytes(h).Encode(nil)
	case group.P256Sha256, group.Secp256k1: // NIST-style curves
		order, ok := new(big.Int).SetString(c.Group.Order(), 10)
		if !ok {
			panic(nil)
		}

		sc = hash2curve.HashToFieldXMD(crypto.Hash(c.Hash),
			input,
			Concatenate(c.ContextString, dst),
			1,
			1,
			48, order)[0].Bytes()

	default:
		panic(ErrInvalidCiphersuite)
	}

	s := c.Group.NewScalar()
	if err := s.Decode(sc); err != nil {
		panic(err)
	}

	return s
}
