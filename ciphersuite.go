// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package shamir

import (
	group "github.com/bytemare/crypto"
	"github.com/bytemare/hash"

	"github.com/bytemare/shamir/internal"
)

// Ciphersuite identifies the group and hash to use for secret sharing.
type Ciphersuite byte

const (
	// Ed25519 uses Edwards25519 and SHA-512.
	Ed25519 = Ciphersuite(group.Edwards25519Sha512)

	// Ristretto255 uses Ristretto255 and SHA-512.
	Ristretto255 = Ciphersuite(group.Ristretto255Sha512)

	// P256 uses P-256 and SHA-256.
	P256 = Ciphersuite(group.P256Sha256)

	// Secp256k1 uses Secp256k1 and SHA-256.
	Secp256k1 = Ciphersuite(group.Secp256k1)

	ed25519ContextString      = "SHAMIR-ED25519-SHA512-v1"
	ristretto255ContextString = "SHAMIR-RISTRETTO255-SHA512-v1"
	p256ContextString         = "SHAMIR-P256-SHA256-v1"
	secp256k1ContextString    = "SHAMIR-secp256k1-SHA256-v1"

	passwordDST = "pwd"
)

// Available returns whether the selected ciphersuite is available.
func (c Ciphersuite) Available() bool {
	switch c {
	case Ed25519, Ristretto255, P256, Secp256k1:
		return true
	default:
		return false
	}
}

// Group returns the elliptic curve group used by the ciphersuite.
func (c Ciphersuite) Group() group.Group {
	if !c.Available() {
		return 0
	}

	return group.Group(c)
}

func (c Ciphersuite) configuration() internal.Ciphersuite {
	switch c {
	case Ed25519:
		return internal.Ciphersuite{
			ContextString: []byte(ed25519ContextString),
			Hash:          hash.SHA512,
			Group:         group.Edwards25519Sha512,
		}
	case Ristretto255:
		return internal.Ciphersuite{
			ContextString: []byte(ristretto255ContextString),
			Hash:          hash.SHA512,
			Group:         group.Ristretto255Sha512,
		}
	case P256:
		return internal.Ciphersuite{
			ContextString: []byte(p256ContextString),
			Hash:          hash.SHA256,
			Group:         group.P256Sha256,
		}
	case Secp256k1:
		return internal.Ciphersuite{
			ContextString: []byte(secp256k1ContextString),
			Hash:          hash.SHA256,
			Group:         group.Secp256k1,
		}
	default:
		panic(internal.ErrInvalidCiphersuite)
	}
}

// HashToScalar maps arbitrary input bytes (e.g. a passphrase) to a scalar of the ciphersuite's group,
// under the suite's password domain separation tag. The core sharing functions take scalars; this is
// the supported way to derive the password scalar from passphrase bytes.
func (c Ciphersuite) HashToScalar(input []byte) *group.Scalar {
	if !c.Available() {
		return nil
	}

	return c.configuration().HashToScalar(input, []byte(passwordDST))
}
