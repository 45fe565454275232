// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package debug provides recovery and inspection tools for debugging purposes. They might be helpful
// for setups and investigations, but are not recommended to be used with production data
// (reconstructing the sharing polynomial reveals the secret and the password coefficient in one spot).
package debug

import (
	"errors"

	group "github.com/bytemare/crypto"

	"github.com/bytemare/shamir"
	"github.com/bytemare/shamir/polynomial"
)

var errInconsistentShares = errors.New("shares do not lie on a single polynomial of the claimed degree")

// RecoverPolynomial returns the full sharing polynomial interpolating the given shares. The constant
// term is the secret and, for the password variant, the linear coefficient is the password.
func RecoverPolynomial(g group.Group, shares shamir.ShareSet) (polynomial.Dense, error) {
	return polynomial.Interpolate(g, shares.Points())
}

// VerifyShareConsistency checks that every share in the set lies on the single polynomial of degree
// threshold-1 defined by the first threshold shares. A failure means the set mixes shares of
// different sharing instances, or a share was corrupted.
func VerifyShareConsistency(g group.Group, shares shamir.ShareSet, threshold uint64) error {
	if threshold < 1 || threshold > uint64(len(shares)) {
		return shamir.ErrInvalidThreshold
	}

	p, err := polynomial.Interpolate(g, shares[:threshold].Points())
	if err != nil {
		return err
	}

	for _, share := range shares[threshold:] {
		if p.Evaluate(g, share.ID).Equal(share.Secret) != 1 {
			return errInconsistentShares
		}
	}

	return nil
}
