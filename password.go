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

	"github.com/bytemare/shamir/polynomial"
)

// ShardWithPassword splits secret into max shares like Shard, but additionally binds password into
// the sharing polynomial: the linear coefficient is fixed to the password instead of being random,
// leaving threshold-2 random coefficients. The threshold must be at least 2, so that the secret and
// the password occupy distinct coefficients.
func ShardWithPassword(g group.Group, secret, password *group.Scalar, threshold, max uint64) (ShareSet, error) {
	if secret == nil {
		return nil, errNilSecret
	}

	if password == nil {
		return nil, errNilPassword
	}

	if threshold < 1 || threshold > max {
		return nil, ErrInvalidThreshold
	}

	if threshold < 2 {
		return nil, ErrInsufficientDegree
	}

	p, err := polynomial.NewRandomDense(g, threshold-1,
		polynomial.Term{Exponent: 0, Coefficient: secret},
		polynomial.Term{Exponent: 1, Coefficient: password})
	if err != nil {
		return nil, err
	}

	return evaluateShares(g, p, max), nil
}

// CombineSharesWithPassword recovers the secret from shares produced by ShardWithPassword. It
// interpolates the full polynomial and returns ErrPasswordMismatch if its linear coefficient is not
// the supplied password, before releasing the constant term.
//
// The password check authenticates the reconstruction, it is not a confidentiality mechanism on its
// own: a holder of threshold shares can interpolate the constant term directly, bypassing this
// function. Treat it as a consistency gate.
func CombineSharesWithPassword(g group.Group, shares ShareSet, password *group.Scalar) (*group.Scalar, error) {
	if password == nil {
		return nil, errNilPassword
	}

	if err := shares.verify(); err != nil {
		return nil, err
	}

	p, err := polynomial.Interpolate(g, shares.Points())
	if err != nil {
		return nil, err
	}

	if p.Coefficient(g, 1).Equal(password) != 1 {
		return nil, ErrPasswordMismatch
	}

	return p.Constant(g), nil
}
