// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package shamir implements Shamir (t, n) threshold secret sharing over prime-order groups, with an
// optional password-bound variant. A secret scalar is encoded as the constant term of a random
// polynomial of degree t-1, and shares are evaluations of that polynomial at the non-zero points
// 1, ..., n. Any t shares recover the secret by Lagrange interpolation; fewer than t shares carry no
// information about it.
package shamir

import (
	"errors"

	group "github.com/bytemare/crypto"

	"github.com/bytemare/shamir/internal"
	"github.com/bytemare/shamir/polynomial"
)

var (
	// ErrInvalidThreshold indicates that the threshold is zero or exceeds the number of shares.
	ErrInvalidThreshold = errors.New("threshold must be at least 1 and at most the number of shares")

	// ErrInsufficientDegree indicates that the threshold leaves no coefficient to bind the password to.
	ErrInsufficientDegree = errors.New("threshold must be at least 2 to bind a password")

	// ErrPasswordMismatch indicates that the reconstructed polynomial does not carry the supplied password.
	ErrPasswordMismatch = errors.New("reconstructed password coefficient does not match the supplied password")

	errNoShares     = errors.New("no shares provided")
	errNilSecret    = errors.New("no secret provided")
	errShareIDZero  = errors.New("share identifier is nil or zero")
	errSecretNotSet = errors.New("provided polynomial's constant coefficient not set to the secret")
	errNilPassword  = errors.New("no password provided")
)

// Share is a single share of a shared secret: the evaluation of the sharing polynomial at the
// non-zero point ID.
type Share struct {
	ID     *group.Scalar
	Secret *group.Scalar
}

// ShareSet is the ordered set of shares produced by one sharing instance. Any subset of at least
// threshold shares is a valid input to CombineShares.
type ShareSet []*Share

// Points returns the shares as (x, y) interpolation points.
func (s ShareSet) Points() []polynomial.Point {
	points := make([]polynomial.Point, len(s))
	for i, share := range s {
		points[i] = polynomial.Point{X: share.ID, Y: share.Secret}
	}

	return points
}

// verify returns an error if the set is empty, a share identifier is nil or zero (evaluating at zero
// would expose the secret directly), or two shares carry the same identifier.
func (s ShareSet) verify() error {
	if len(s) == 0 {
		return errNoShares
	}

	visited := make(map[string]bool, len(s))

	for _, share := range s {
		if share == nil || share.ID == nil || share.ID.IsZero() {
			return errShareIDZero
		}

		enc := string(share.ID.Encode())
		if visited[enc] {
			return polynomial.ErrDuplicateXCoordinate
		}

		visited[enc] = true
	}

	return nil
}

// Shard splits secret into max shares, any threshold of which recover it. The sharing polynomial is
// of degree exactly threshold-1, with the secret as constant term and all other coefficients drawn
// independently and uniformly at random, so every call produces an unrelated share set.
func Shard(g group.Group, secret *group.Scalar, threshold, max uint64) (ShareSet, error) {
	if secret == nil {
		return nil, errNilSecret
	}

	if threshold < 1 || threshold > max {
		return nil, ErrInvalidThreshold
	}

	p, err := polynomial.NewRandomDense(g, threshold-1,
		polynomial.Term{Exponent: 0, Coefficient: secret})
	if err != nil {
		return nil, err
	}

	return evaluateShares(g, p, max), nil
}

// ShardWithPolynomial is Shard with the full coefficient vector supplied by the caller, for
// deterministic sharing. The vector must have exactly threshold coefficients
// (polynomial.ErrDegreeMismatch otherwise) and its constant coefficient must be the secret.
func ShardWithPolynomial(
	g group.Group,
	secret *group.Scalar,
	threshold, max uint64,
	coefficients []*group.Scalar,
) (ShareSet, error) {
	if secret == nil {
		return nil, errNilSecret
	}

	if threshold < 1 || threshold > max {
		return nil, ErrInvalidThreshold
	}

	p, err := polynomial.NewDense(threshold-1, coefficients)
	if err != nil {
		return nil, err
	}

	if p.Constant(g).Equal(secret) != 1 {
		return nil, errSecretNotSet
	}

	return evaluateShares(g, p, max), nil
}

// evaluateShares evaluates the polynomial for each point x=1,...,max.
func evaluateShares(g group.Group, p polynomial.Dense, max uint64) ShareSet {
	shares := make(ShareSet, max)

	for i := uint64(1); i <= max; i++ {
		x := internal.IntegerToScalar(g, i)
		shares[i-1] = &Share{ID: x, Secret: p.Evaluate(g, x)}
	}

	return shares
}

// CombineShares recovers the secret as the constant term of the polynomial interpolating the given
// shares. At least threshold shares must be supplied: the count is not checked here, and
// interpolating fewer points silently yields an unrelated value.
func CombineShares(g group.Group, shares ShareSet) (*group.Scalar, error) {
	if err := shares.verify(); err != nil {
		return nil, err
	}

	return polynomial.InterpolateConstant(g, shares.Points())
}
