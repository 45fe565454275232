// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package polynomial

import (
	group "github.com/bytemare/crypto"
)

// verifyDistinctX returns ErrDuplicateXCoordinate if two points share an x-coordinate. This is the
// condition that would make a Lagrange denominator zero, and is surfaced before any inversion.
func verifyDistinctX(points []Point) error {
	if len(points) == 0 {
		return errNoPoints
	}

	visited := make(map[string]bool, len(points))

	for _, pt := range points {
		if pt.X == nil || pt.Y == nil {
			return errNilCoefficient
		}

		enc := string(pt.X.Encode())
		if visited[enc] {
			return ErrDuplicateXCoordinate
		}

		visited[enc] = true
	}

	return nil
}

// lagrangeBasis returns the basis polynomial for x over the interpolating set xs: the product of the
// monomials (X - xj) for all xj != x, scaled by the inverse of its own evaluation at x.
func lagrangeBasis(g group.Group, x *group.Scalar, xs []*group.Scalar) (Dense, error) {
	numerator := Dense{g.NewScalar().One()}

	for _, xj := range xs {
		if xj.Equal(x) == 1 {
			continue
		}

		monomial := Dense{g.NewScalar().Zero().Subtract(xj), g.NewScalar().One()}
		numerator = numerator.Multiply(g, monomial)
	}

	denominator := numerator.Evaluate(g, x)
	if denominator.IsZero() {
		return nil, ErrSingularInterpolation
	}

	return numerator.ScalarMultiply(denominator.Invert()), nil
}

// Interpolate returns the unique polynomial of degree at most len(points) - 1 passing through all
// given points, as the sum of the scaled Lagrange basis polynomials.
func Interpolate(g group.Group, points []Point) (Dense, error) {
	if err := verifyDistinctX(points); err != nil {
		return nil, err
	}

	xs := make([]*group.Scalar, len(points))
	for i, pt := range points {
		xs[i] = pt.X
	}

	sum := make(Dense, len(points))
	for i := range sum {
		sum[i] = g.NewScalar().Zero()
	}

	for _, pt := range points {
		basis, err := lagrangeBasis(g, pt.X, xs)
		if err != nil {
			return nil, err
		}

		sum = sum.Add(basis.ScalarMultiply(pt.Y))
	}

	return sum, nil
}

// InterpolateSparse is Interpolate with the basis products computed in the sparse representation.
// Its result agrees with Interpolate coefficient-wise for the same point set.
func InterpolateSparse(g group.Group, points []Point) (Sparse, error) {
	if err := verifyDistinctX(points); err != nil {
		return nil, err
	}

	sum := Sparse{}

	for _, pt := range points {
		numerator := Sparse{{Exponent: 0, Coefficient: g.NewScalar().One()}}

		for _, other := range points {
			if other.X.Equal(pt.X) == 1 {
				continue
			}

			monomial := Sparse{
				{Exponent: 0, Coefficient: g.NewScalar().Zero().Subtract(other.X)},
				{Exponent: 1, Coefficient: g.NewScalar().One()},
			}
			numerator = numerator.Multiply(monomial)
		}

		denominator := numerator.Evaluate(g, pt.X)
		if denominator.IsZero() {
			return nil, ErrSingularInterpolation
		}

		sum = sum.Add(numerator.ScalarMultiply(denominator.Invert().Multiply(pt.Y)))
	}

	return sum, nil
}

// deriveInterpolatingValue returns the Lagrange coefficient for x at zero over the x-coordinates xs.
func deriveInterpolatingValue(g group.Group, x *group.Scalar, xs []*group.Scalar) (*group.Scalar, error) {
	numerator := g.NewScalar().One()
	denominator := g.NewScalar().One()

	for _, xj := range xs {
		if xj.Equal(x) == 1 {
			continue
		}

		numerator.Multiply(xj)
		denominator.Multiply(xj.Copy().Subtract(x))
	}

	if denominator.IsZero() {
		return nil, ErrSingularInterpolation
	}

	return numerator.Multiply(denominator.Invert()), nil
}

// InterpolateConstant recovers the constant term of the interpolating polynomial defined by the given
// points, without constructing the polynomial itself.
func InterpolateConstant(g group.Group, points []Point) (*group.Scalar, error) {
	if err := verifyDistinctX(points); err != nil {
		return nil, err
	}

	xs := make([]*group.Scalar, len(points))
	for i, pt := range points {
		xs[i] = pt.X
	}

	constant := g.NewScalar().Zero()

	for _, pt := range points {
		iv, err := deriveInterpolatingValue(g, pt.X, xs)
		if err != nil {
			return nil, err
		}

		constant.Add(pt.Y.Copy().Multiply(iv))
	}

	return constant, nil
}
