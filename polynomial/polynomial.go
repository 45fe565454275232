// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package polynomial implements univariate polynomials over prime-order groups, in a dense and a sparse
// representation, with evaluation, arithmetic, and Lagrange interpolation.
package polynomial

import (
	"errors"

	group "github.com/bytemare/crypto"
)

var (
	// ErrDegreeMismatch indicates that the number of coefficients does not correspond to the announced degree.
	ErrDegreeMismatch = errors.New("number of coefficients does not match the polynomial degree")

	// ErrDuplicateXCoordinate indicates that two interpolation points share the same x-coordinate.
	ErrDuplicateXCoordinate = errors.New("duplicate x-coordinate in interpolation input")

	// ErrSingularInterpolation indicates a zero denominator during Lagrange interpolation.
	ErrSingularInterpolation = errors.New("zero denominator during interpolation")

	errNilCoefficient = errors.New("the polynomial has a nil coefficient")
	errNoPoints       = errors.New("no interpolation points provided")
)

// Term is a single (exponent, coefficient) pair of a polynomial.
type Term struct {
	Coefficient *group.Scalar
	Exponent    uint64
}

// Point is an (x, f(x)) evaluation of a polynomial.
type Point struct {
	X *group.Scalar
	Y *group.Scalar
}
