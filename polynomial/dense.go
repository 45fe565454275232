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

// Dense is a univariate polynomial over scalars, represented by its full coefficient vector.
// The constant term is in the first position and the highest degree coefficient is in the last position.
// Trailing zero coefficients may be present, so the degree is at most len - 1.
type Dense []*group.Scalar

// NewDense returns the polynomial with the given coefficients, announced to be of the given degree.
// It returns ErrDegreeMismatch if the number of coefficients is not degree + 1: a shorter vector would
// silently lower the effective degree, a longer one silently raise it.
func NewDense(degree uint64, coefficients []*group.Scalar) (Dense, error) {
	if uint64(len(coefficients)) != degree+1 {
		return nil, ErrDegreeMismatch
	}

	p := make(Dense, len(coefficients))

	for i, c := range coefficients {
		if c == nil {
			return nil, errNilCoefficient
		}

		p[i] = c.Copy()
	}

	return p, nil
}

// NewRandomDense returns a polynomial of the given degree with the fixed terms set to the provided
// coefficients and every remaining coefficient drawn independently and uniformly at random.
// It returns ErrDegreeMismatch if a fixed exponent exceeds the degree or appears more than once.
func NewRandomDense(g group.Group, degree uint64, fixed ...Term) (Dense, error) {
	p := make(Dense, degree+1)

	for _, t := range fixed {
		if t.Exponent > degree || p[t.Exponent] != nil {
			return nil, ErrDegreeMismatch
		}

		if t.Coefficient == nil {
			return nil, errNilCoefficient
		}

		p[t.Exponent] = t.Coefficient.Copy()
	}

	for i, c := range p {
		if c == nil {
			p[i] = g.NewScalar().Random()
		}
	}

	return p, nil
}

// Degree returns the degree bound of the polynomial, i.e. len - 1. Trailing zero coefficients
// are not stripped.
func (p Dense) Degree() uint64 {
	if len(p) == 0 {
		return 0
	}

	return uint64(len(p) - 1)
}

// Evaluate evaluates the polynomial p at point x using Horner's method.
func (p Dense) Evaluate(g group.Group, x *group.Scalar) *group.Scalar {
	value := g.NewScalar().Zero()
	for i := len(p) - 1; i >= 0; i-- {
		value.Multiply(x)
		value.Add(p[i])
	}

	return value
}

// Add returns the coefficient-wise sum of p and q. The result has the length of the longer operand.
func (p Dense) Add(q Dense) Dense {
	long, short := p, q
	if len(q) > len(p) {
		long, short = q, p
	}

	sum := make(Dense, len(long))

	for i, c := range long {
		sum[i] = c.Copy()
		if i < len(short) {
			sum[i].Add(short[i])
		}
	}

	return sum
}

// Multiply returns the product of p and q, of length len(p) + len(q) - 1.
func (p Dense) Multiply(g group.Group, q Dense) Dense {
	if len(p) == 0 || len(q) == 0 {
		return Dense{}
	}

	product := make(Dense, len(p)+len(q)-1)
	for i := range product {
		product[i] = g.NewScalar().Zero()
	}

	for i, pi := range p {
		for j, qj := range q {
			product[i+j].Add(pi.Copy().Multiply(qj))
		}
	}

	return product
}

// ScalarMultiply returns the polynomial with every coefficient multiplied by s.
func (p Dense) ScalarMultiply(s *group.Scalar) Dense {
	product := make(Dense, len(p))
	for i, c := range p {
		product[i] = c.Copy().Multiply(s)
	}

	return product
}

// Constant returns the constant term of the polynomial.
func (p Dense) Constant(g group.Group) *group.Scalar {
	if len(p) == 0 {
		return g.NewScalar().Zero()
	}

	return p[0].Copy()
}

// Coefficient returns the coefficient for x^exponent. Exponents beyond the vector are implicitly zero.
func (p Dense) Coefficient(g group.Group, exponent uint64) *group.Scalar {
	if exponent >= uint64(len(p)) {
		return g.NewScalar().Zero()
	}

	return p[exponent].Copy()
}

// Equal returns whether p and q represent the same polynomial, comparing them as coefficient
// mappings: a missing coefficient and a zero coefficient are the same thing.
func (p Dense) Equal(q Dense) bool {
	long, short := p, q
	if len(q) > len(p) {
		long, short = q, p
	}

	for i, c := range long {
		if i < len(short) {
			if c.Equal(short[i]) != 1 {
				return false
			}

			continue
		}

		if !c.IsZero() {
			return false
		}
	}

	return true
}

// Sum returns the sum of all given polynomials.
func Sum(g group.Group, polynomials ...Dense) Dense {
	sum := Dense{g.NewScalar().Zero()}
	for _, p := range polynomials {
		sum = sum.Add(p)
	}

	return sum
}

// Product returns the product of all given polynomials.
func Product(g group.Group, polynomials ...Dense) Dense {
	product := Dense{g.NewScalar().One()}
	for _, p := range polynomials {
		product = product.Multiply(g, p)
	}

	return product
}
