// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package polynomial

import (
	"sort"

	group "github.com/bytemare/crypto"
)

// Sparse is a univariate polynomial over scalars, represented by its non-zero terms only, ordered by
// ascending exponent. Coefficients for exponents without a term are implicitly zero, and a term with a
// zero coefficient is never stored.
type Sparse []Term

// NewSparse returns the polynomial with the given terms, in any order. Terms sharing an exponent are
// summed, and terms whose coefficient is zero are dropped.
func NewSparse(terms []Term) (Sparse, error) {
	p := make(Sparse, 0, len(terms))

	for _, t := range terms {
		if t.Coefficient == nil {
			return nil, errNilCoefficient
		}

		p = append(p, Term{Exponent: t.Exponent, Coefficient: t.Coefficient.Copy()})
	}

	sort.Slice(p, func(i, j int) bool { return p[i].Exponent < p[j].Exponent })

	return p.normalize(), nil
}

// normalize merges consecutive terms sharing an exponent and drops zero coefficients. p must be sorted.
func (p Sparse) normalize() Sparse {
	out := make(Sparse, 0, len(p))

	for _, t := range p {
		if n := len(out); n != 0 && out[n-1].Exponent == t.Exponent {
			out[n-1].Coefficient.Add(t.Coefficient)
			if out[n-1].Coefficient.IsZero() {
				out = out[:n-1]
			}

			continue
		}

		if !t.Coefficient.IsZero() {
			out = append(out, t)
		}
	}

	return out
}

// Degree returns the highest exponent carrying a non-zero coefficient, and 0 for the zero polynomial.
func (p Sparse) Degree() uint64 {
	if len(p) == 0 {
		return 0
	}

	return p[len(p)-1].Exponent
}

// Evaluate evaluates the polynomial p at point x, exponentiating only for the stored terms.
func (p Sparse) Evaluate(g group.Group, x *group.Scalar) *group.Scalar {
	value := g.NewScalar().Zero()

	for _, t := range p {
		e := g.NewScalar().SetUInt64(t.Exponent)
		value.Add(t.Coefficient.Copy().Multiply(x.Copy().Pow(e)))
	}

	return value
}

// Add returns the sum of p and q, merging terms that share an exponent and dropping any term whose
// summed coefficient becomes zero.
func (p Sparse) Add(q Sparse) Sparse {
	sum := make(Sparse, 0, len(p)+len(q))
	i, j := 0, 0

	for i < len(p) && j < len(q) {
		switch {
		case p[i].Exponent == q[j].Exponent:
			c := p[i].Coefficient.Copy().Add(q[j].Coefficient)
			if !c.IsZero() {
				sum = append(sum, Term{Exponent: p[i].Exponent, Coefficient: c})
			}

			i++
			j++
		case p[i].Exponent < q[j].Exponent:
			sum = append(sum, Term{Exponent: p[i].Exponent, Coefficient: p[i].Coefficient.Copy()})
			i++
		default:
			sum = append(sum, Term{Exponent: q[j].Exponent, Coefficient: q[j].Coefficient.Copy()})
			j++
		}
	}

	for ; i < len(p); i++ {
		sum = append(sum, Term{Exponent: p[i].Exponent, Coefficient: p[i].Coefficient.Copy()})
	}

	for ; j < len(q); j++ {
		sum = append(sum, Term{Exponent: q[j].Exponent, Coefficient: q[j].Coefficient.Copy()})
	}

	return sum
}

// Multiply returns the product of p and q: the cross-product of their terms, with exponents summed,
// coefficients multiplied, and resulting duplicate exponents merged as in Add.
func (p Sparse) Multiply(q Sparse) Sparse {
	crossed := make(Sparse, 0, len(p)*len(q))

	for _, pt := range p {
		for _, qt := range q {
			crossed = append(crossed, Term{
				Exponent:    pt.Exponent + qt.Exponent,
				Coefficient: pt.Coefficient.Copy().Multiply(qt.Coefficient),
			})
		}
	}

	sort.Slice(crossed, func(i, j int) bool { return crossed[i].Exponent < crossed[j].Exponent })

	return crossed.normalize()
}

// ScalarMultiply returns the polynomial with every coefficient multiplied by s.
func (p Sparse) ScalarMultiply(s *group.Scalar) Sparse {
	product := make(Sparse, 0, len(p))

	for _, t := range p {
		c := t.Coefficient.Copy().Multiply(s)
		if !c.IsZero() {
			product = append(product, Term{Exponent: t.Exponent, Coefficient: c})
		}
	}

	return product
}

// Constant returns the constant term of the polynomial.
func (p Sparse) Constant(g group.Group) *group.Scalar {
	if len(p) != 0 && p[0].Exponent == 0 {
		return p[0].Coefficient.Copy()
	}

	return g.NewScalar().Zero()
}

// Coefficient returns the coefficient for x^exponent, zero if no term carries it.
func (p Sparse) Coefficient(g group.Group, exponent uint64) *group.Scalar {
	for _, t := range p {
		if t.Exponent == exponent {
			return t.Coefficient.Copy()
		}

		if t.Exponent > exponent {
			break
		}
	}

	return g.NewScalar().Zero()
}

// Equal returns whether p and q represent the same polynomial.
func (p Sparse) Equal(q Sparse) bool {
	if len(p) != len(q) {
		return false
	}

	for i, t := range p {
		if t.Exponent != q[i].Exponent || t.Coefficient.Equal(q[i].Coefficient) != 1 {
			return false
		}
	}

	return true
}

// Dense returns the dense coefficient-vector representation of p, of length Degree() + 1.
func (p Sparse) Dense(g group.Group) Dense {
	if len(p) == 0 {
		return Dense{g.NewScalar().Zero()}
	}

	dense := make(Dense, p.Degree()+1)
	for i := range dense {
		dense[i] = g.NewScalar().Zero()
	}

	for _, t := range p {
		dense[t.Exponent] = t.Coefficient.Copy()
	}

	return dense
}

// SparseFromDense returns the sparse representation of p, dropping zero coefficients.
func SparseFromDense(p Dense) Sparse {
	sparse := make(Sparse, 0, len(p))

	for i, c := range p {
		if !c.IsZero() {
			sparse = append(sparse, Term{Exponent: uint64(i), Coefficient: c.Copy()})
		}
	}

	return sparse
}

// SumSparse returns the sum of all given polynomials.
func SumSparse(polynomials ...Sparse) Sparse {
	sum := Sparse{}
	for _, p := range polynomials {
		sum = sum.Add(p)
	}

	return sum
}

// ProductSparse returns the product of all given polynomials.
func ProductSparse(g group.Group, polynomials ...Sparse) Sparse {
	product := Sparse{{Exponent: 0, Coefficient: g.NewScalar().One()}}
	for _, p := range polynomials {
		product = product.Multiply(p)
	}

	return product
}
