// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package polynomial_test

import (
	"errors"
	"fmt"
	"testing"

	group "github.com/bytemare/crypto"

	"github.com/bytemare/shamir/polynomial"
)

var testGroups = []group.Group{
	group.Ristretto255Sha512,
	group.P256Sha256,
	group.Secp256k1,
	group.Edwards25519Sha512,
}

func testAllGroups(t *testing.T, f func(*testing.T, group.Group)) {
	for _, g := range testGroups {
		t.Run(fmt.Sprintf("%s", g), func(t *testing.T) {
			f(t, g)
		})
	}
}

func scalar(g group.Group, i uint64) *group.Scalar {
	return g.NewScalar().SetUInt64(i)
}

func scalars(g group.Group, ints ...uint64) []*group.Scalar {
	s := make([]*group.Scalar, len(ints))
	for i, v := range ints {
		s[i] = scalar(g, v)
	}

	return s
}

func denseOf(t *testing.T, g group.Group, coefficients ...uint64) polynomial.Dense {
	p, err := polynomial.NewDense(uint64(len(coefficients)-1), scalars(g, coefficients...))
	if err != nil {
		t.Fatal(err)
	}

	return p
}

func TestDense_Evaluate(t *testing.T) {
	testAllGroups(t, func(t *testing.T, g group.Group) {
		// f(x) = 1 + 2x + 3x^2, f(2) = 17
		p := denseOf(t, g, 1, 2, 3)

		if p.Evaluate(g, scalar(g, 2)).Equal(scalar(g, 17)) != 1 {
			t.Fatal("expected 17")
		}

		// f(0) must be exactly the constant term
		if p.Evaluate(g, g.NewScalar().Zero()).Equal(scalar(g, 1)) != 1 {
			t.Fatal("expected the constant term at x = 0")
		}
	})
}

func TestDense_EvaluateAtRoot(t *testing.T) {
	testAllGroups(t, func(t *testing.T, g group.Group) {
		// f(x) = x^2 - 4 = (x-2)(x+2), so f(2) = 0
		four := scalar(g, 4)
		p, err := polynomial.NewDense(2, []*group.Scalar{
			g.NewScalar().Zero().Subtract(four),
			g.NewScalar().Zero(),
			g.NewScalar().One(),
		})
		if err != nil {
			t.Fatal(err)
		}

		if !p.Evaluate(g, scalar(g, 2)).IsZero() {
			t.Fatal("expected zero at a root")
		}
	})
}

func TestDense_Add(t *testing.T) {
	testAllGroups(t, func(t *testing.T, g group.Group) {
		p := denseOf(t, g, 1, 2, 3)
		q := denseOf(t, g, 3, 4, 0, 0, 5)
		expected := denseOf(t, g, 4, 6, 3, 0, 5)

		if !p.Add(q).Equal(expected) {
			t.Fatal("unexpected sum")
		}

		if !q.Add(p).Equal(expected) {
			t.Fatal("addition must commute")
		}
	})
}

func TestDense_Multiply(t *testing.T) {
	testAllGroups(t, func(t *testing.T, g group.Group) {
		// (5 + 2x^2)(6 + 2x) = 30 + 10x + 12x^2 + 4x^3
		p := denseOf(t, g, 5, 0, 2)
		q := denseOf(t, g, 6, 2)
		expected := denseOf(t, g, 30, 10, 12, 4)

		product := p.Multiply(g, q)

		if len(product) != len(p)+len(q)-1 {
			t.Fatalf("unexpected product length %d", len(product))
		}

		if !product.Equal(expected) {
			t.Fatal("unexpected product")
		}
	})
}

func TestDense_SumProduct(t *testing.T) {
	testAllGroups(t, func(t *testing.T, g group.Group) {
		p := denseOf(t, g, 1, 1)
		q := denseOf(t, g, 2, 0, 1)

		if !polynomial.Sum(g, p, q).Equal(denseOf(t, g, 3, 1, 1)) {
			t.Fatal("unexpected sum")
		}

		// (1 + x)(2 + x^2) = 2 + 2x + x^2 + x^3
		if !polynomial.Product(g, p, q).Equal(denseOf(t, g, 2, 2, 1, 1)) {
			t.Fatal("unexpected product")
		}
	})
}

func TestNewDense_DegreeMismatch(t *testing.T) {
	testAllGroups(t, func(t *testing.T, g group.Group) {
		coefficients := scalars(g, 1, 2, 3)

		for _, degree := range []uint64{1, 3} {
			if _, err := polynomial.NewDense(degree, coefficients); !errors.Is(err, polynomial.ErrDegreeMismatch) {
				t.Fatalf("expected %q, got %v", polynomial.ErrDegreeMismatch, err)
			}
		}

		if _, err := polynomial.NewDense(2, coefficients); err != nil {
			t.Fatal(err)
		}
	})
}

func TestNewRandomDense(t *testing.T) {
	testAllGroups(t, func(t *testing.T, g group.Group) {
		secret := scalar(g, 1234)
		password := scalar(g, 5678)

		p, err := polynomial.NewRandomDense(g, 4,
			polynomial.Term{Exponent: 0, Coefficient: secret},
			polynomial.Term{Exponent: 1, Coefficient: password},
		)
		if err != nil {
			t.Fatal(err)
		}

		if p.Degree() != 4 || len(p) != 5 {
			t.Fatalf("unexpected degree %d", p.Degree())
		}

		if p.Constant(g).Equal(secret) != 1 {
			t.Fatal("constant term not set to the fixed coefficient")
		}

		if p.Coefficient(g, 1).Equal(password) != 1 {
			t.Fatal("linear term not set to the fixed coefficient")
		}
	})
}

func TestNewRandomDense_FixedOutOfRange(t *testing.T) {
	testAllGroups(t, func(t *testing.T, g group.Group) {
		one := g.NewScalar().One()

		if _, err := polynomial.NewRandomDense(g, 2,
			polynomial.Term{Exponent: 3, Coefficient: one},
		); !errors.Is(err, polynomial.ErrDegreeMismatch) {
			t.Fatalf("expected %q, got %v", polynomial.ErrDegreeMismatch, err)
		}

		if _, err := polynomial.NewRandomDense(g, 2,
			polynomial.Term{Exponent: 0, Coefficient: one},
			polynomial.Term{Exponent: 0, Coefficient: one},
		); !errors.Is(err, polynomial.ErrDegreeMismatch) {
			t.Fatalf("expected %q, got %v", polynomial.ErrDegreeMismatch, err)
		}
	})
}

func TestNewRandomDense_FreshCoefficients(t *testing.T) {
	testAllGroups(t, func(t *testing.T, g group.Group) {
		secret := scalar(g, 42)
		fixed := polynomial.Term{Exponent: 0, Coefficient: secret}

		p1, err := polynomial.NewRandomDense(g, 3, fixed)
		if err != nil {
			t.Fatal(err)
		}

		p2, err := polynomial.NewRandomDense(g, 3, fixed)
		if err != nil {
			t.Fatal(err)
		}

		if p1.Equal(p2) {
			t.Fatal("two random polynomials with the same fixed term must not share random coefficients")
		}
	})
}

func TestDense_CoefficientBeyondLength(t *testing.T) {
	testAllGroups(t, func(t *testing.T, g group.Group) {
		p := denseOf(t, g, 1, 2)

		if !p.Coefficient(g, 5).IsZero() {
			t.Fatal("coefficients beyond the vector must be zero")
		}
	})
}
