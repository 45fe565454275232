// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package shamir_test

import (
	"errors"
	"testing"

	"github.com/bytemare/shamir"
	"github.com/bytemare/shamir/internal"
)

func TestShardWithPassword_RoundTrip(t *testing.T) {
	testAll(t, func(t *testing.T, test *tableTest) {
		g := test.Group()
		secret := g.NewScalar().Random()
		password := test.HashToScalar([]byte("hunter2"))

		shares, err := shamir.ShardWithPassword(g, secret, password, test.threshold, test.max)
		if err != nil {
			t.Fatal(err)
		}

		for _, sub := range thresholdSubsets(shares, test.threshold) {
			recovered, err := shamir.CombineSharesWithPassword(g, sub, password)
			if err != nil {
				t.Fatal(err)
			}

			if recovered.Equal(secret) != 1 {
				t.Fatal("recovered secret differs from the original")
			}
		}
	})
}

func TestCombineSharesWithPassword_WrongPassword(t *testing.T) {
	testAll(t, func(t *testing.T, test *tableTest) {
		g := test.Group()
		secret := g.NewScalar().Random()
		password := test.HashToScalar([]byte("hunter2"))
		wrong := test.HashToScalar([]byte("hunter3"))

		shares, err := shamir.ShardWithPassword(g, secret, password, test.threshold, test.max)
		if err != nil {
			t.Fatal(err)
		}

		_, err = shamir.CombineSharesWithPassword(g, shares[:test.threshold], wrong)
		if !errors.Is(err, shamir.ErrPasswordMismatch) {
			t.Fatalf("expected %q, got %v", shamir.ErrPasswordMismatch, err)
		}
	})
}

func TestShardWithPassword_InsufficientDegree(t *testing.T) {
	testAll(t, func(t *testing.T, test *tableTest) {
		g := test.Group()
		secret := g.NewScalar().Random()
		password := g.NewScalar().Random()

		if _, err := shamir.ShardWithPassword(g, secret, password, 1, test.max); !errors.Is(err, shamir.ErrInsufficientDegree) {
			t.Fatalf("expected %q, got %v", shamir.ErrInsufficientDegree, err)
		}

		if _, err := shamir.ShardWithPassword(g, secret, password, 0, test.max); !errors.Is(err, shamir.ErrInvalidThreshold) {
			t.Fatalf("expected %q, got %v", shamir.ErrInvalidThreshold, err)
		}
	})
}

func TestShardWithPassword_MinimalThreshold(t *testing.T) {
	// with t = 2 the polynomial is fully determined by the secret and the password
	testAll(t, func(t *testing.T, test *tableTest) {
		g := test.Group()
		secret := g.NewScalar().Random()
		password := g.NewScalar().Random()

		shares, err := shamir.ShardWithPassword(g, secret, password, 2, test.max)
		if err != nil {
			t.Fatal(err)
		}

		recovered, err := shamir.CombineSharesWithPassword(g, shares[:2], password)
		if err != nil {
			t.Fatal(err)
		}

		if recovered.Equal(secret) != 1 {
			t.Fatal("recovered secret differs from the original")
		}
	})
}

func TestHashToScalar(t *testing.T) {
	testAll(t, func(t *testing.T, test *tableTest) {
		s1 := test.HashToScalar([]byte("correct horse battery staple"))
		s2 := test.HashToScalar([]byte("correct horse battery staple"))
		s3 := test.HashToScalar([]byte("correct horse battery staples"))

		if s1 == nil || s1.IsZero() {
			t.Fatal("unexpected zero scalar")
		}

		if s1.Equal(s2) != 1 {
			t.Fatal("hashing is not deterministic")
		}

		if s1.Equal(s3) == 1 {
			t.Fatal("distinct inputs mapped to the same scalar")
		}

		if test.HashToScalar(internal.RandomBytes(32)).Equal(test.HashToScalar(internal.RandomBytes(32))) == 1 {
			t.Fatal("distinct random inputs mapped to the same scalar")
		}
	})
}

func TestCiphersuite_Available(t *testing.T) {
	for _, test := range testTable {
		if !test.Available() {
			t.Fatalf("expected ciphersuite %v to be available", test.Ciphersuite)
		}
	}

	bad := shamir.Ciphersuite(0)
	if bad.Available() {
		t.Fatal("expected ciphersuite 0 to be unavailable")
	}

	if bad.Group() != 0 {
		t.Fatal("expected no group for an unavailable ciphersuite")
	}

	if bad.HashToScalar([]byte("input")) != nil {
		t.Fatal("expected nil scalar for an unavailable ciphersuite")
	}
}
