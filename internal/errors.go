// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import "errors"

// ErrInvalidCiphersuite indicates a non-supported ciphersuite is being used.
var ErrInvalidCiphersuite = errors.New("ciphersuite not available")
