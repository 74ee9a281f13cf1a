/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

// Package numlist provides the radix codec between big integers and
// digit sequences.
package numlist

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/capitalone/numlist/digits"
)

// ErrNegative is returned when a negative or nil value is encoded.
var ErrNegative = errors.New("value must be a non-negative integer")

// Encode builds a new sequence holding x in the given radix, most
// significant digit at the head. Zero encodes as the single digit 0.
func Encode(x *big.Int, radix int) (*digits.Sequence, error) {
	s, err := digits.New(radix)
	if err != nil {
		return nil, err
	}
	if x == nil || x.Sign() < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegative, x)
	}
	if x.Sign() == 0 {
		return s, s.Append(0)
	}

	var big_radix, mod, v big.Int
	v.Set(x)
	big_radix.SetInt64(int64(radix))
	// remainders arrive least significant first; linking each at the head
	// leaves the sequence in positional order
	for v.Sign() != 0 {
		v.DivMod(&v, &big_radix, &mod)
		if err := s.Insert(0, int(mod.Int64())); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Decode evaluates s in its own radix. An empty or nil sequence is zero.
func Decode(s *digits.Sequence) *big.Int {
	x := new(big.Int)
	if s.IsEmpty() {
		return x
	}
	var big_radix, bv big.Int
	big_radix.SetInt64(int64(s.Radix()))
	for _, d := range s.All() {
		bv.SetInt64(int64(d))
		x.Mul(x, &big_radix)
		x.Add(x, &bv)
	}
	return x
}

// DecodeDigits evaluates any ordered digit collection in the given radix.
// Each digit is checked against the radix, unlike Decode which relies on
// the sequence's own invariant.
func DecodeDigits(o digits.Ordered, radix int) (*big.Int, error) {
	if err := digits.CheckRadix(radix); err != nil {
		return nil, err
	}
	x := new(big.Int)
	if o == nil {
		return x, nil
	}

	var big_radix, bv big.Int
	maxv := radix - 1
	big_radix.SetInt64(int64(radix))
	for i, v := range o.Values() {
		if v < 0 || v > maxv {
			return nil, fmt.Errorf("%w: value at %d: got %d - expected 0..%d", digits.ErrRange, i, v, maxv)
		}
		bv.SetInt64(int64(v))
		x.Mul(x, &big_radix)
		x.Add(x, &bv)
	}
	return x, nil
}
