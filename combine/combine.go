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

// Package combine implements the bitwise-OR combination of two digit
// sequences and the conversions that depend on a radix profile.
package combine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/capitalone/numlist"
	"github.com/capitalone/numlist/digits"
	"github.com/capitalone/numlist/internal/logging"
	"github.com/capitalone/numlist/profile"
)

var (
	// Errors
	ErrInvalidArgument = errors.New("invalid argument")
)

// operands decodes a and b for combination. b's radix is its own when it
// reports one, otherwise a's; fallback reports which applied.
func operands(a, b digits.Ordered) (x, y *big.Int, radix int, fallback bool, err error) {
	if absent(a) {
		return nil, nil, 0, false, fmt.Errorf("%w: first operand is nil", ErrInvalidArgument)
	}
	if absent(b) {
		return nil, nil, 0, false, fmt.Errorf("%w: second operand is nil", ErrInvalidArgument)
	}
	ra, ok := a.(digits.Radixed)
	if !ok {
		return nil, nil, 0, false, fmt.Errorf("%w: first operand has no radix", ErrInvalidArgument)
	}
	radix = ra.Radix()

	radixB := radix
	if rb, ok := b.(digits.Radixed); ok {
		radixB = rb.Radix()
	} else {
		fallback = true
	}

	x, err = numlist.DecodeDigits(a, radix)
	if err != nil {
		return nil, nil, 0, false, fmt.Errorf("%w: first operand: %w", ErrInvalidArgument, err)
	}
	y, err = numlist.DecodeDigits(b, radixB)
	if err != nil {
		return nil, nil, 0, false, fmt.Errorf("%w: second operand: %w", ErrInvalidArgument, err)
	}
	return x, y, radix, fallback, nil
}

func absent(o digits.Ordered) bool {
	if o == nil {
		return true
	}
	s, ok := o.(*digits.Sequence)
	return ok && s == nil
}

// Combine decodes a and b, ORs the two values and encodes the result in
// a's radix as a new sequence.
//
// a must report its radix through digits.Radixed. If b does not, it is
// read in a's radix.
func Combine(a, b digits.Ordered) (*digits.Sequence, error) {
	x, y, radix, _, err := operands(a, b)
	if err != nil {
		return nil, err
	}
	return numlist.Encode(x.Or(x, y), radix)
}

// A Combiner applies the operations of a single radix profile.
type Combiner struct {
	profile profile.Profile
	logger  *slog.Logger
}

// New returns a Combiner for p. A nil logger discards output.
func New(p profile.Profile, logger *slog.Logger) (*Combiner, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Combiner{
		profile: p,
		logger:  logger.With("profile", p.Name),
	}, nil
}

// Profile returns the profile the Combiner was built with.
func (c *Combiner) Profile() profile.Profile {
	return c.profile
}

// Empty returns a new empty sequence in the primary radix.
func (c *Combiner) Empty() *digits.Sequence {
	s, _ := digits.New(c.profile.PrimaryRadix)
	return s
}

// FromDecimal parses decimal text and re-encodes it in the primary radix.
// Text that numlist.ParseDecimalText rejects gives an empty sequence.
func (c *Combiner) FromDecimal(text string) *digits.Sequence {
	dec := numlist.ParseDecimalText(text)
	if dec.IsEmpty() {
		return c.Empty()
	}
	s, err := numlist.Encode(numlist.Decode(dec), c.profile.PrimaryRadix)
	if err != nil {
		// unreachable with a validated profile
		return c.Empty()
	}
	return s
}

// ChangeScale returns the value of s in the secondary radix. s is not
// modified; an empty s converts to [0].
func (c *Combiner) ChangeScale(s *digits.Sequence) (*digits.Sequence, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: sequence is nil", ErrInvalidArgument)
	}
	return numlist.Encode(numlist.Decode(s), c.profile.SecondaryRadix)
}

// Combine is the package-level Combine with logging.
func (c *Combiner) Combine(a, b digits.Ordered) (*digits.Sequence, error) {
	x, y, radix, fallback, err := operands(a, b)
	if err != nil {
		return nil, err
	}
	if fallback {
		c.logger.Debug("second operand has no radix, reading it in the first operand's radix", "radix", radix)
	}
	r, err := numlist.Encode(x.Or(x, y), radix)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("combined", "radix", radix, "digits", r.Len())
	return r, nil
}
