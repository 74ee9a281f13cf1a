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

package numlist

import (
	"math/big"
	"strings"

	"github.com/capitalone/numlist/digits"
)

// DecimalRadix is the radix of sequences built from decimal text.
const DecimalRadix = 10

// ParseDecimalText reads a non-negative decimal integer into a radix 10
// sequence. Surrounding whitespace and one leading '+' are ignored, and
// blank text reads as zero.
//
// Malformed or negative text is not an error: it yields an empty sequence.
// Callers that need to tell the two apart should check IsEmpty.
func ParseDecimalText(text string) *digits.Sequence {
	s, _ := digits.New(DecimalRadix)
	text = strings.TrimSpace(text)
	if text == "" {
		_ = s.Append(0)
		return s
	}
	switch text[0] {
	case '+':
		text = text[1:]
	case '-':
		return s
	}

	v, ok := new(big.Int).SetString(text, DecimalRadix)
	if !ok || v.Sign() < 0 {
		return s
	}
	enc, err := Encode(v, DecimalRadix)
	if err != nil {
		return s
	}
	return enc
}

// RenderDecimalText returns the value of s in base 10. An empty sequence
// renders as "0".
func RenderDecimalText(s *digits.Sequence) string {
	return Decode(s).String()
}
