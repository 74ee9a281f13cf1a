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
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/capitalone/numlist/digits"
)

// RadixAlphabet is the glyph set for radix text: '0'..'9' then 'A'..'Z'.
const RadixAlphabet = digits.Glyphs

var radixCodec, _ = NewCodec(RadixAlphabet)

// Codec supports the conversion of an arbitrary alphabet into ordinal
// values from 0 to length of alphabet-1.
// Element 'rtd' (rune-to-digit) supports the mapping from runes to ordinal values.
// Element 'dtr' (digit-to-rune) supports the mapping from ordinal values to runes.
type Codec struct {
	rtd map[rune]int
	dtr []rune
}

// NewCodec builds a Codec from the set of unique characters taken from the string s.
// It is an error to build a codec with fewer than digits.MinRadix or more
// than digits.MaxRadix characters, since every ordinal must be a digit.
func NewCodec(s string) (Codec, error) {
	var ret Codec
	ret.rtd = make(map[rune]int)
	ret.dtr = make([]rune, 0, utf8.RuneCountInString(s))

	for _, rv := range s {
		// duplicates are tolerated, but ignored.
		if _, ok := ret.rtd[rv]; !ok {
			ret.rtd[rv] = len(ret.dtr)
			ret.dtr = append(ret.dtr, rv)
		}
	}
	if err := digits.CheckRadix(len(ret.dtr)); err != nil {
		return ret, fmt.Errorf("alphabet size: %w", err)
	}
	return ret, nil
}

// Radix returns the size of the alphabet supported by the Codec.
func (a *Codec) Radix() int {
	return len(a.dtr)
}

// Encode the supplied string as digit values giving the position of each
// character in the alphabet.
// It is an error for the supplied string to contain characters that are not
// in the alphabet.
func (a *Codec) Encode(s string) ([]int, error) {
	ret := make([]int, 0, utf8.RuneCountInString(s))
	for i, rv := range []rune(s) {
		v, ok := a.rtd[rv]
		if !ok {
			return ret, fmt.Errorf("character at position %d is not in alphabet", i)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// Decode constructs a string from digit values where each value specifies
// the position of the character in the alphabet.
// It is an error for the array to contain values outside the boundary of the
// alphabet.
func (a *Codec) Decode(n []int) (string, error) {
	var sb strings.Builder
	for i, v := range n {
		if v < 0 || v > len(a.dtr)-1 {
			return sb.String(), fmt.Errorf("%w: numeral at position %d: %d not in [0..%d]", digits.ErrRange, i, v, len(a.dtr)-1)
		}
		sb.WriteRune(a.dtr[v])
	}
	return sb.String(), nil
}

// RenderRadixText renders each digit of s head to tail with RadixAlphabet
// and no separators. An empty sequence renders as "".
func RenderRadixText(s *digits.Sequence) string {
	// a sequence never holds a digit >= digits.MaxRadix
	text, _ := radixCodec.Decode(s.Values())
	return text
}

// ParseRadixText is the inverse of RenderRadixText. Letters may be in
// either case. Empty text yields an empty sequence.
func ParseRadixText(text string, radix int) (*digits.Sequence, error) {
	vals, err := radixCodec.Encode(strings.ToUpper(strings.TrimSpace(text)))
	if err != nil {
		return nil, err
	}
	return digits.Of(radix, vals...)
}
