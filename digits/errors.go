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

package digits

import "errors"

// Digit errors
var (
	// ErrRange indicates a digit value outside [0, radix).
	ErrRange = errors.New("digit out of range")

	// ErrRadix indicates a radix outside [MinRadix, MaxRadix].
	ErrRadix = errors.New("radix out of range")
)

// Position errors
var (
	// ErrIndex indicates a position outside the sequence bounds.
	ErrIndex = errors.New("index out of bounds")
)

// Iterator errors
var (
	// ErrState indicates an iterator operation with no element to act on,
	// such as Remove before Next or a second Remove in a row.
	ErrState = errors.New("iterator has no current element")

	// ErrExhausted indicates a Next or Previous past the end of the sequence.
	ErrExhausted = errors.New("iterator exhausted")
)
