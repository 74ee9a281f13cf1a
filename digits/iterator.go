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

import "fmt"

// Iterator walks a sequence head to tail and can remove the digit it
// last returned.
//
//	it := s.Iterator()
//	for it.Next() {
//	    if it.Value() == 0 {
//	        it.Remove()
//	    }
//	}
type Iterator struct {
	s     *Sequence
	next  *node
	last  *node
	value int
}

// Iterator returns a forward iterator positioned before the head.
func (s *Sequence) Iterator() *Iterator {
	return &Iterator{s: s, next: s.head}
}

// Next advances to the following digit and reports whether there was one.
func (it *Iterator) Next() bool {
	if it.next == nil {
		it.last = nil
		return false
	}
	it.last = it.next
	it.next = it.next.next
	it.value = int(it.last.value)
	return true
}

// Value returns the digit returned by the latest successful Next.
func (it *Iterator) Value() int {
	return it.value
}

// Remove unlinks the digit returned by the latest Next.
func (it *Iterator) Remove() error {
	if it.last == nil {
		return ErrState
	}
	it.s.unlink(it.last)
	it.last = nil
	return nil
}

// ListIterator is a bidirectional cursor over a sequence. The cursor sits
// between two digits: NextIndex is the position Next would return.
type ListIterator struct {
	s     *Sequence
	next  *node
	last  *node
	index int
}

// ListIterator returns a cursor positioned before index i, 0 <= i <= Len().
func (s *Sequence) ListIterator(i int) (*ListIterator, error) {
	if err := checkIndex(i, s.length+1); err != nil {
		return nil, err
	}
	it := &ListIterator{s: s, index: i}
	if i < s.length {
		it.next = s.nodeAt(i)
	}
	return it, nil
}

// HasNext reports whether Next would return a digit.
func (it *ListIterator) HasNext() bool {
	return it.next != nil
}

// Next returns the digit after the cursor and moves past it.
func (it *ListIterator) Next() (int, error) {
	if it.next == nil {
		return 0, fmt.Errorf("%w: no digit at %d", ErrExhausted, it.index)
	}
	it.last = it.next
	it.next = it.next.next
	it.index++
	return int(it.last.value), nil
}

// HasPrevious reports whether Previous would return a digit.
func (it *ListIterator) HasPrevious() bool {
	return it.index > 0
}

// Previous returns the digit before the cursor and moves back over it.
func (it *ListIterator) Previous() (int, error) {
	if it.index == 0 {
		return 0, fmt.Errorf("%w: no digit before 0", ErrExhausted)
	}
	if it.next == nil {
		it.next = it.s.tail
	} else {
		it.next = it.next.prev
	}
	it.last = it.next
	it.index--
	return int(it.last.value), nil
}

// NextIndex returns the position Next would return.
func (it *ListIterator) NextIndex() int {
	return it.index
}

// PreviousIndex returns the position Previous would return, -1 at the head.
func (it *ListIterator) PreviousIndex() int {
	return it.index - 1
}

// Remove unlinks the digit last returned by Next or Previous.
func (it *ListIterator) Remove() error {
	if it.last == nil {
		return ErrState
	}
	n := it.last
	if n == it.next {
		// returned by Previous: the cursor stays, its successor changes
		it.next = n.next
	} else {
		it.index--
	}
	it.s.unlink(n)
	it.last = nil
	return nil
}

// Set replaces the digit last returned by Next or Previous.
func (it *ListIterator) Set(d int) error {
	if it.last == nil {
		return ErrState
	}
	if err := it.s.checkDigit(d); err != nil {
		return err
	}
	it.last.value = uint8(d)
	return nil
}

// Insert links d immediately before the cursor. A following Next is not
// affected; a following Previous returns d.
func (it *ListIterator) Insert(d int) error {
	if err := it.s.checkDigit(d); err != nil {
		return err
	}
	if it.next == nil {
		it.s.linkLast(d)
	} else {
		it.s.linkBefore(d, it.next)
	}
	it.index++
	it.last = nil
	return nil
}
