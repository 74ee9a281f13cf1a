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

// Package digits implements an ordered sequence of digits in a fixed radix,
// backed by a doubly-linked list of nodes.
//
// A Sequence owns its nodes exclusively. Operations that move digits
// between sequences (Subsequence, and the conversions in the parent
// package) copy values into fresh nodes. A Sequence is not safe for
// concurrent use; callers serialize mutation and iteration.
package digits

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

const (
	// MinRadix is the smallest supported radix.
	MinRadix = 2

	// MaxRadix is the largest supported radix. Every digit of a radix up to
	// MaxRadix has a single glyph in Glyphs.
	MaxRadix = 36

	// NotFound is returned by IndexOf and LastIndexOf when no digit matches.
	NotFound = -1

	// Glyphs maps digit values to their textual form: '0'..'9' then 'A'..'Z'.
	Glyphs = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Ordered is the read side of an ordered digit collection.
type Ordered interface {
	Len() int
	Values() []int
}

// Radixed is implemented by digit collections that know their radix.
type Radixed interface {
	Radix() int
}

// Slice is a plain ordered digit collection with no radix of its own.
type Slice []int

// Len returns the number of digits in the slice.
func (d Slice) Len() int { return len(d) }

// Values returns the digits as an int slice.
func (d Slice) Values() []int { return []int(d) }

type node struct {
	value uint8
	prev  *node // non-owning back-link
	next  *node
}

// A Sequence is a list of digits in a single radix, most significant digit
// at the head.
type Sequence struct {
	head   *node
	tail   *node
	length int
	radix  int
}

// CheckRadix reports whether radix lies in [MinRadix, MaxRadix].
func CheckRadix(radix int) error {
	if radix < MinRadix || radix > MaxRadix {
		return fmt.Errorf("%w: got %d - expected %d..%d", ErrRadix, radix, MinRadix, MaxRadix)
	}
	return nil
}

// New returns an empty sequence with the given radix.
func New(radix int) (*Sequence, error) {
	if err := CheckRadix(radix); err != nil {
		return nil, err
	}
	return &Sequence{radix: radix}, nil
}

// Of returns a sequence of the given radix holding ds in order.
func Of(radix int, ds ...int) (*Sequence, error) {
	s, err := New(radix)
	if err != nil {
		return nil, err
	}
	if err := s.AppendAll(ds...); err != nil {
		return nil, err
	}
	return s, nil
}

// Radix returns the radix fixed at construction.
func (s *Sequence) Radix() int {
	return s.radix
}

// Len returns the number of digits. A nil sequence has length 0.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// IsEmpty reports whether the sequence holds no digits.
func (s *Sequence) IsEmpty() bool {
	return s.Len() == 0
}

func (s *Sequence) checkDigit(d int) error {
	if d < 0 || d >= s.radix {
		return fmt.Errorf("%w: got %d - expected 0..%d", ErrRange, d, s.radix-1)
	}
	return nil
}

// checkIndex validates 0 <= i < limit.
func checkIndex(i, limit int) error {
	if i < 0 || i >= limit {
		return fmt.Errorf("%w: index %d, length %d", ErrIndex, i, limit)
	}
	return nil
}

// nodeAt walks from whichever end is closer. i must be a valid index.
func (s *Sequence) nodeAt(i int) *node {
	if i < s.length>>1 {
		n := s.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := s.tail
	for j := s.length - 1; j > i; j-- {
		n = n.prev
	}
	return n
}

func (s *Sequence) linkLast(v int) {
	n := &node{value: uint8(v), prev: s.tail}
	if s.tail == nil {
		s.head = n
	} else {
		s.tail.next = n
	}
	s.tail = n
	s.length++
}

func (s *Sequence) linkBefore(v int, succ *node) {
	n := &node{value: uint8(v), prev: succ.prev, next: succ}
	if succ.prev == nil {
		s.head = n
	} else {
		succ.prev.next = n
	}
	succ.prev = n
	s.length++
}

// unlink detaches n and clears its links so no iterator can walk through it.
func (s *Sequence) unlink(n *node) {
	if n.prev == nil {
		s.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		s.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	s.length--
}

// Append adds d at the tail.
func (s *Sequence) Append(d int) error {
	if err := s.checkDigit(d); err != nil {
		return err
	}
	s.linkLast(d)
	return nil
}

// AppendAll adds ds at the tail in order. Either all digits are added or,
// if any is out of range, none are.
func (s *Sequence) AppendAll(ds ...int) error {
	for _, d := range ds {
		if err := s.checkDigit(d); err != nil {
			return err
		}
	}
	for _, d := range ds {
		s.linkLast(d)
	}
	return nil
}

// Insert links d so that it ends up at position i. i == Len() appends.
func (s *Sequence) Insert(i, d int) error {
	return s.InsertAll(i, d)
}

// InsertAll links ds, in order, starting at position i. Either all digits
// are inserted or none are.
func (s *Sequence) InsertAll(i int, ds ...int) error {
	if err := checkIndex(i, s.length+1); err != nil {
		return err
	}
	for _, d := range ds {
		if err := s.checkDigit(d); err != nil {
			return err
		}
	}
	if i == s.length {
		for _, d := range ds {
			s.linkLast(d)
		}
		return nil
	}
	succ := s.nodeAt(i)
	for _, d := range ds {
		s.linkBefore(d, succ)
	}
	return nil
}

// RemoveAt unlinks the digit at position i and returns it.
func (s *Sequence) RemoveAt(i int) (int, error) {
	if err := checkIndex(i, s.length); err != nil {
		return 0, err
	}
	n := s.nodeAt(i)
	v := int(n.value)
	s.unlink(n)
	return v, nil
}

// Remove unlinks the first digit, head to tail, equal to d and reports
// whether one was found.
func (s *Sequence) Remove(d int) bool {
	for n := s.head; n != nil; n = n.next {
		if int(n.value) == d {
			s.unlink(n)
			return true
		}
	}
	return false
}

// RemoveAll unlinks every digit contained in ds.
func (s *Sequence) RemoveAll(ds ...int) bool {
	return s.filter(func(v int) bool { return !slices.Contains(ds, v) })
}

// RetainAll unlinks every digit not contained in ds.
func (s *Sequence) RetainAll(ds ...int) bool {
	return s.filter(func(v int) bool { return slices.Contains(ds, v) })
}

// filter keeps the digits for which keep returns true.
func (s *Sequence) filter(keep func(int) bool) bool {
	modified := false
	for n := s.head; n != nil; {
		next := n.next
		if !keep(int(n.value)) {
			s.unlink(n)
			modified = true
		}
		n = next
	}
	return modified
}

// Clear removes every digit. The radix is unchanged.
func (s *Sequence) Clear() {
	for n := s.head; n != nil; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}
	s.head, s.tail, s.length = nil, nil, 0
}

// Get returns the digit at position i.
func (s *Sequence) Get(i int) (int, error) {
	if err := checkIndex(i, s.length); err != nil {
		return 0, err
	}
	return int(s.nodeAt(i).value), nil
}

// Set replaces the digit at position i and returns the previous one.
func (s *Sequence) Set(i, d int) (int, error) {
	if err := checkIndex(i, s.length); err != nil {
		return 0, err
	}
	if err := s.checkDigit(d); err != nil {
		return 0, err
	}
	n := s.nodeAt(i)
	old := int(n.value)
	n.value = uint8(d)
	return old, nil
}

// IndexOf returns the position of the first d, or NotFound.
func (s *Sequence) IndexOf(d int) int {
	i := 0
	for n := s.head; n != nil; n = n.next {
		if int(n.value) == d {
			return i
		}
		i++
	}
	return NotFound
}

// LastIndexOf returns the position of the last d, or NotFound.
func (s *Sequence) LastIndexOf(d int) int {
	i := s.length - 1
	for n := s.tail; n != nil; n = n.prev {
		if int(n.value) == d {
			return i
		}
		i--
	}
	return NotFound
}

// Contains reports whether d occurs in the sequence.
func (s *Sequence) Contains(d int) bool {
	return s.IndexOf(d) != NotFound
}

// ContainsAll reports whether every digit in ds occurs in the sequence.
func (s *Sequence) ContainsAll(ds ...int) bool {
	for _, d := range ds {
		if !s.Contains(d) {
			return false
		}
	}
	return true
}

// Swap exchanges the digits stored at positions i and j. The nodes stay
// where they are.
func (s *Sequence) Swap(i, j int) error {
	if i == j {
		return nil
	}
	if err := checkIndex(i, s.length); err != nil {
		return err
	}
	if err := checkIndex(j, s.length); err != nil {
		return err
	}
	a, b := s.nodeAt(i), s.nodeAt(j)
	a.value, b.value = b.value, a.value
	return nil
}

// SortAscending orders the digits smallest first.
func (s *Sequence) SortAscending() {
	if s.length <= 1 {
		return
	}
	vs := s.Values()
	slices.Sort(vs)
	i := 0
	for n := s.head; n != nil; n = n.next {
		n.value = uint8(vs[i])
		i++
	}
}

// SortDescending orders the digits largest first.
func (s *Sequence) SortDescending() {
	if s.length <= 1 {
		return
	}
	vs := s.Values()
	slices.Sort(vs)
	i := len(vs) - 1
	for n := s.head; n != nil; n = n.next {
		n.value = uint8(vs[i])
		i--
	}
}

// ShiftLeft rotates the sequence by one: the head digit moves to the tail.
func (s *Sequence) ShiftLeft() {
	if s.length <= 1 {
		return
	}
	n := s.head
	s.head = n.next
	s.head.prev = nil
	n.next = nil
	n.prev = s.tail
	s.tail.next = n
	s.tail = n
}

// ShiftRight rotates the sequence by one: the tail digit moves to the head.
func (s *Sequence) ShiftRight() {
	if s.length <= 1 {
		return
	}
	n := s.tail
	s.tail = n.prev
	s.tail.next = nil
	n.prev = nil
	n.next = s.head
	s.head.prev = n
	s.head = n
}

// Subsequence returns a new sequence of the same radix holding copies of
// the digits in [from, to).
func (s *Sequence) Subsequence(from, to int) (*Sequence, error) {
	if from < 0 || to > s.length || from > to {
		return nil, fmt.Errorf("%w: range [%d, %d), length %d", ErrIndex, from, to, s.length)
	}
	sub := &Sequence{radix: s.radix}
	if from == to {
		return sub, nil
	}
	n := s.nodeAt(from)
	for i := from; i < to; i++ {
		sub.linkLast(int(n.value))
		n = n.next
	}
	return sub, nil
}

// Values returns the digits head to tail in a new slice.
func (s *Sequence) Values() []int {
	vs := make([]int, 0, s.Len())
	if s == nil {
		return vs
	}
	for n := s.head; n != nil; n = n.next {
		vs = append(vs, int(n.value))
	}
	return vs
}

// Equal reports whether o holds the same digits in the same order. The
// radix is not compared.
func (s *Sequence) Equal(o Ordered) bool {
	if o == nil || s.Len() != o.Len() {
		return false
	}
	if s.Len() == 0 {
		return true
	}
	if other, ok := o.(*Sequence); ok {
		for a, b := s.head, other.head; a != nil; a, b = a.next, b.next {
			if a.value != b.value {
				return false
			}
		}
		return true
	}
	vs := o.Values()
	i := 0
	for n := s.head; n != nil; n = n.next {
		if int(n.value) != vs[i] {
			return false
		}
		i++
	}
	return true
}

// All yields (position, digit) pairs head to tail. Structural changes
// during the loop must go through an Iterator instead.
func (s *Sequence) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		i := 0
		for n := s.head; n != nil; {
			next := n.next
			if !yield(i, int(n.value)) {
				return
			}
			n = next
			i++
		}
	}
}

// Backward yields (position, digit) pairs tail to head.
func (s *Sequence) Backward() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		i := s.length - 1
		for n := s.tail; n != nil; {
			prev := n.prev
			if !yield(i, int(n.value)) {
				return
			}
			n = prev
			i--
		}
	}
}

// String renders the digits head to tail using Glyphs.
func (s *Sequence) String() string {
	var sb strings.Builder
	sb.Grow(s.Len())
	if s == nil {
		return ""
	}
	for n := s.head; n != nil; n = n.next {
		sb.WriteByte(Glyphs[n.value])
	}
	return sb.String()
}
