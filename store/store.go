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

// Package store reads and writes numbers as decimal text files.
package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/capitalone/numlist"
	"github.com/capitalone/numlist/digits"
)

var (
	// ErrIO wraps every read or write failure.
	ErrIO = errors.New("i/o failure")

	// ErrInvalidArgument indicates a nil sequence passed to Save or Write.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Read reads decimal text from r. Blank content gives an empty radix 10
// sequence; anything else is handed to numlist.ParseDecimalText.
func Read(r io.Reader) (*digits.Sequence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return digits.New(numlist.DecimalRadix)
	}
	return numlist.ParseDecimalText(text), nil
}

// Write writes s to w as decimal text with no trailing newline.
func Write(w io.Writer, s *digits.Sequence) error {
	if s == nil {
		return fmt.Errorf("%w: sequence is nil", ErrInvalidArgument)
	}
	if _, err := io.WriteString(w, numlist.RenderDecimalText(s)); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// ReadRadix reads radix text, as produced by numlist.RenderRadixText, from r.
// Unlike decimal text, malformed radix text is an error.
func ReadRadix(r io.Reader, radix int) (*digits.Sequence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return numlist.ParseRadixText(string(data), radix)
}

// Load reads the decimal number stored in the file at path.
func Load(path string) (*digits.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()
	return Read(f)
}

// LoadRadix reads the radix text stored in the file at path.
func LoadRadix(path string, radix int) (*digits.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()
	return ReadRadix(f, radix)
}

// Save replaces the file at path with the decimal text of s.
func Save(path string, s *digits.Sequence) error {
	if s == nil {
		return fmt.Errorf("%w: sequence is nil", ErrInvalidArgument)
	}
	if err := os.WriteFile(path, []byte(numlist.RenderDecimalText(s)), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
