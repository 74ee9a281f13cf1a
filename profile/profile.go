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

// Package profile holds the radix profile that a numlist deployment works
// in: the primary radix numbers are kept in and the secondary radix they
// are converted to.
//
// A Profile is a plain value. It is read once, validated, and passed to
// the components that need it; there is no package-level profile state.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Reference profile values.
const (
	ReferenceName           = "reference"
	ReferencePrimaryRadix   = 3
	ReferenceSecondaryRadix = 8
)

// ErrInvalid is returned when a profile fails validation.
var ErrInvalid = errors.New("invalid profile")

// profileValidate is the validator instance for profiles.
var profileValidate *validator.Validate

func init() {
	profileValidate = validator.New()
}

// Profile names the radices used for the primary and secondary
// representations of a number.
type Profile struct {
	Name           string `yaml:"name" validate:"required"`
	PrimaryRadix   int    `yaml:"primary_radix" validate:"min=2,max=36"`
	SecondaryRadix int    `yaml:"secondary_radix" validate:"min=2,max=36"`
}

// Reference returns the reference profile: primary radix 3, secondary 8.
func Reference() Profile {
	return Profile{
		Name:           ReferenceName,
		PrimaryRadix:   ReferencePrimaryRadix,
		SecondaryRadix: ReferenceSecondaryRadix,
	}
}

// Validate checks the profile's fields against their tags.
func (p Profile) Validate() error {
	if err := profileValidate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Parse reads a YAML profile. Fields that are absent keep their reference
// values; unknown fields are rejected.
func Parse(data []byte) (Profile, error) {
	p := Reference()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("failed to parse the profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Load reads and parses the YAML profile at path.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read the profile file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Marshal renders the profile as YAML, in the form Parse accepts.
func (p Profile) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
