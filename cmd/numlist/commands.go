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

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/capitalone/numlist"
	"github.com/capitalone/numlist/combine"
	"github.com/capitalone/numlist/digits"
	"github.com/capitalone/numlist/internal/logging"
	"github.com/capitalone/numlist/profile"
	"github.com/capitalone/numlist/store"
)

// app carries the state shared by every subcommand once the persistent
// flags are parsed.
type app struct {
	profilePath string
	logLevel    string
	logJSON     bool

	logger   *slog.Logger
	combiner *combine.Combiner
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "numlist",
		Short: "Inspect, convert and combine numbers stored as decimal text",
		Long: `numlist reads non-negative integers from decimal text files and shows
them in the primary and secondary radix of a profile. A file name of "-"
reads standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.profilePath, "profile", "", "YAML radix profile (default: reference profile)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "write logs as JSON")

	showCmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a number in decimal, primary and secondary radix",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runShow,
	}

	var radix, from int
	convertCmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Print a number in another radix (default: the secondary radix)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args[0], from, radix)
		},
	}
	convertCmd.Flags().IntVarP(&radix, "radix", "r", 0, "target radix, 2..36")
	convertCmd.Flags().IntVar(&from, "from", 0, "read FILE as text in this radix instead of decimal")

	var out string
	orCmd := &cobra.Command{
		Use:   "or FILE_A FILE_B",
		Short: "OR two numbers and print the result in the primary radix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOr(cmd, args[0], args[1], out)
		},
	}
	orCmd.Flags().StringVarP(&out, "out", "o", "", "also save the result as decimal text")

	rootCmd.AddCommand(showCmd, convertCmd, orCmd)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	level, err := logging.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.logger = logging.New(logging.Config{
		Level:  level,
		JSON:   a.logJSON,
		Output: cmd.ErrOrStderr(),
	})

	p := profile.Reference()
	if a.profilePath != "" {
		if p, err = profile.Load(a.profilePath); err != nil {
			a.logger.Error("profile rejected", "path", a.profilePath, "error", err)
			return err
		}
	}
	a.combiner, err = combine.New(p, a.logger)
	if err != nil {
		return err
	}
	a.logger.Debug("profile ready", "name", p.Name, "primary", p.PrimaryRadix, "secondary", p.SecondaryRadix)
	return nil
}

// load reads a decimal file, or stdin for "-", and re-encodes it in the
// primary radix. An empty or rejected file stays empty.
func (a *app) load(cmd *cobra.Command, path string) (*digits.Sequence, error) {
	var (
		dec *digits.Sequence
		err error
	)
	if path == "-" {
		dec, err = store.Read(cmd.InOrStdin())
	} else {
		dec, err = store.Load(path)
	}
	if err != nil {
		a.logger.Error("load failed", "path", path, "error", err)
		return nil, err
	}
	if dec.IsEmpty() {
		a.logger.Warn("no number read", "path", path)
		return a.combiner.Empty(), nil
	}
	return numlist.Encode(numlist.Decode(dec), a.combiner.Profile().PrimaryRadix)
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	s, err := a.load(cmd, args[0])
	if err != nil {
		return err
	}
	sec, err := a.combiner.ChangeScale(s)
	if err != nil {
		return err
	}
	p := a.combiner.Profile()
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "decimal:   %s\n", numlist.RenderDecimalText(s))
	fmt.Fprintf(w, "radix %-2d:  %s\n", p.PrimaryRadix, numlist.RenderRadixText(s))
	fmt.Fprintf(w, "radix %-2d:  %s\n", p.SecondaryRadix, numlist.RenderRadixText(sec))
	return nil
}

func (a *app) runConvert(cmd *cobra.Command, path string, from, radix int) error {
	var (
		s   *digits.Sequence
		err error
	)
	switch {
	case from == 0:
		s, err = a.load(cmd, path)
	case path == "-":
		s, err = store.ReadRadix(cmd.InOrStdin(), from)
	default:
		s, err = store.LoadRadix(path, from)
	}
	if err != nil {
		return err
	}
	var conv *digits.Sequence
	if radix == 0 {
		conv, err = a.combiner.ChangeScale(s)
	} else {
		conv, err = numlist.Encode(numlist.Decode(s), radix)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), numlist.RenderRadixText(conv))
	return nil
}

func (a *app) runOr(cmd *cobra.Command, pathA, pathB, out string) error {
	x, err := a.load(cmd, pathA)
	if err != nil {
		return err
	}
	y, err := a.load(cmd, pathB)
	if err != nil {
		return err
	}
	r, err := a.combiner.Combine(x, y)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), numlist.RenderRadixText(r))
	if out != "" {
		if err := store.Save(out, r); err != nil {
			a.logger.Error("save failed", "path", out, "error", err)
			return err
		}
		a.logger.Info("saved", "path", out)
	}
	return nil
}
