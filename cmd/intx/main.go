// seehuhn.de/go/intersect - intersections of lines, conics and Bézier curves
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Command intx solves polynomial equations and intersects the shapes
// described in TOML scene files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"seehuhn.de/go/intersect"
	"seehuhn.de/go/intersect/poly"
)

var (
	verbose bool
	opt     = poly.DefaultOptions
)

var rootCmd = &cobra.Command{
	Use:   "intx",
	Short: "Intersections of lines, conics and Bézier curves.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
			intersect.SetLogger(slog.New(h))
		}
	},
	SilenceUsage: true,
}

var rootsCmd = &cobra.Command{
	Use:   "roots c0 c1 ... cn",
	Short: "Print the real roots of c0 + c1·x + ... + cn·xⁿ",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coeffs := make([]float64, len(args))
		for i, arg := range args {
			c, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("coefficient %d: %w", i, err)
			}
			coeffs[i] = c
		}

		xs, err := poly.Polynomial(coeffs).Roots(&opt)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, x := range xs {
			fmt.Fprintf(out, "%.12g\n", x)
		}
		return nil
	},
}

var sceneCmd = &cobra.Command{
	Use:   "scene FILE.toml",
	Short: "Print the intersections between all shapes of a scene",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shapes, err := readScene(args[0])
		if err != nil {
			return err
		}
		res, err := sceneIntersections(shapes)
		if err != nil {
			return err
		}
		printResults(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rootsCmd)
	rootCmd.AddCommand(sceneCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solver diagnostics to stderr")

	flags := rootsCmd.Flags()
	flags.Float64Var(&opt.Tolerance, "tol", opt.Tolerance, "convergence tolerance of the iterative solver")
	flags.IntVar(&opt.MaxIterations, "max-iter", opt.MaxIterations, "iterations per attempt")
	flags.IntVar(&opt.Restarts, "restarts", opt.Restarts, "additional attempts per quadratic factor")
	flags.Float64Var(&opt.Alpha0, "alpha0", opt.Alpha0, "constant term of the starting factor")
	flags.Float64Var(&opt.Alpha1, "alpha1", opt.Alpha1, "linear term of the starting factor")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
