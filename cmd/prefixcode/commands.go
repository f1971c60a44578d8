package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/prefixcode"
)

func newBuildCmd() *cobra.Command {
	var af alphabetFlags
	var canonical, dump, stats bool
	alg := prefixcode.Huffman

	cmd := &cobra.Command{
		Use:   "build [flags]",
		Short: "Build a prefix code and print \"symbol : code\" pairs",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbols, weights, err := af.load()
			if err != nil {
				return err
			}
			ct, err := buildTable(alg, symbols, weights, canonical)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dump {
				_, err = ct.Dump(out)
				return err
			}
			printCodes(out, ct, symbols)
			if stats {
				printStats(out, ct)
			}
			return nil
		},
	}
	af.register(cmd)
	cmd.Flags().VarP(&alg, "algorithm", "a", "Construction to use: huffman or shannon-fano")
	cmd.Flags().BoolVar(&canonical, "canonical", false, "Reassign codes in canonical order")
	cmd.Flags().BoolVar(&dump, "dump", false, "Print a debugging dump instead of the code list")
	cmd.Flags().BoolVar(&stats, "stats", false, "Print average length, entropy, and Kraft sum")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var af alphabetFlags

	cmd := &cobra.Command{
		Use:   "compare [flags]",
		Short: "Build both codes for an alphabet and compare them",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbols, weights, err := af.load()
			if err != nil {
				return err
			}
			huff, err := buildTable(prefixcode.Huffman, symbols, weights, false)
			if err != nil {
				return err
			}
			sf, err := buildTable(prefixcode.ShannonFano, symbols, weights, false)
			if err != nil {
				return err
			}
			printComparison(cmd.OutOrStdout(), symbols, weights, huff, sf)
			return nil
		},
	}
	af.register(cmd)
	return cmd
}

type demoExample struct {
	name    string
	symbols []string
	weights []float64
}

var demoExamples = []demoExample{
	{
		name:    "dyadic",
		symbols: []string{"a", "b", "c", "d"},
		weights: []float64{0.125, 0.125, 0.25, 0.5},
	},
	{
		name:    "textbook",
		symbols: []string{"a", "b", "c", "d", "e", "f"},
		weights: []float64{0.05, 0.09, 0.12, 0.13, 0.16, 0.45},
	},
	{
		name:    "single",
		symbols: []string{"x"},
		weights: []float64{1.0},
	},
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print codes for a few fixed example alphabets",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, ex := range demoExamples {
				if i > 0 {
					fmt.Fprintln(out)
				}
				for _, alg := range []prefixcode.Algorithm{prefixcode.ShannonFano, prefixcode.Huffman} {
					ct, err := buildTable(alg, ex.symbols, ex.weights, false)
					if err != nil {
						return fmt.Errorf("example %s: %w", ex.name, err)
					}
					fmt.Fprintf(out, "%s (%s):\n", ex.name, alg)
					printCodes(out, ct, ex.symbols)
				}
			}
			return nil
		},
	}
}

func buildTable(alg prefixcode.Algorithm, symbols []string, weights []float64, canonical bool) (*prefixcode.CodeTable[string], error) {
	ct, err := prefixcode.Build(alg, symbols, weights)
	if err != nil {
		return nil, err
	}
	if canonical {
		ct = ct.Canonical()
	}
	if err := ct.Verify(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"algorithm": alg,
		"symbols":   ct.Len(),
		"canonical": canonical,
	}).Debugf("Built code table: average %.4f bits, entropy %.4f bits, lengths %d .. %d",
		ct.AverageLength(), ct.Entropy(), ct.MinLength(), ct.MaxLength())
	return ct, nil
}

// printCodes prints "symbol : code" for each symbol, in the given order.
func printCodes(w io.Writer, ct *prefixcode.CodeTable[string], symbols []string) {
	for _, symbol := range symbols {
		hc, err := ct.Lookup(symbol)
		if err != nil {
			log.Errorf("Lookup failed: %s", err)
			continue
		}
		fmt.Fprintf(w, "%s : %s\n", symbol, hc.Bits())
	}
}

func printStats(w io.Writer, ct *prefixcode.CodeTable[string]) {
	fmt.Fprintf(w, "%-16s %.4f\n", "Average length", ct.AverageLength())
	fmt.Fprintf(w, "%-16s %.4f\n", "Entropy", ct.Entropy())
	fmt.Fprintf(w, "%-16s %.4f\n", "Kraft sum", ct.KraftSum())
}

func printComparison(w io.Writer, symbols []string, weights []float64, huff, sf *prefixcode.CodeTable[string]) {
	fmt.Fprintf(w, "%-12s %-8s %-16s %-16s\n", "Symbol", "Weight", "Huffman", "Shannon-Fano")
	for i, symbol := range symbols {
		hc, _ := huff.Lookup(symbol)
		sc, _ := sf.Lookup(symbol)
		fmt.Fprintf(w, "%-12s %-8.4f %-16s %-16s\n", symbol, weights[i], hc.Bits(), sc.Bits())
	}

	entropy := huff.Entropy()
	fmt.Fprintf(w, "%-21s %-16.4f %-16.4f\n", "Average length", huff.AverageLength(), sf.AverageLength())
	fmt.Fprintf(w, "%-21s %-16s %-16s\n", "Efficiency", efficiency(entropy, huff), efficiency(entropy, sf))
	fmt.Fprintf(w, "%-21s %.4f\n", "Entropy", entropy)
}

func efficiency(entropy float64, ct *prefixcode.CodeTable[string]) string {
	average := ct.AverageLength()
	if average == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", 100*entropy/average)
}
