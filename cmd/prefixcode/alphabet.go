package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/chronos-tachyon/prefixcode"
)

var charsets = map[string]encoding.Encoding{
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"koi8-r":       charmap.KOI8R,
	"cp866":        charmap.CodePage866,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-5":   charmap.ISO8859_5,
}

// alphabetFlags are the flags shared by every command that reads an
// alphabet.  Exactly one of symbols, input, or text must be given.
type alphabetFlags struct {
	symbols []string
	weights []float64
	input   string
	text    string
	charset string
}

func (af *alphabetFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSliceVar(&af.symbols, "symbols", nil, "Comma-separated symbols")
	flags.Float64SliceVar(&af.weights, "weights", nil, "Comma-separated weights, one per symbol, summing to 1")
	flags.StringVar(&af.input, "input", "", "File of \"symbol weight\" lines")
	flags.StringVar(&af.text, "text", "", "Text file whose character frequencies become the weights")
	flags.StringVar(&af.charset, "charset", "", "Character set of the --text file (default utf-8)")
}

// load returns the alphabet, in the order it was given.
func (af *alphabetFlags) load() ([]string, []float64, error) {
	given := 0
	for _, set := range []bool{len(af.symbols) != 0 || len(af.weights) != 0, af.input != "", af.text != ""} {
		if set {
			given++
		}
	}
	if given != 1 {
		return nil, nil, fmt.Errorf("exactly one of --symbols/--weights, --input, or --text is required")
	}
	if af.charset != "" && af.text == "" {
		return nil, nil, fmt.Errorf("--charset applies only to --text")
	}

	switch {
	case af.input != "":
		f, err := os.Open(af.input)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		return readAlphabet(f)

	case af.text != "":
		raw, err := os.ReadFile(af.text)
		if err != nil {
			return nil, nil, err
		}
		text, err := decodeText(raw, af.charset)
		if err != nil {
			return nil, nil, err
		}
		runes, weights := prefixcode.CountWeights(text)
		symbols := make([]string, len(runes))
		for i, ch := range runes {
			symbols[i] = strconv.QuoteRune(ch)
		}
		log.Debugf("Counted %d distinct characters in %s", len(symbols), af.text)
		return symbols, weights, nil

	default:
		return af.symbols, af.weights, nil
	}
}

// readAlphabet parses lines of the form "symbol weight".  Blank lines and
// lines starting with '#' are ignored.
func readAlphabet(r io.Reader) ([]string, []float64, error) {
	var symbols []string
	var weights []float64

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d: expected \"symbol weight\", got %q", lineno, line)
		}
		weight, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		symbols = append(symbols, fields[0])
		weights = append(weights, weight)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return symbols, weights, nil
}

// decodeText converts raw from the named character set to UTF-8.
func decodeText(raw []byte, charset string) (string, error) {
	name := strings.ToLower(charset)
	if name == "" || name == "utf-8" || name == "utf8" {
		return string(raw), nil
	}
	enc, found := charsets[name]
	if !found {
		return "", fmt.Errorf("unsupported charset %q", charset)
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
