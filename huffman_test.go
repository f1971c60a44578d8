package prefixcode

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestHuffman_Textbook(t *testing.T) {
	ct, err := BuildHuffman(
		[]rune("abcdef"),
		[]float64{0.05, 0.09, 0.12, 0.13, 0.16, 0.45})
	if err != nil {
		t.Fatalf("BuildHuffman failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tAlgorithm() = huffman\n",
		"\tMinLength() = 1\n",
		"\tMaxLength() = 4\n",
		"\tLookup(97) = \"1100\"\n",
		"\tLookup(98) = \"1101\"\n",
		"\tLookup(99) = \"100\"\n",
		"\tLookup(100) = \"101\"\n",
		"\tLookup(101) = \"111\"\n",
		"\tLookup(102) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestHuffman_Dyadic(t *testing.T) {
	symbols := []string{"a", "b", "c", "d"}
	ct, err := BuildHuffman(symbols, []float64{0.125, 0.125, 0.25, 0.5})
	if err != nil {
		t.Fatalf("BuildHuffman failed: %v", err)
	}

	expectLengths := []int{3, 3, 2, 1}
	for i, symbol := range symbols {
		hc, err := ct.Lookup(symbol)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", symbol, err)
		}
		if hc.Len() != expectLengths[i] {
			t.Errorf("Lookup(%q): expected length %d, got %s", symbol, expectLengths[i], hc)
		}
	}

	if actual := ct.KraftSum(); actual != 1.0 {
		t.Errorf("expected Kraft sum 1.0, got %v", actual)
	}
	if actual := ct.AverageLength(); actual != 1.75 {
		t.Errorf("expected average length 1.75, got %v", actual)
	}
	if actual := ct.Entropy(); actual != 1.75 {
		t.Errorf("expected entropy 1.75, got %v", actual)
	}
}

func TestHuffman_SingleSymbol(t *testing.T) {
	for _, alg := range []Algorithm{Huffman, ShannonFano} {
		t.Run(alg.String(), func(t *testing.T) {
			ct, err := Build(alg, []string{"x"}, []float64{1.0})
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			hc, err := ct.Lookup("x")
			if err != nil {
				t.Fatalf("Lookup failed: %v", err)
			}
			if hc.Len() != 0 {
				t.Errorf("expected empty code, got %s", hc)
			}
			if ct.Len() != 1 {
				t.Errorf("expected 1 symbol, got %d", ct.Len())
			}
		})
	}
}

func TestHuffman_Empty(t *testing.T) {
	for _, alg := range []Algorithm{Huffman, ShannonFano} {
		t.Run(alg.String(), func(t *testing.T) {
			ct, err := Build(alg, []string{}, []float64{})
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if ct.Len() != 0 {
				t.Errorf("expected empty table, got %d symbols", ct.Len())
			}
			_, err = ct.Lookup("a")
			if !errors.Is(err, ErrUnknownSymbol) {
				t.Errorf("expected ErrUnknownSymbol, got %v", err)
			}
		})
	}
}

func TestHuffman_TwoSymbols(t *testing.T) {
	ct, err := BuildHuffman([]string{"heavy", "light"}, []float64{0.9, 0.1})
	if err != nil {
		t.Fatalf("BuildHuffman failed: %v", err)
	}
	for symbol, expect := range map[string]string{"light": "0", "heavy": "1"} {
		hc, _ := ct.Lookup(symbol)
		if actual := hc.Bits(); expect != actual {
			t.Errorf("Lookup(%q): expected %q, got %q", symbol, expect, actual)
		}
	}
}

func TestHuffman_Optimality(t *testing.T) {
	rand := rand.New(rand.NewSource(2))
	for trial := 0; trial < 100; trial++ {
		symbols, weights := randomAlphabet(rand, 1+rand.Intn(60))

		hct, err := BuildHuffman(symbols, weights)
		if err != nil {
			t.Fatalf("trial %d: BuildHuffman failed: %v", trial, err)
		}
		sct, err := BuildShannonFano(symbols, weights)
		if err != nil {
			t.Fatalf("trial %d: BuildShannonFano failed: %v", trial, err)
		}

		checkPrefixFree(t, hct)
		checkPrefixFree(t, sct)

		h, s := hct.AverageLength(), sct.AverageLength()
		if h > s+1e-9 {
			t.Errorf("trial %d: Huffman average %v > Shannon-Fano average %v", trial, h, s)
		}

		entropy := hct.Entropy()
		if h < entropy-1e-9 || h >= entropy+1 {
			t.Errorf("trial %d: Huffman average %v outside [%v, %v)", trial, h, entropy, entropy+1)
		}

		for _, ct := range []*CodeTable[int]{hct, sct} {
			if kraft := ct.KraftSum(); kraft > 1+1e-12 {
				t.Errorf("trial %d: %v Kraft sum %v > 1", trial, ct.Algorithm(), kraft)
			}
		}

		// Every Huffman tree is full, so its code is complete.
		if len(symbols) > 1 {
			if kraft := hct.KraftSum(); kraft < 1-1e-12 {
				t.Errorf("trial %d: Huffman Kraft sum %v < 1", trial, kraft)
			}
		}
	}
}

func TestHuffman_Deterministic(t *testing.T) {
	symbols := []rune("abcdefgh")
	weights := []float64{0.125, 0.125, 0.125, 0.125, 0.125, 0.125, 0.125, 0.125}

	first, err := BuildHuffman(symbols, weights)
	if err != nil {
		t.Fatalf("BuildHuffman failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := BuildHuffman(symbols, weights)
		if err != nil {
			t.Fatalf("BuildHuffman failed: %v", err)
		}
		for _, symbol := range symbols {
			a, _ := first.Lookup(symbol)
			b, _ := again.Lookup(symbol)
			if a != b {
				t.Errorf("Lookup(%q): %s != %s", symbol, a, b)
			}
		}
	}
}

func TestHuffman_InputCopied(t *testing.T) {
	symbols := []string{"a", "b", "c", "d"}
	weights := []float64{0.125, 0.125, 0.25, 0.5}
	ct, err := BuildHuffman(symbols, weights)
	if err != nil {
		t.Fatalf("BuildHuffman failed: %v", err)
	}

	symbols[3] = "z"
	weights[3] = 0

	hc, err := ct.Lookup("d")
	if err != nil {
		t.Fatalf("Lookup failed after caller mutation: %v", err)
	}
	if hc.Len() != 1 {
		t.Errorf("expected length 1, got %s", hc)
	}
	if _, err := ct.Lookup("z"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}
