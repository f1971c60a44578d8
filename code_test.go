package prefixcode

import (
	"testing"
)

func TestCode(t *testing.T) {
	type testRow struct {
		size     byte
		bits     uint64
		str      string
		reversed string
	}

	testData := [...]testRow{
		{size: 0, bits: 0x00, str: `""`, reversed: `""`},
		{size: 1, bits: 0x01, str: `"1"`, reversed: `"1"`},
		{size: 3, bits: 0x01, str: `"100"`, reversed: `"001"`},
		{size: 4, bits: 0x0e, str: `"0111"`, reversed: `"1110"`},
		{size: 40, bits: 1 << 39, str: `"0000000000000000000000000000000000000001"`, reversed: `"1000000000000000000000000000000000000000"`},
	}
	for _, row := range testData {
		hc := MakeCode(row.size, row.bits)
		t.Run(hc.String(), func(t *testing.T) {
			if actual := hc.String(); actual != row.str {
				t.Errorf("String: expected %s, got %s", row.str, actual)
			}
			if actual := hc.Reversed().String(); actual != row.reversed {
				t.Errorf("Reversed: expected %s, got %s", row.reversed, actual)
			}
			if actual := MakeReversedCode(row.size, row.bits).String(); actual != row.reversed {
				t.Errorf("MakeReversedCode: expected %s, got %s", row.reversed, actual)
			}
			if hc.Len() != int(row.size) {
				t.Errorf("Len: expected %d, got %d", row.size, hc.Len())
			}
		})
	}
}

func TestCode_Tree(t *testing.T) {
	hc := MustParseCode("0110")

	if actual := hc.Parent(); actual != MustParseCode("011") {
		t.Errorf("Parent: expected \"011\", got %s", actual)
	}
	if actual := hc.Sibling(); actual != MustParseCode("0111") {
		t.Errorf("Sibling: expected \"0111\", got %s", actual)
	}
	if actual := hc.Append(1); actual != MustParseCode("01101") {
		t.Errorf("Append: expected \"01101\", got %s", actual)
	}
	if actual := (Code{}).Parent(); actual != (Code{}) {
		t.Errorf("Parent of empty: expected \"\", got %s", actual)
	}
	if hc.Bit(0) != 0 || hc.Bit(1) != 1 || hc.Bit(3) != 0 {
		t.Errorf("Bit: wrong bits for %s", hc)
	}

	if !hc.HasPrefix(MustParseCode("01")) {
		t.Errorf("expected \"01\" to be a prefix of %s", hc)
	}
	if !hc.HasPrefix(Code{}) {
		t.Errorf("expected \"\" to be a prefix of %s", hc)
	}
	if hc.HasPrefix(MustParseCode("1")) {
		t.Errorf("expected \"1\" not to be a prefix of %s", hc)
	}
}

func TestParseCode_Invalid(t *testing.T) {
	for _, str := range []string{"2", "01x", " 0"} {
		if _, err := ParseCode(str); err == nil {
			t.Errorf("ParseCode(%q): expected error", str)
		}
	}
}

func TestMakeCode_TooLong(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MakeCode(65, 0): expected panic")
		}
	}()
	MakeCode(65, 0)
}
