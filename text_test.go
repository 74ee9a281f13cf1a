package numlist

import (
	"fmt"
	"math/big"
	"reflect"
	"testing"
)

func TestParseDecimalText(t *testing.T) {

	testSpec := []struct {
		text    string
		numeral []int
	}{
		{"123", []int{1, 2, 3}},
		{"  42\n", []int{4, 2}},
		{"+7", []int{7}},
		{"0007", []int{7}},
		{"0", []int{0}},
		{"", []int{0}},
		{"   ", []int{0}},
		{"-5", []int{}},
		{"-0", []int{}},
		{"12a", []int{}},
		{"+", []int{}},
		{"+-5", []int{}},
		{"1 2", []int{}},
		{"0x10", []int{}},
		{"1_000", []int{}},
	}

	for idx, spec := range testSpec {
		sampleNumber := idx + 1
		t.Run(fmt.Sprintf("Sample%d", sampleNumber), func(t *testing.T) {
			s := ParseDecimalText(spec.text)
			if s.Radix() != DecimalRadix {
				t.Fatalf("expected radix %d got %d", DecimalRadix, s.Radix())
			}
			if !reflect.DeepEqual(spec.numeral, s.Values()) {
				t.Fatalf("ParseDecimalText(%q) = %v, want %v", spec.text, s.Values(), spec.numeral)
			}
		})
	}
}

func TestRenderDecimalText(t *testing.T) {
	if got := RenderDecimalText(ParseDecimalText("98765432109876543210")); got != "98765432109876543210" {
		t.Fatalf("unexpected text %s", got)
	}
	if got := RenderDecimalText(ParseDecimalText("-1")); got != "0" {
		t.Fatalf("empty sequence should render as 0, got %s", got)
	}
	s, err := Encode(big.NewInt(10), 3)
	if err != nil {
		t.Fatalf("error in Encode: %s", err)
	}
	if got := RenderDecimalText(s); got != "10" {
		t.Fatalf("expected 10 got %s", got)
	}
	if got := RenderRadixText(s); got != "101" {
		t.Fatalf("expected 101 got %s", got)
	}
}
