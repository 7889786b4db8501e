package rlajson

import (
	"testing"
)

var decimalTests = []struct {
	Name string
	Val  float64
	Want string
}{
	{
		Name: "Zero",
		Val:  0.0,
		Want: "0",
	},
	{
		Name: "Typical risk value",
		Val:  0.034521,
		Want: "0.034521",
	},
	{
		Name: "Exactly one",
		Val:  1.0,
		Want: "1",
	},
	{
		Name: "Negative integer",
		Val:  -5678.0,
		Want: "-5678",
	},
	{
		Name: "Exponent bound 1e-6",
		Val:  1e-6,
		Want: "0.000001",
	},
	{
		Name: "Exponent bound 1e-7",
		Val:  1e-7,
		Want: "1e-7",
	},
	{
		Name: "Clean up e-09 to e-9",
		Val:  2.236734e-9,
		Want: "2.236734e-9",
	},
	{
		Name: "Exponent bound 1e20",
		Val:  1e20,
		Want: "100000000000000000000",
	},
	{
		Name: "Exponent bound 1e21",
		Val:  1e+21,
		Want: "1e+21",
	},
}

func TestAppendDecimal(t *testing.T) {
	for _, tc := range decimalTests {
		t.Run(tc.Name, func(t *testing.T) {
			b := appendDecimal(nil, tc.Val)
			if s := string(b); tc.Want != s {
				t.Errorf("got %q, want %q", s, tc.Want)
			}
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	for _, tc := range decimalTests {
		t.Run(tc.Name, func(t *testing.T) {
			if got := formatDecimal(tc.Val); got != tc.Want {
				t.Errorf("got %q, want %q", got, tc.Want)
			}
		})
	}
}
