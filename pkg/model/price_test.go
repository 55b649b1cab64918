package model

import (
	"testing"
)

func mustPrice(t *testing.T, s string) Price {
	t.Helper()
	p, err := ParsePrice(s)
	if err != nil {
		t.Fatalf("ParsePrice(%q) failed: %v", s, err)
	}
	return p
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "whole amount", input: "100"},
		{name: "two decimal places", input: "99.99"},
		{name: "many decimal places", input: "0.001"},
		{name: "negative", input: "-5.00"},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePrice(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("ParsePrice(%q) expected error, got nil", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ParsePrice(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestPriceForNights_ExactArithmetic(t *testing.T) {
	tests := []struct {
		name          string
		pricePerNight string
		nights        int
		want          string
	}{
		{name: "whole price", pricePerNight: "100", nights: 3, want: "300"},
		{name: "cents survive multiplication", pricePerNight: "100.10", nights: 3, want: "300.30"},
		{name: "float hostile value", pricePerNight: "0.10", nights: 3, want: "0.30"},
		{name: "single night", pricePerNight: "149.99", nights: 1, want: "149.99"},
		{name: "long stay", pricePerNight: "88.88", nights: 30, want: "2666.40"},
		{name: "zero nights", pricePerNight: "100", nights: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PriceForNights(mustPrice(t, tt.pricePerNight), tt.nights)
			if !got.Equal(mustPrice(t, tt.want)) {
				t.Errorf("PriceForNights(%s, %d) = %s, want %s",
					tt.pricePerNight, tt.nights, got.Decimal, tt.want)
			}
		})
	}
}

func TestPrice_IsPositive(t *testing.T) {
	if !mustPrice(t, "0.01").IsPositive() {
		t.Errorf("0.01 should be positive")
	}
	if mustPrice(t, "0").IsPositive() {
		t.Errorf("0 should not be positive")
	}
	if mustPrice(t, "-10").IsPositive() {
		t.Errorf("-10 should not be positive")
	}
}
