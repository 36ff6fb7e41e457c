package amount

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1", Coin, false},
		{"0.01", Cent, false},
		{".0005", MinTxFee, false},
		{" 2.5 ", 250_000_000, false},
		{"0.00000001", 1, false},
		{"0.000000001", 0, true},
		{"", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"1.x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %d, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0.00"},
		{Coin, "1.00"},
		{Cent, "0.01"},
		{MinTxFee, "0.0005"},
		{123_456_789, "1.23456789"},
		{-Cent, "-0.01"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Fatalf("Format(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
