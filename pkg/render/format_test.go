package render

import (
	"testing"
	"time"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0,00 Kz"},
		{in: 450, want: "450,00 Kz"},
		{in: 750, want: "750,00 Kz"},
		{in: 1234.5, want: "1.234,50 Kz"},
		{in: 1234567.89, want: "1.234.567,89 Kz"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 3, want: "3"},
		{in: 2.5, want: "2,5"},
		{in: 0.125, want: "0,125"},
	}
	for _, tt := range tests {
		if got := FormatQuantity(tt.in); got != tt.want {
			t.Errorf("FormatQuantity(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "05/03/2026" {
		t.Errorf("FormatDate = %q, want 05/03/2026", got)
	}
}
