package handlers

import (
	"fmt"
	"testing"

	"github.com/divan/num2words"
)

func TestEvaluateAmount(t *testing.T) {
	tests := []struct {
		name     string
		formula  string
		price    float64
		siblings int
		want     float64
		wantErr  bool
	}{
		{name: "empty formula charges price", formula: "", price: 3000, want: 3000},
		{name: "whitespace formula charges price", formula: "   ", price: 3000, want: 3000},
		{name: "half price", formula: "price * 0.5", price: 3000, want: 1500},
		{name: "flat discount", formula: "price - 500", price: 3000, want: 2500},
		{name: "sibling discount", formula: "price - siblings * 250", price: 3000, siblings: 2, want: 2500},
		{name: "broken syntax", formula: "price *", price: 3000, wantErr: true},
		{name: "unknown variable", formula: "price - loyalty", price: 3000, wantErr: true},
		{name: "negative result rejected", formula: "price - 5000", price: 3000, wantErr: true},
		{name: "non-numeric result rejected", formula: "price > 100", price: 3000, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluateAmount(tt.formula, tt.price, tt.siblings)
			if (err != nil) != tt.wantErr {
				t.Fatalf("evaluateAmount(%q) error = %v, wantErr %v", tt.formula, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("evaluateAmount(%q) = %v, want %v", tt.formula, got, tt.want)
			}
		})
	}
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "whole amount", amount: 1500, want: num2words.Convert(1500) + " dinars"},
		{name: "zero", amount: 0, want: num2words.Convert(0) + " dinars"},
		{
			name:   "with centimes",
			amount: 2500.50,
			want:   fmt.Sprintf("%s dinars 50 centimes", num2words.Convert(2500)),
		},
		{
			name:   "centimes rounding carries into dinars",
			amount: 99.999,
			want:   num2words.Convert(100) + " dinars",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := amountInWords(tt.amount); got != tt.want {
				t.Errorf("amountInWords(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
