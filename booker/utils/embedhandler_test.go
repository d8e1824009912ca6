package utils

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "zero", amount: 0, want: "$0"},
		{name: "small", amount: 42, want: "$42"},
		{name: "thousands", amount: 1_234, want: "$1,234"},
		{name: "millions", amount: 1_000_000, want: "$1,000,000"},
		{name: "odd grouping", amount: 12_345_678, want: "$12,345,678"},
		{name: "negative", amount: -200_000, want: "-$200,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoney(tt.amount); got != tt.want {
				t.Errorf("FormatMoney(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestRatingColor(t *testing.T) {
	tests := []struct {
		name   string
		rating int
		want   int
	}{
		{name: "classic", rating: 97, want: RatingClassicColor},
		{name: "great", rating: 88, want: RatingGreatColor},
		{name: "good", rating: 75, want: RatingGoodColor},
		{name: "decent", rating: 55, want: RatingDecentColor},
		{name: "poor", rating: 30, want: RatingPoorColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RatingColor(tt.rating); got != tt.want {
				t.Errorf("RatingColor(%d) = %#x, want %#x", tt.rating, got, tt.want)
			}
		})
	}
}
