package util

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct{ v, want int }{{-1, 0}, {0, 0}, {2, 2}, {3, 3}, {9, 3}}
	for _, tc := range cases {
		if got := Clamp(tc.v, 0, 3); got != tc.want {
			t.Fatalf("Clamp(%d) = %d, want %d", tc.v, got, tc.want)
		}
	}
}

func TestWrap(t *testing.T) {
	cases := []struct{ v, d, want int }{
		{0, 1, 1},
		{3, 1, 0},
		{0, -1, 3},
		{2, 5, 3},
	}
	for _, tc := range cases {
		if got := Wrap(tc.v, tc.d, 0, 3); got != tc.want {
			t.Fatalf("Wrap(%d, %d) = %d, want %d", tc.v, tc.d, got, tc.want)
		}
	}
}
