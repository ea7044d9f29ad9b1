package models

import "testing"

func TestIsValidTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusPaid, true},
		{StatusPending, StatusConfirmed, true},
		{StatusPaid, StatusClaimed, true},
		{StatusConfirmed, StatusClaimed, true},
		{StatusPaid, StatusPending, false},
		{StatusClaimed, StatusPaid, false},
		{StatusClaimed, StatusClaimed, false},
		{StatusPending, StatusClaimed, false},
		{"unknown", StatusPaid, false},
	}

	for _, tc := range cases {
		if got := IsValidTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("IsValidTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
