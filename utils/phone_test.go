package utils

import "testing"

func TestIsValidKenyanPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"0722123456", true},
		{"+254722123456", true},
		{"0716000000", true},
		{"254722123456", false},
		{"0822123456", false},
		{"072212345", false},
		{"07221234567", false},
		{"+25472212345", false},
		{"", false},
		{"not a phone", false},
	}

	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			if got := IsValidKenyanPhone(tc.phone); got != tc.want {
				t.Errorf("IsValidKenyanPhone(%q) = %v, want %v", tc.phone, got, tc.want)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0722123456", "+254722123456"},
		{"+254722123456", "+254722123456"},
		{"0716000000", "+254716000000"},
	}

	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"email@example.com", "a.b@c.co.ke"}
	invalid := []string{"", "email", "email@", "@example.com", "a b@c.com"}

	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}
