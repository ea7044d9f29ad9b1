package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSuccessValue(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want bool
	}{
		{"boolean true", true, true},
		{"boolean false", false, false},
		{"string Paid", "Paid", true},
		{"string paid", "paid", true},
		{"string true", "true", true},
		{"string 1", "1", true},
		{"string success", "success", true},
		{"string successful", "successful", true},
		{"padded string", "  Paid  ", true},
		{"string pending", "pending", false},
		{"string failed", "failed", false},
		{"empty string", "", false},
		{"json number one", float64(1), true},
		{"json number zero", float64(0), false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := successValue(tc.in); got != tc.want {
				t.Errorf("successValue(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestHTTPStatusSource_Check(t *testing.T) {
	t.Run("string and boolean encodings are equivalent", func(t *testing.T) {
		for _, status := range []interface{}{true, "Paid"} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("reference"); got != "INV-1000" {
					t.Errorf("expected reference query param INV-1000, got %q", got)
				}
				json.NewEncoder(w).Encode(map[string]interface{}{
					"status":          status,
					"mpesa_reference": "QJ7X9",
				})
			}))

			source := NewHTTPStatusSource(server.URL, 5*time.Second)
			result, err := source.Check(context.Background(), "INV-1000")
			server.Close()

			if err != nil {
				t.Fatalf("unexpected error for status %v: %v", status, err)
			}
			if !result.Confirmed || result.TransactionCode != "QJ7X9" {
				t.Errorf("status %v: expected confirmed with QJ7X9, got %+v", status, result)
			}
		}
	})

	t.Run("missing record is not yet confirmed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		source := NewHTTPStatusSource(server.URL, 5*time.Second)
		result, err := source.Check(context.Background(), "INV-9")
		if err != nil {
			t.Fatalf("absence is not an error, got %v", err)
		}
		if result.Confirmed {
			t.Error("absent record must not confirm")
		}
	})

	t.Run("pending record is not yet confirmed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"status": false})
		}))
		defer server.Close()

		source := NewHTTPStatusSource(server.URL, 5*time.Second)
		result, err := source.Check(context.Background(), "INV-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Confirmed {
			t.Error("pending record must not confirm")
		}
	})

	t.Run("server error is a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		source := NewHTTPStatusSource(server.URL, 5*time.Second)
		if _, err := source.Check(context.Background(), "INV-9"); err == nil {
			t.Error("expected an error for a 500 response")
		}
	})
}
