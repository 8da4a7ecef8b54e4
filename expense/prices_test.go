package expense

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodePrices(t *testing.T) {
	content := "name,price\nNetflix,15.49\nspotify, 10.99, usd\nHulu,7,\n"
	prices, err := DecodePrices(strings.NewReader(content), "prices.csv", "EUR")
	if err != nil {
		t.Fatalf("DecodePrices() unexpected error: %v", err)
	}

	testCases := []struct {
		name string
		want Money
	}{
		{"NETFLIX", M(15.49, "EUR")},
		{"Spotify", M(10.99, "USD")},
		{" hulu ", M(7, "EUR")},
	}
	for _, tc := range testCases {
		got, ok := prices.Lookup(tc.name)
		if !ok {
			t.Errorf("Lookup(%q) not found", tc.name)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("Lookup(%q) = %v %s, want %v %s", tc.name, got.Decimal(), got.Currency(), tc.want.Decimal(), tc.want.Currency())
		}
	}
	if _, ok := prices.Lookup("Disney"); ok {
		t.Error("Lookup(Disney) must not be found")
	}
}

func TestDecodePrices_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad amount", content: "Netflix,15.49\nHulu,cheap\n", wantErr: "prices.csv:2: invalid amount"},
		{name: "negative amount", content: "Netflix,-1\n", wantErr: "negative amount"},
		{name: "field count", content: "Netflix\n", wantErr: "want 2 or 3 fields got 1"},
		{name: "unknown currency", content: "Netflix,1,XYZ\n", wantErr: "unknown currency"},
		{name: "duplicate", content: "Netflix,1\nnetflix,2\n", wantErr: "already priced"},
		{name: "header is only skipped first", content: "Netflix,1\nname,price\n", wantErr: "invalid amount"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodePrices(strings.NewReader(tc.content), "prices.csv", "EUR")
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodePrices() error = %v, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadPrices(t *testing.T) {
	dir := t.TempDir()
	prices, err := LoadPrices(filepath.Join(dir, "missing.csv"), "EUR")
	if err != nil || len(prices) != 0 {
		t.Fatalf("LoadPrices(missing) = %v, %v; want empty", prices, err)
	}

	path := filepath.Join(dir, "prices.csv")
	if err := os.WriteFile(path, []byte("Netflix,15\n"), 0644); err != nil {
		t.Fatal(err)
	}
	prices, err = LoadPrices(path, "EUR")
	if err != nil {
		t.Fatalf("LoadPrices() unexpected error: %v", err)
	}
	if _, ok := prices.Lookup("netflix"); !ok {
		t.Error("Lookup(netflix) not found")
	}
}
