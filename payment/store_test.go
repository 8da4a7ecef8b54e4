package payment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSaveCard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")
	card := Card{Holder: "Alice Doe", Number: "4111111111111111", Expiry: "06/30", CVV: "987"}

	if _, err := SaveCard(path, "alice", card); err != nil {
		t.Fatalf("SaveCard() unexpected error: %v", err)
	}
	if _, err := SaveCard(path, "bob", Card{Holder: "Bob", Number: "5555555555554444", Expiry: "01/29"}); err != nil {
		t.Fatalf("SaveCard() unexpected error: %v", err)
	}
	// Replacing alice's card keeps a single row for her.
	card.Number = "378282246310005"
	if _, err := SaveCard(path, "alice", card); err != nil {
		t.Fatalf("SaveCard() unexpected error: %v", err)
	}

	cards, err := LoadCards(path)
	if err != nil {
		t.Fatalf("LoadCards() unexpected error: %v", err)
	}
	want := []Saved{
		{Owner: "alice", Holder: "Alice Doe", Masked: "***********0005", Expiry: "06/30"},
		{Owner: "bob", Holder: "Bob", Masked: "************4444", Expiry: "01/29"},
	}
	if diff := cmp.Diff(want, cards); diff != "" {
		t.Errorf("LoadCards() mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "987") || strings.Contains(string(data), "378282246310005") {
		t.Errorf("cards file leaks card secrets: %q", data)
	}

	got, ok, err := CardFor(path, "bob")
	if err != nil || !ok || got.Masked != "************4444" {
		t.Errorf("CardFor(bob) = %v, %v, %v", got, ok, err)
	}
	if _, ok, _ := CardFor(path, "carol"); ok {
		t.Error("CardFor(carol) must not be found")
	}
}

func TestLoadCards_Missing(t *testing.T) {
	cards, err := LoadCards(filepath.Join(t.TempDir(), "cards.csv"))
	if err != nil || len(cards) != 0 {
		t.Errorf("LoadCards(missing) = %v, %v; want empty", cards, err)
	}
}
