package expense

import (
	"testing"

	"github.com/etnz/subtrack"
	"github.com/google/go-cmp/cmp"
)

func TestAnalyze(t *testing.T) {
	records := []subtrack.Record{
		{Owner: "alice", Name: "Netflix", PaymentDay: "15"},
		{Owner: "alice", Name: "Spotify", PaymentDay: "1"},
		{Owner: "alice", Name: "Gym", PaymentDay: "3"},
		{Owner: "alice", Name: "Cloud", PaymentDay: "20"},
	}
	prices := Prices{
		"netflix": M(15.49, "EUR"),
		"spotify": M(10.99, "EUR"),
		"cloud":   M(2.99, "USD"),
	}

	s := Analyze(records, prices)

	var names []string
	for _, item := range s.Items {
		names = append(names, item.Name)
	}
	if diff := cmp.Diff([]string{"Netflix", "Spotify", "Cloud"}, names); diff != "" {
		t.Errorf("priced items mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]subtrack.Record{records[2]}, s.Unpriced); diff != "" {
		t.Errorf("unpriced mismatch (-want +got):\n%s", diff)
	}

	if len(s.Monthly) != 2 {
		t.Fatalf("got %d monthly totals, want 2", len(s.Monthly))
	}
	if !s.Monthly[0].Equal(M(26.48, "EUR")) {
		t.Errorf("monthly EUR total = %v %s, want 26.48 EUR", s.Monthly[0].Decimal(), s.Monthly[0].Currency())
	}
	if !s.Monthly[1].Equal(M(2.99, "USD")) {
		t.Errorf("monthly USD total = %v %s, want 2.99 USD", s.Monthly[1].Decimal(), s.Monthly[1].Currency())
	}
	if yearly := s.Yearly(); !yearly[0].Equal(M(317.76, "EUR")) {
		t.Errorf("yearly EUR total = %v, want 317.76", yearly[0].Decimal())
	}
}

func TestAnalyze_Empty(t *testing.T) {
	s := Analyze(nil, Prices{})
	if len(s.Items) != 0 || len(s.Unpriced) != 0 || len(s.Monthly) != 0 {
		t.Errorf("Analyze(nil) = %+v, want an empty summary", s)
	}
}
