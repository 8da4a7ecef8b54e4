package subtrack

import "strings"

// Search returns the records whose name or payment day equals term, ignoring
// case and the spaces around term. Partial matches are not returned: "net"
// does not match "Netflix".
func Search(records []Record, term string) []Record {
	term = strings.TrimSpace(term)
	matches := make([]Record, 0)
	for _, r := range records {
		if strings.EqualFold(r.Name, term) || strings.EqualFold(r.PaymentDay, term) {
			matches = append(matches, r)
		}
	}
	return matches
}
