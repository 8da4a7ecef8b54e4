package payment

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
)

// Saved is the persisted part of a card.
type Saved struct {
	Owner  string
	Holder string
	Masked string
	Expiry string
}

// LoadCards reads the cards file at path. A missing file has no cards.
//
// The format is a CSV file with one row per owner: owner, holder, masked number
// and expiry.
func LoadCards(path string) ([]Saved, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load error: cannot read cards file %q: %w", path, err)
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = 4
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse error %q: %w", path, err)
	}
	cards := make([]Saved, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, Saved{Owner: row[0], Holder: row[1], Masked: row[2], Expiry: row[3]})
	}
	return cards, nil
}

// CardFor returns the card saved for owner in the cards file at path.
func CardFor(path, owner string) (Saved, bool, error) {
	cards, err := LoadCards(path)
	if err != nil {
		return Saved{}, false, err
	}
	for _, c := range cards {
		if c.Owner == owner {
			return c, true, nil
		}
	}
	return Saved{}, false, nil
}

// SaveCard records c as the card of owner in the cards file at path,
// replacing any previous card of owner. The card must have been validated.
func SaveCard(path, owner string, c Card) (Saved, error) {
	cards, err := LoadCards(path)
	if err != nil {
		return Saved{}, err
	}
	saved := Saved{Owner: owner, Holder: c.Holder, Masked: Mask(c.Number), Expiry: c.Expiry}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	replaced := false
	for _, old := range cards {
		if old.Owner == owner {
			if replaced {
				continue
			}
			old, replaced = saved, true
		}
		w.Write([]string{old.Owner, old.Holder, old.Masked, old.Expiry})
	}
	if !replaced {
		w.Write([]string{saved.Owner, saved.Holder, saved.Masked, saved.Expiry})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Saved{}, fmt.Errorf("persist error: %w", err)
	}
	if err := renameio.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return Saved{}, fmt.Errorf("persist error: cannot write cards file %q: %w", path, err)
	}
	return saved, nil
}
