package subtrack

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// DecodeWideRows reads subscriptions from the legacy wide format and expands
// them into canonical records.
//
// A wide row holds an owner followed by any number of (name, payment day)
// pairs:
//
//	owner,name1,day1,name2,day2,...
//
// A trailing name without a payment day is dropped. A row with only an owner
// yields no record. filename is for error message only.
func DecodeWideRows(r io.Reader, filename string) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records := make([]Record, 0)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse error %q: %w", filename, err)
		}
		owner := row[0]
		for i := 1; i+1 < len(row); i += 2 {
			records = append(records, Record{Owner: owner, Name: row[i], PaymentDay: row[i+1]})
		}
	}
	return records, nil
}
