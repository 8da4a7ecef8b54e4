package subtrack

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// canonicalFields is the number of fields in a row of the subscriptions file:
// owner, name and payment day, in that order.
const canonicalFields = 3

// DecodeRecords reads canonical subscription rows from r.
//
// The format is a CSV file with no header and exactly three fields per row:
// owner, subscription name and payment day. Blank lines are ignored.
// filename is for error message only.
func DecodeRecords(r io.Reader, filename string) ([]Record, error) {
	cr := csv.NewReader(r)
	// field count is checked below to report a MalformedRowError instead of csv.ErrFieldCount.
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
		if len(row) != canonicalFields {
			line, _ := cr.FieldPos(0)
			return nil, &MalformedRowError{File: filename, Line: line, Fields: len(row)}
		}
		records = append(records, Record{Owner: row[0], Name: row[1], PaymentDay: row[2]})
	}
	return records, nil
}

// EncodeRecords writes records to w as canonical rows, in order.
//
// A field holding a carriage return fails with ErrInvalidRecord: the reader
// turns a quoted "\r\n" into "\n", so such a record would not read back.
func EncodeRecords(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	for _, rec := range records {
		for _, field := range rec.row() {
			if strings.ContainsRune(field, '\r') {
				return fmt.Errorf("%w: subscription %v: %q contains a carriage return", ErrInvalidRecord, rec, field)
			}
		}
		if err := cw.Write(rec.row()); err != nil {
			return fmt.Errorf("persist error: cannot write subscription %v: %w", rec, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("persist error: cannot write to file: %w", err)
	}
	return nil
}
