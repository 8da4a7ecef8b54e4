// Package renderer formats subscriptions, reminders and expenses for the terminal.
package renderer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/etnz/subtrack"
)

// NoResults is rendered instead of an empty table.
const NoResults = "No results found."

// RecordHeaders are the column titles of a table of subscriptions.
var RecordHeaders = []string{"Username", "Subscription Name", "Payment Day"}

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table renders rows as an aligned grid under headers. Rows are expected to
// have as many cells as headers. When there are no rows it returns NoResults.
func Table(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return NoResults
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

// RecordRows returns the table rows of records, one per record.
func RecordRows(records []subtrack.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Owner, r.Name, r.PaymentDay})
	}
	return rows
}

// Records renders records as a table.
func Records(records []subtrack.Record) string {
	return Table(RecordHeaders, RecordRows(records))
}
