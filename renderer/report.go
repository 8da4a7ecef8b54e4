package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/etnz/subtrack"
	"github.com/etnz/subtrack/date"
	"github.com/etnz/subtrack/expense"
)

// ExpenseReport renders the expense summary of owner as markdown.
func ExpenseReport(owner string, s expense.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expenses of %s", owner))

	if len(s.Items) == 0 {
		doc.PlainText("No priced subscriptions.")
	} else {
		rows := make([][]string, 0, len(s.Items))
		for _, item := range s.Items {
			rows = append(rows, []string{item.Name, item.PaymentDay, item.Price.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Subscription", "Payment Day", "Monthly"},
			Rows:   rows,
		})

		doc.H2("Totals")
		yearly := s.Yearly()
		rows = make([][]string, 0, len(s.Monthly))
		for i, m := range s.Monthly {
			rows = append(rows, []string{m.Currency(), m.String(), yearly[i].String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Currency", "Monthly", "Yearly"},
			Rows:   rows,
		})
	}

	if len(s.Unpriced) > 0 {
		doc.H2("Unpriced")
		doc.PlainText("These subscriptions are missing from the price list:")
		doc.BulletList(names(s.Unpriced)...)
	}
	return doc.String()
}

// ReminderReport renders the upcoming payments of a reminder window as markdown.
func ReminderReport(from date.Date, window int, reminders []subtrack.Reminder, skipped []subtrack.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Payments due %s", date.Window(from, window)))

	if len(reminders) == 0 {
		doc.PlainText(fmt.Sprintf("Nothing due in the next %d days.", window))
	} else {
		rows := make([][]string, 0, len(reminders))
		for _, r := range reminders {
			rows = append(rows, []string{r.Name, r.Due.String(), inDays(r.Days)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Subscription", "Due", "In"},
			Rows:   rows,
		})
	}

	if len(skipped) > 0 {
		doc.H2("Unscheduled")
		doc.PlainText("These payment days are not a day of month:")
		items := make([]string, 0, len(skipped))
		for _, r := range skipped {
			items = append(items, fmt.Sprintf("%s (%q)", r.Name, r.PaymentDay))
		}
		doc.BulletList(items...)
	}
	return doc.String()
}

func inDays(n int) string {
	switch n {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return strconv.Itoa(n) + " days"
	}
}

func names(records []subtrack.Record) []string {
	list := make([]string, 0, len(records))
	for _, r := range records {
		list = append(list, strings.TrimSpace(r.Name))
	}
	return list
}
