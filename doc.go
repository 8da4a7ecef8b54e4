// Package subtrack keeps track of recurring subscriptions for the users of a
// terminal application. It is local-first: every subscription lives in a plain
// CSV file that can be read and edited by hand.
//
// The core functionalities include:
//   - Record Store: loading, mutating and rewriting the subscriptions file,
//     one (owner, name, payment day) row per subscription.
//   - Search: exact, case-insensitive lookup of subscriptions by name or by
//     payment day.
//   - Reminders: computing the next due date of each subscription from its
//     payment day.
//   - Legacy import: expanding the old wide-row files into canonical records.
//
// This package serves as the foundational logic for the `subtrack`
// command-line tool.
package subtrack
