// Package cashbook implements a personal transaction ledger: a canonical
// record store persisted to a flat CSV file, filtered views over it,
// reconciliation of view edits back onto the store by stable identity,
// a bounded snapshot undo history, and income/expense/budget aggregation.
package cashbook
