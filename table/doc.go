// Package table implements the immutable in-memory table and the
// per-table operations of the query engine.
//
// A Table is an ordered list of column names plus an ordered list of rows,
// each row holding exactly one string cell per column. Every operation
// returns a new Table and leaves its receiver untouched:
//
//   - Select projects, reorders or duplicates columns
//   - Filter keeps rows whose condition evaluates to cond.True
//   - NewColumn appends a column filled with a default value
//   - Merge performs a key-based full outer join
//
// Failures are reported as errors wrapping one of the package sentinels
// (ErrMissingColumn, ErrEmptyFilterResult, ErrMissingKey, ErrRowWidth) so
// callers can distinguish them with errors.Is.
package table
