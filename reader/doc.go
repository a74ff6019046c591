// Package reader loads tables from files.
//
// Two input formats are supported:
//
//   - Text: the first line holds comma-separated column names and every
//     following line one comma-separated row. There is no quoting; empty
//     fields (including trailing ones) are kept as empty cells.
//   - Parquet: every leaf column becomes a table column, values rendered
//     as strings and nulls as empty cells.
//
// Text inputs may be compressed; the codec is chosen by file extension
// (.gz, .zst, .lz4, .br).
//
// # Basic Usage
//
// Reading a single file:
//
//	t, err := reader.Load("people.csv.gz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decoding text already in memory:
//
//	t, err := reader.ParseText("Name,Age\nAlice,30\nBob,25")
//
// # Multi-file Operations
//
// Reading multiple files using glob patterns:
//
//	t, err := reader.LoadMultiple("data/2024-*.csv")
//
// All matched files must share the same header. Rows are concatenated in
// match order and tagged with a trailing "_file" column holding the
// source path.
//
// # Named Sources
//
// A Catalog maps short names to paths, loads each source at most once and
// can be handed to query.Parse as its Resolver:
//
//	cat := reader.NewCatalog()
//	cat.Register("people", "testdata/people.csv")
//	q, err := query.Parse("filter(Age > 26, people)", cat)
package reader
