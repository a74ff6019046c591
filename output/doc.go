// Package output renders tables in the formats supported by tabq.
//
// Supported formats:
//   - text: the plain comma-joined encoding read back by reader.ParseText
//   - csv: RFC 4180 CSV with spreadsheet formula sanitising
//   - jsonl: one JSON object per row, keys in column order
//   - table: an aligned table for terminals
//   - parquet: a Parquet file with one required string column per table column
//
// Example usage:
//
//	f, err := output.New("jsonl", os.Stdout, output.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := f.Format(t); err != nil {
//	    log.Fatal(err)
//	}
package output
