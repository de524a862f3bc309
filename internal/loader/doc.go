// Package loader reads dataset files into typed tables, dispatching on
// the file extension: .csv, .xlsx, .xls, .json, .parquet.
package loader
