// Package cleaning implements the five table-cleaning stages:
// duplicate removal, missing-value handling, sparse-column pruning,
// column-name standardization and IQR outlier flagging.
//
// Each stage consumes the table it receives and returns the table for
// the next stage. The stages are stateless and single-threaded; the
// orchestrator in internal/pipeline fixes their order.
package cleaning
