// Package pipeline orchestrates the single-pass cleaning run: path
// validation, loading, the five cleaning steps in fixed order, and the
// final CSV export. Each step exclusively owns the table for the
// duration of its call; ownership transfers to the next step on return.
// The run is single-threaded and synchronous, and any step failure is
// fatal to the whole run.
package pipeline
