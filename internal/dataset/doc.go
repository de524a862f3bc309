// Package dataset defines the in-memory table model shared by every
// stage of the cleaning pipeline.
//
// A Table is an ordered sequence of named columns; each column carries
// a Kind tag (numeric, text, boolean, temporal) assigned once at load
// time by InferKind. Cleaning stages dispatch on the tag instead of
// re-inspecting cell values, so classification decisions are made in
// exactly one place.
//
// # Ownership
//
// Tables are mutated in place, but each pipeline stage exclusively owns
// the table for the duration of its call and hands it to the next stage
// on return. Nothing retains a table reference after passing it on, so
// no aliasing or locking is required.
//
// # Missing values
//
// A null cell has Cell.Null set; its Raw and Num fields are
// meaningless. The textual markers "", "na", "n/a", "nan" and "null"
// (case-insensitive) denote missing values at load time, and null cells
// export as empty strings.
package dataset
