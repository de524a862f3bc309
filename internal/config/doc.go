// Package config centralizes runtime configuration: logging, output
// paths and the cleaning policy knobs (sparse-column threshold, IQR
// multiplier). Values come from struct defaults, an optional YAML file
// and TABSCRUB_* environment variables, in increasing precedence. The
// defaults need no environment at all.
package config
