// Package stylelog provides the two package-level loggers used
// throughout the style engine, mirroring the teacher's
// logger/logger.go: one for warnings (dropped declarations, unknown
// properties) and one for progress (one line per declaration block
// resolved).
package stylelog

import (
	"log"
	"os"
)

// Progress logs notable steps of style resolution; style.ApplyDeclarations
// writes one line per declaration block it resolves.
var Progress = log.New(os.Stdout, "style.progress: ", log.LstdFlags)

// Warning logs a non-fatal problem: an unknown property, an invalid
// value, or any other declaration dropped under the error-recovery
// policy described in spec.md §7.
var Warning = log.New(os.Stdout, "style.warning: ", log.Lmsgprefix)
