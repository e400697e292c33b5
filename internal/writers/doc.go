// Package writers turns compiled results into files or stdout.
//
// Results are rendered in memory first and written in one step, so a
// failing run never leaves a partial output file behind.
package writers
