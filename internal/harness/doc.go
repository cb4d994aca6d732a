// Package harness provides golden snapshot helpers for resolution
// tests.
//
// Snapshots are canonical JSON and live under testdata/golden/. To
// regenerate them after an intentional behavior change, run the
// owning package's tests with -update.
package harness
