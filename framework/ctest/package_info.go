// Package ctest provides the contract-test scope abstraction used by all of the
// harness's test logic. It plays the same role as Go's testing package: a test
// scope type (T) with subtests, failure accumulation, skipping, deferred
// cleanup, and pluggable reporting (console and JUnit XML).
//
// Unlike the testing package, tests are declared and run programmatically by
// the harness process itself, because the set of scenarios is fixed and the
// harness needs full control over filtering and result reporting.
package ctest
