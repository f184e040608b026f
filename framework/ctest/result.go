package ctest

import (
	"strings"
)

// Results accumulates the outcome of every test scope in a run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID TestID
	Errors []error
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r TestResult) Failed() bool {
	return len(r.Errors) != 0
}

// TestID is a hierarchical test name, one element per test scope.
type TestID []string

func (t TestID) String() string {
	return strings.Join(t, "/")
}

func (t TestID) Plus(name string) TestID {
	return append(append(TestID(nil), t...), name)
}
