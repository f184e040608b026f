package ctest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformErrorStripsTestifyTrace(t *testing.T) {
	raw := errors.New("\n\tError Trace:\tsomething_test.go:10\n\t            \tscope.go:20\n\tError:      \tvalues are not equal")
	err := transformError(raw, nil)
	assert.Equal(t, "values are not equal", err.Error())
}

func TestTransformErrorAttachesStacktrace(t *testing.T) {
	frames := []StackFrame{{Function: "apitests.doThing", File: "tests_things.go", Line: 12}}
	err := transformError(errors.New("oops"), frames)
	var ews ErrorWithStacktrace
	assert.True(t, errors.As(err, &ews))
	assert.Equal(t, "oops", ews.Message)
	assert.Equal(t, frames, ews.Stacktrace)
}

func TestStackFrameString(t *testing.T) {
	f := StackFrame{Function: "apitests.doThing", File: "tests_things.go", Line: 12}
	assert.Equal(t, "apitests.doThing (tests_things.go:12)", f.String())
}

func TestCaptureStacktraceExcludesFrameworkAndRuntimeCode(t *testing.T) {
	// Every caller above this point is either in this package or outside the
	// module (the Go test runner), so nothing should be captured.
	stack := captureStacktrace(nil)
	assert.Empty(t, stack)
}

func TestSplitFuncName(t *testing.T) {
	pkg, fn := splitFuncName("github.com/dummyapi/user-api-contract-tests/apitests.doThing")
	assert.Equal(t, "github.com/dummyapi/user-api-contract-tests/apitests", pkg)
	assert.Equal(t, "doThing", fn)

	pkg, fn = splitFuncName("github.com/dummyapi/user-api-contract-tests/framework/ctest.(*T).run")
	assert.Equal(t, "github.com/dummyapi/user-api-contract-tests/framework/ctest", pkg)
	assert.Equal(t, "(*T).run", fn)
}
