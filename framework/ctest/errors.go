package ctest

import (
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

// ErrorWithStacktrace is a failure message annotated with the call stack of the
// assertion that produced it, filtered down to the harness's own test code.
type ErrorWithStacktrace struct {
	Message    string
	Stacktrace []StackFrame
}

// StackFrame is one level of harness code in a failure's call stack. Function
// includes the package path relative to the module root; File is the base name.
type StackFrame struct {
	Function string
	File     string
	Line     int
}

func (e ErrorWithStacktrace) Error() string { return e.Message }

func (f StackFrame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

var errorTraceInMessageRegex = regexp.MustCompile(`^(?s:\s*Error Trace:.*\sError:\s*)`)

// transformError attaches the captured stacktrace to an error, and also strips
// out any stacktrace information that the testify/assert or testify/require
// functions may have embedded in the error message.
func transformError(err error, stacktrace []StackFrame) error {
	message := err.Error()
	if strings.Contains(message, "Error Trace:") {
		message = strings.TrimSpace(errorTraceInMessageRegex.ReplaceAllLiteralString(message, ""))
	}
	if len(stacktrace) == 0 {
		return errors.New(message)
	}
	return ErrorWithStacktrace{Message: message, Stacktrace: stacktrace}
}

func currentPackageName() string {
	pc, _, _, ok := runtime.Caller(0)
	if !ok {
		return "?"
	}
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "?"
	}
	packageName, _ := splitFuncName(f.Name())
	return packageName
}

func modulePathPrefix() string {
	parts := strings.Split(currentPackageName(), "/")
	if len(parts) < 3 {
		return currentPackageName()
	}
	return strings.Join(parts[0:3], "/")
}

// captureStacktrace walks the call stack of a test failure and keeps only the
// frames that belong to this module, so a failure points straight at the test
// code that raised it rather than at assertion library internals. Frames in
// this package, and any functions named in helperFns, are dropped too; the
// walk ends at Run, the root of every test scope.
func captureStacktrace(helperFns []string) []StackFrame {
	ownPackage := currentPackageName()
	modulePrefix := modulePathPrefix()
	frames := []StackFrame{}
FrameLoop:
	for i := 1; ; i++ { // start at 1 because 0 would just be captureStacktrace itself
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		f := runtime.FuncForPC(pc)
		if f == nil {
			break
		}
		packageName, functionName := splitFuncName(f.Name())
		if packageName == ownPackage {
			if functionName == "Run" {
				break
			}
			continue
		}
		if !strings.HasPrefix(packageName, modulePrefix) {
			continue // assertion helpers, matchers, Go runtime
		}
		for _, helperFn := range helperFns {
			if helperFn == f.Name() {
				continue FrameLoop
			}
		}
		if slash := strings.LastIndex(file, "/"); slash >= 0 {
			file = file[slash+1:]
		}
		displayPackage := strings.TrimPrefix(packageName, modulePrefix+"/")
		frames = append(frames, StackFrame{
			Function: displayPackage + "." + functionName,
			File:     file,
			Line:     line,
		})
	}
	return frames
}

func splitFuncName(fullName string) (packageName, functionName string) {
	lastSlash := strings.LastIndex(fullName, "/")
	firstDotAfterSlash := strings.Index(fullName[lastSlash+1:], ".")
	packageName = fullName[0 : lastSlash+firstDotAfterSlash+1]
	functionName = fullName[len(packageName)+1:]
	return
}
