// Package framework contains the low-level pieces of test harness infrastructure
// that are not specific to the user API: logging and output capture.
//
// The general model is:
//
// 1. The harness communicates with a single remote service over HTTP, which it
// verifies is reachable on startup.
//
// 2. There is a general notion of a test scope which is similar to Go's
// testing.T, allowing pieces of test logic to be associated with a test
// identifier and to accumulate success/failure results.
//
// The domain-specific code that knows what is being tested is responsible for
// defining the requests to send to the remote service and the domain-specific
// test APIs on top of the test scope; see the apitests package.
package framework
