// Package mockapi provides an in-process stand-in for the remote user API,
// faithful to its observed behavior. The harness's own tests run the full
// test suite against it so they can pass without network access or a real
// app id.
package mockapi
