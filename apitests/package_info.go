// Package apitests contains the contract test suite for the remote user API.
//
// Each test gets a scope (ctest.T) from which it derives a UsersClient; all
// users a test creates are recorded in a ResourceTracker and deleted again
// when the test scope ends, so that tests leave the remote collection the
// way they found it.
package apitests
