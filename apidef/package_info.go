// Package apidef contains the wire-level definition of the user API that the
// harness tests against: endpoint paths, header names, request and response
// types, and the field names and error messages that the contract scenarios
// assert on. Nothing here performs any I/O.
package apidef
