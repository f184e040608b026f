package apitests

import (
	"github.com/dummyapi/user-api-contract-tests/framework/ctest"
	"github.com/dummyapi/user-api-contract-tests/framework/harness"
)

type APITestContext struct {
	service *harness.TargetService
}

func requireContext(t *ctest.T) APITestContext {
	if c, ok := t.Context().(APITestContext); ok {
		return c
	}
	panic("APITestContext was not included in the global test configuration!" +
		" (This is a basic mistake in the setup logic in the test suite entry point.)")
}
