package apitests

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dummyapi/user-api-contract-tests/apidef"
	"github.com/dummyapi/user-api-contract-tests/framework/ctest"
	"github.com/dummyapi/user-api-contract-tests/framework/harness"
	"github.com/dummyapi/user-api-contract-tests/mockapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSuiteAgainstMockService runs the complete contract test suite against
// the in-process mock service. Since the mock reproduces the remote
// contract, every scenario is expected to pass.
func TestSuiteAgainstMockService(t *testing.T) {
	service := mockapi.NewUsersService("fake-app-id", nil)
	// enough stored users that the page-size scenario has a full page to assert on
	service.SeedUsers(12)
	server := httptest.NewServer(service)
	defer server.Close()

	headers := make(http.Header)
	headers.Set(apidef.HeaderAppID, "fake-app-id")
	client := harness.NewRESTClient(server.URL, headers, nil)
	target, err := harness.NewTargetService(client, time.Second, io.Discard)
	require.NoError(t, err)

	results := RunAPITestSuite(target, ctest.RegexFilters{}, nil)

	for _, failure := range results.Failures {
		t.Errorf("scenario %q failed: %v", failure.TestID, failure.Errors)
	}
	assert.True(t, results.OK())
	assert.NotEmpty(t, results.Tests)

	// the suite cleans up after itself: only the seeded users remain
	assert.Equal(t, 12, service.UserCount())
}

func TestSuiteHonorsFilter(t *testing.T) {
	service := mockapi.NewUsersService("fake-app-id", nil)
	server := httptest.NewServer(service)
	defer server.Close()

	headers := make(http.Header)
	headers.Set(apidef.HeaderAppID, "fake-app-id")
	client := harness.NewRESTClient(server.URL, headers, nil)
	target, err := harness.NewTargetService(client, time.Second, io.Discard)
	require.NoError(t, err)

	var filters ctest.RegexFilters
	require.NoError(t, filters.MustMatch.Set("users/constraints"))

	results := RunAPITestSuite(target, filters, nil)

	assert.True(t, results.OK())
	// the crud and list groups are filtered out entirely; group scopes like
	// "users" itself still appear in the results
	for _, test := range results.Tests {
		name := test.TestID.String()
		assert.NotContains(t, name, "crud")
		assert.NotContains(t, name, "list")
	}
}
