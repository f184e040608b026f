package apitests

import (
	"fmt"
	"os"

	"github.com/dummyapi/user-api-contract-tests/framework/ctest"
	"github.com/dummyapi/user-api-contract-tests/framework/harness"
)

func RunAPITestSuite(
	service *harness.TargetService,
	filter ctest.RegexFilters,
	testLogger ctest.TestLogger,
) ctest.Results {
	fmt.Printf("Running user API contract test suite against %s (%d users currently stored)\n",
		service.Info().BaseURL, service.Info().TotalUsers)
	fmt.Println()
	filter.Describe(os.Stdout)

	config := ctest.TestConfiguration{
		Filter:     filter.Match,
		TestLogger: testLogger,
		Context: APITestContext{
			service: service,
		},
	}

	return ctest.Run(config, doAllUserTests)
}

func doAllUserTests(t *ctest.T) {
	t.Run("users", func(t *ctest.T) {
		t.Run("crud", doUserCRUDTests)
		t.Run("list", doUserListTests)
		t.Run("constraints", doUserConstraintTests)
	})
}
