package apitests

import (
	"fmt"

	"github.com/dummyapi/user-api-contract-tests/framework/ctest"
	o "github.com/dummyapi/user-api-contract-tests/framework/opt"

	m "github.com/launchdarkly/go-test-helpers/v2/matchers"
)

// listProbeLimit keeps listing scenarios cheap regardless of how many users
// the remote collection happens to hold.
const listProbeLimit = 5

func doUserListTests(t *ctest.T) {
	t.Run("items have the summary shape", testListItemsSummaryShape)
	t.Run("page beyond the data is empty", testListBeyondLastPage)
	t.Run("page size is honored with default page", testListPageSizeLaw)
}

func testListItemsSummaryShape(t *ctest.T) {
	client := NewUsersClient(t)
	// create one so there is at least one item to inspect
	client.CreateUser(t, NewUserFactory("list-shape").NextUniqueUser())

	page := client.ListUsers(t, o.None[int](), o.Some(listProbeLimit))

	m.In(t).For("data").Require(page.Data, m.Not(m.Length().Should(m.Equal(0))))
	for i, item := range page.Data {
		m.In(t).For(fmt.Sprintf("data[%d]", i)).Assert(item, UserSummaryShape())
	}
}

func testListBeyondLastPage(t *ctest.T) {
	client := NewUsersClient(t)

	// the boundary is computed from the collection's size right now, not
	// from any assumed count
	total := client.FetchTotal(t)
	beyond := FirstEmptyPage(total, listProbeLimit)

	page := client.ListUsers(t, o.Some(beyond), o.Some(listProbeLimit))

	m.In(t).For("data").Assert(page.Data, m.Length().Should(m.Equal(0)))
	m.In(t).For("echoed page").Assert(page.Page, m.Equal(beyond))
	m.In(t).For("echoed limit").Assert(page.Limit, m.Equal(listProbeLimit))
}

func testListPageSizeLaw(t *ctest.T) {
	client := NewUsersClient(t)

	total := client.FetchTotal(t)
	if total < listProbeLimit {
		// an exact-length page can only be expected from a collection at
		// least one page large
		t.SkipWithReason(fmt.Sprintf(
			"need at least %d stored users for this scenario, found %d", listProbeLimit, total))
	}

	page := client.ListUsers(t, o.None[int](), o.Some(listProbeLimit))

	m.In(t).For("data length").Assert(page.Data, m.Length().Should(m.Equal(listProbeLimit)))
	m.In(t).For("echoed page").Assert(page.Page, m.Equal(0))
	m.In(t).For("echoed limit").Assert(page.Limit, m.Equal(listProbeLimit))
}
