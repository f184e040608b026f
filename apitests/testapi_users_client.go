package apitests

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/dummyapi/user-api-contract-tests/apidef"
	"github.com/dummyapi/user-api-contract-tests/framework/ctest"
	"github.com/dummyapi/user-api-contract-tests/framework/harness"
	o "github.com/dummyapi/user-api-contract-tests/framework/opt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// UsersClient wraps the REST client with the user API's operations, for use
// within a single test scope. Every user it creates is recorded in the
// scope's ResourceTracker, and the tracker is drained when the scope ends.
//
// The methods come in two flavors: the plain ones (CreateUser, GetUser, ...)
// require a 200 response and terminate the test otherwise, so scenario code
// can use their return values without checking; the Try variants return the
// raw response for scenarios whose subject is the error behavior itself.
type UsersClient struct {
	client  *harness.RESTClient
	tracker *ResourceTracker
}

func NewUsersClient(t *ctest.T) *UsersClient {
	ctx := requireContext(t)
	client := ctx.service.Client().WithLogger(t.DebugLogger())
	tracker := NewResourceTracker(client)
	t.Defer(func() {
		tracker.Drain(t.Errorf)
	})
	return &UsersClient{client: client, tracker: tracker}
}

// Tracker returns the cleanup tracker for this test scope.
func (c *UsersClient) Tracker() *ResourceTracker { return c.tracker }

func (c *UsersClient) CreateUser(t *ctest.T, user apidef.UserParams) ldvalue.Value {
	t.Helper()
	resp := c.requireOK(t, "POST", apidef.PathCreateUser, c.TryCreateUser(t, user))
	return resp.Body
}

func (c *UsersClient) TryCreateUser(t *ctest.T, user apidef.UserParams) harness.Response {
	t.Helper()
	resp := c.do(t, "POST", apidef.PathCreateUser, nil, user.JSONValue())
	// even a failed-looking response may have created the user, so track any
	// id the server handed back
	if id := resp.Body.GetByKey(apidef.FieldID).StringValue(); id != "" {
		c.tracker.Record(id)
	}
	return resp
}

func (c *UsersClient) GetUser(t *ctest.T, id string) ldvalue.Value {
	t.Helper()
	return c.requireOK(t, "GET", apidef.PathUser(id), c.TryGetUser(t, id)).Body
}

func (c *UsersClient) TryGetUser(t *ctest.T, id string) harness.Response {
	t.Helper()
	return c.do(t, "GET", apidef.PathUser(id), nil, ldvalue.Null())
}

func (c *UsersClient) UpdateUser(t *ctest.T, id string, update apidef.UserParams) ldvalue.Value {
	t.Helper()
	resp := c.do(t, "PUT", apidef.PathUser(id), nil, update.JSONValue())
	return c.requireOK(t, "PUT", apidef.PathUser(id), resp).Body
}

func (c *UsersClient) DeleteUser(t *ctest.T, id string) ldvalue.Value {
	t.Helper()
	return c.requireOK(t, "DELETE", apidef.PathUser(id), c.TryDeleteUser(t, id)).Body
}

func (c *UsersClient) TryDeleteUser(t *ctest.T, id string) harness.Response {
	t.Helper()
	return c.do(t, "DELETE", apidef.PathUser(id), nil, ldvalue.Null())
}

// ListUsers fetches one page of users. Omitted parameters are left out of the
// query string entirely so the test exercises the server's defaults.
func (c *UsersClient) ListUsers(t *ctest.T, page, limit o.Maybe[int]) apidef.ListUsersResponse {
	t.Helper()
	query := url.Values{}
	if page.IsDefined() {
		query.Set(apidef.QueryParamPage, strconv.Itoa(page.Value()))
	}
	if limit.IsDefined() {
		query.Set(apidef.QueryParamLimit, strconv.Itoa(limit.Value()))
	}
	resp := c.requireOK(t, "GET", apidef.PathUsers, c.do(t, "GET", apidef.PathUsers, query, ldvalue.Null()))

	var parsed apidef.ListUsersResponse
	if err := json.Unmarshal([]byte(resp.Body.JSONString()), &parsed); err != nil {
		t.Errorf("list response was not a valid page object: %s", err)
		t.FailNow()
	}
	return parsed
}

// FetchTotal does an unfiltered listing and returns the server's current
// total user count. Scenarios that assert page boundaries call this first so
// their expectations track the live collection size.
func (c *UsersClient) FetchTotal(t *ctest.T) int {
	t.Helper()
	return c.ListUsers(t, o.None[int](), o.Some(1)).Total
}

func (c *UsersClient) do(
	t *ctest.T, method, path string, query url.Values, body ldvalue.Value,
) harness.Response {
	t.Helper()
	resp, err := c.client.DoRequest(method, path, query, body)
	if err != nil {
		t.Errorf("%s %s failed: %s", method, path, err)
		t.FailNow()
	}
	return resp
}

func (c *UsersClient) requireOK(t *ctest.T, method, path string, resp harness.Response) harness.Response {
	t.Helper()
	if resp.Status != 200 {
		t.Errorf("%s %s: expected status 200, got %d (body: %s)",
			method, path, resp.Status, resp.Body.JSONString())
		t.FailNow()
	}
	return resp
}
