package apitests

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dummyapi/user-api-contract-tests/apidef"
	"github.com/dummyapi/user-api-contract-tests/framework/harness"
	"github.com/dummyapi/user-api-contract-tests/mockapi"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedErrors struct {
	messages []string
	lock     sync.Mutex
}

func (c *capturedErrors) errorf(format string, args ...interface{}) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.messages = append(c.messages, fmt.Sprintf(format, args...))
}

func trackerClientForHandler(t *testing.T, handler http.Handler) *harness.RESTClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	headers := make(http.Header)
	headers.Set(apidef.HeaderAppID, "fake-app-id")
	return harness.NewRESTClient(server.URL, headers, nil)
}

func TestResourceTrackerDeletesRecordedUsers(t *testing.T) {
	service := mockapi.NewUsersService("fake-app-id", nil)
	client := trackerClientForHandler(t, service)
	tracker := NewResourceTracker(client)

	for i := 0; i < 3; i++ {
		resp, err := client.DoRequest("POST", apidef.PathCreateUser, nil,
			NewUserFactory("tracker").NextUniqueUser().JSONValue())
		require.NoError(t, err)
		require.Equal(t, 200, resp.Status)
		tracker.Record(resp.Body.GetByKey(apidef.FieldID).StringValue())
	}
	require.Equal(t, 3, service.UserCount())
	require.Equal(t, 3, tracker.Count())

	var captured capturedErrors
	tracker.Drain(captured.errorf)

	assert.Empty(t, captured.messages)
	assert.Equal(t, 0, service.UserCount())
	assert.Equal(t, 0, tracker.Count())
}

func TestResourceTrackerTreatsAlreadyGoneAsSuccess(t *testing.T) {
	service := mockapi.NewUsersService("fake-app-id", nil)
	client := trackerClientForHandler(t, service)
	tracker := NewResourceTracker(client)

	// an id that was never created: the DELETE will return 404
	tracker.Record(NonexistentUserID())

	var captured capturedErrors
	tracker.Drain(captured.errorf)

	assert.Empty(t, captured.messages)
}

func TestResourceTrackerReportsEachFailedCleanup(t *testing.T) {
	// a server that refuses every delete: each tracked id must produce its
	// own reported failure rather than one collective error
	client := trackerClientForHandler(t, httphelpers.HandlerWithStatus(http.StatusInternalServerError))
	tracker := NewResourceTracker(client)
	tracker.Record("user-a")
	tracker.Record("user-b")
	tracker.Record("user-c")

	var captured capturedErrors
	tracker.Drain(captured.errorf)

	require.Len(t, captured.messages, 3)
	all := fmt.Sprintf("%v", captured.messages)
	for _, id := range []string{"user-a", "user-b", "user-c"} {
		assert.Contains(t, all, id)
	}
}

func TestResourceTrackerRecordDeduplicates(t *testing.T) {
	tracker := NewResourceTracker(nil)
	tracker.Record("same-id")
	tracker.Record("same-id")
	assert.Equal(t, 1, tracker.Count())
}

func TestResourceTrackerDrainIsOneShot(t *testing.T) {
	client := trackerClientForHandler(t, httphelpers.HandlerWithStatus(http.StatusInternalServerError))
	tracker := NewResourceTracker(client)
	tracker.Record("user-a")

	var captured capturedErrors
	tracker.Drain(captured.errorf)
	require.Len(t, captured.messages, 1)

	// a second drain must not retry anything
	tracker.Drain(captured.errorf)
	assert.Len(t, captured.messages, 1)
}
