package apitests

import (
	"sync"

	"github.com/dummyapi/user-api-contract-tests/apidef"
	"github.com/dummyapi/user-api-contract-tests/framework/harness"
	h "github.com/dummyapi/user-api-contract-tests/framework/helpers"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// cleanupOKStatuses are the statuses a cleanup DELETE may return without the
// test being considered to have leaked state: 200 means we deleted the user,
// 404 means it was already gone (for instance because the test deleted it
// itself as part of the scenario).
var cleanupOKStatuses = []int{200, 404}

// ResourceTracker remembers the ids of users created against the real
// service during a test, so they can be deleted again when the test ends.
//
// Each test scope owns its own tracker (see NewUsersClient), so trackers are
// created and drained in the same goroutine; the lock is only there because
// a test may legitimately create users from several goroutines at once.
type ResourceTracker struct {
	client  *harness.RESTClient
	ids     []string
	drained bool
	lock    sync.Mutex
}

func NewResourceTracker(client *harness.RESTClient) *ResourceTracker {
	return &ResourceTracker{client: client}
}

// Record adds a user id to the set that Drain will delete. Recording the
// same id twice is harmless since a second DELETE of it is still a success.
func (r *ResourceTracker) Record(id string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if !h.SliceContains(id, r.ids) {
		r.ids = append(r.ids, id)
	}
}

// Count returns how many ids are currently pending cleanup.
func (r *ResourceTracker) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.ids)
}

// drainOutcome is the result of one cleanup DELETE.
type drainOutcome struct {
	id     string
	status int
	err    error
}

// Drain deletes every recorded user and reports each one that could not be
// deleted. The deletes run concurrently since they are independent, and we
// always attempt all of them - one failure must not strand the rest.
// Draining a tracker a second time is a no-op.
func (r *ResourceTracker) Drain(errorFn func(format string, args ...interface{})) {
	r.lock.Lock()
	ids := r.ids
	alreadyDrained := r.drained
	r.ids = nil
	r.drained = true
	r.lock.Unlock()

	if alreadyDrained || len(ids) == 0 {
		return
	}

	outcomes := make(chan drainOutcome, len(ids))
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			resp, err := r.client.DoRequest("DELETE", apidef.PathUser(id), nil, ldvalue.Null())
			outcomes <- drainOutcome{id: id, status: resp.Status, err: err}
		}(id)
	}
	wg.Wait()
	close(outcomes)

	for outcome := range outcomes {
		switch {
		case outcome.err != nil:
			errorFn("cleanup of user %q failed: %s", outcome.id, outcome.err)
		case !h.SliceContains(outcome.status, cleanupOKStatuses):
			errorFn("cleanup of user %q got unexpected status %d", outcome.id, outcome.status)
		}
	}
}
