package apitests

import (
	"github.com/dummyapi/user-api-contract-tests/apidef"
	"github.com/dummyapi/user-api-contract-tests/framework/ctest"

	m "github.com/launchdarkly/go-test-helpers/v2/matchers"
)

func doUserConstraintTests(t *ctest.T) {
	t.Run("duplicate email is rejected", testDuplicateEmailRejected)
	t.Run("reading an unknown id is a bad request", testGetUnknownID)
	t.Run("deleting an unknown id is not found", testDeleteUnknownID)
	t.Run("cleanup tolerates already-deleted users", testCleanupIdempotence)
}

func testDuplicateEmailRejected(t *ctest.T) {
	client := NewUsersClient(t)
	params := NewUserFactory("duplicate-email").NextUniqueUser()

	_ = client.CreateUser(t, params)

	// a second user reusing the email must be rejected, even though every
	// other field differs
	second := NewUserFactory("duplicate-email-second").NextUniqueUser()
	second.Email = params.Email
	resp := client.TryCreateUser(t, second)

	m.In(t).For("status").Assert(resp.Status, m.Equal(400))
	m.In(t).For("body").Assert(resp.Body, IsDuplicateEmailError())
}

func testGetUnknownID(t *ctest.T) {
	client := NewUsersClient(t)

	resp := client.TryGetUser(t, NonexistentUserID())

	m.In(t).For("status").Assert(resp.Status, m.Equal(apidef.StatusGetUnknownID))
	m.In(t).For("body").Assert(resp.Body, IsErrorCode(apidef.ErrorParamsNotValid))
}

func testDeleteUnknownID(t *ctest.T) {
	client := NewUsersClient(t)

	resp := client.TryDeleteUser(t, NonexistentUserID())

	m.In(t).For("status").Assert(resp.Status, m.Equal(apidef.StatusDeleteUnknownID))
	m.In(t).For("body").Assert(resp.Body, IsErrorCode(apidef.ErrorResourceNotFound))
}

// testCleanupIdempotence creates a user, deletes it within the scenario, and
// then drains the tracker by hand: the tracked id is already gone, and the
// resulting 404 must count as a successful cleanup.
func testCleanupIdempotence(t *ctest.T) {
	client := NewUsersClient(t)

	created := client.CreateUser(t, NewUserFactory("cleanup").NextUniqueUser())
	id := created.GetByKey(apidef.FieldID).StringValue()
	client.DeleteUser(t, id)

	client.Tracker().Drain(t.Errorf)
}
