package apitests

import (
	"strings"

	"github.com/dummyapi/user-api-contract-tests/apidef"
	"github.com/dummyapi/user-api-contract-tests/framework/ctest"
	o "github.com/dummyapi/user-api-contract-tests/framework/opt"

	m "github.com/launchdarkly/go-test-helpers/v2/matchers"
)

func doUserCRUDTests(t *ctest.T) {
	t.Run("create and read back", testCreateAndReadBack)
	t.Run("update changes only the updated fields", testUpdateContainment)
	t.Run("delete makes the user unreachable", testDeleteFinality)
	t.Run("full lifecycle journey", testFullLifecycleJourney)
}

func testCreateAndReadBack(t *ctest.T) {
	client := NewUsersClient(t)
	params := NewUserFactory("create-and-read").NextUniqueUser()

	created := client.CreateUser(t, params)
	m.In(t).For("create response").Require(created, BodyContains(params.JSONValue()))

	id := created.GetByKey(apidef.FieldID).StringValue()
	m.In(t).For("assigned id").Require(id, m.Not(m.Equal("")))

	fetched := client.GetUser(t, id)
	m.In(t).For("fetched user").Assert(fetched, BodyContains(params.JSONValue()))
	m.In(t).For("fetched id").Assert(fetched, m.JSONProperty(apidef.FieldID).Should(m.Equal(id)))
}

func testUpdateContainment(t *ctest.T) {
	client := NewUsersClient(t)
	params := NewUserFactory("update").NextUniqueUser()

	created := client.CreateUser(t, params)
	id := created.GetByKey(apidef.FieldID).StringValue()

	update := apidef.UserParams{FirstName: o.Some("Renamed")}
	updated := client.UpdateUser(t, id, update)

	m.In(t).For("updated field").Assert(updated, BodyContains(update.JSONValue()))
	// every field not named in the update keeps its previous value
	unchanged := apidef.UserParams{
		LastName: params.LastName,
		Email:    params.Email.Map(lowercased),
	}
	m.In(t).For("untouched fields").Assert(updated, BodyContains(unchanged.JSONValue()))

	fetched := client.GetUser(t, id)
	m.In(t).For("fetched after update").Assert(fetched, BodyContains(update.JSONValue()))
}

func testDeleteFinality(t *ctest.T) {
	client := NewUsersClient(t)

	created := client.CreateUser(t, NewUserFactory("delete").NextUniqueUser())
	id := created.GetByKey(apidef.FieldID).StringValue()

	deleted := client.DeleteUser(t, id)
	m.In(t).For("delete response").Assert(deleted,
		m.JSONProperty(apidef.FieldID).Should(m.Equal(id)))

	// once deleted, the id behaves exactly like one that never existed
	resp := client.TryGetUser(t, id)
	m.In(t).For("status of read after delete").Assert(resp.Status, m.Equal(apidef.StatusGetUnknownID))
}

// testFullLifecycleJourney walks one user through every operation in order,
// the way a consuming application would.
func testFullLifecycleJourney(t *ctest.T) {
	client := NewUsersClient(t)
	params := NewUserFactory("journey").NextUniqueUser()
	params.FirstName = o.Some("Jack")
	params.LastName = o.Some("Black")

	created := client.CreateUser(t, params)
	id := created.GetByKey(apidef.FieldID).StringValue()
	m.In(t).For("create").Require(created, BodyContains(params.JSONValue()))

	fetched := client.GetUser(t, id)
	m.In(t).For("read").Require(fetched, BodyContains(params.JSONValue()))

	update := apidef.UserParams{FirstName: o.Some("Walter"), LastName: o.Some("White")}
	updated := client.UpdateUser(t, id, update)
	m.In(t).For("update").Require(updated, BodyContains(update.JSONValue()))
	m.In(t).For("update kept email").Require(updated,
		BodyContains(apidef.UserParams{Email: params.Email.Map(lowercased)}.JSONValue()))

	deleted := client.DeleteUser(t, id)
	m.In(t).For("delete").Require(deleted, m.JSONProperty(apidef.FieldID).Should(m.Equal(id)))

	resp := client.TryGetUser(t, id)
	m.In(t).For("read after delete").Assert(resp.Status, m.Equal(apidef.StatusGetUnknownID))
}

// the service normalizes email addresses to lower case on storage
func lowercased(s string) string { return strings.ToLower(s) }
