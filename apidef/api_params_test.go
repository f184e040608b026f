package apidef

import (
	"encoding/json"
	"testing"

	o "github.com/dummyapi/user-api-contract-tests/framework/opt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserParamsSerializesOnlyDefinedFields(t *testing.T) {
	full := UserParams{
		FirstName: o.Some("Jack"),
		LastName:  o.Some("Black"),
		Email:     o.Some("jack@example.com"),
		Title:     o.Some("mr"),
	}
	assert.JSONEq(t,
		`{"firstName": "Jack", "lastName": "Black", "email": "jack@example.com", "title": "mr"}`,
		full.JSONValue().JSONString())

	subset := UserParams{FirstName: o.Some("Walter"), LastName: o.Some("White")}
	assert.JSONEq(t, `{"firstName": "Walter", "lastName": "White"}`, subset.JSONValue().JSONString())

	assert.Equal(t, `{}`, UserParams{}.JSONValue().JSONString())
}

func TestUserParamsMarshalsLikeJSONValue(t *testing.T) {
	p := UserParams{FirstName: o.Some("Jack"), Email: o.Some("jack@example.com")}
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, p.JSONValue().JSONString(), string(data))
}

func TestListUsersResponseUnmarshalling(t *testing.T) {
	body := `{"data": [{"id": "abc", "firstName": "Jack"}], "total": 42, "page": 2, "limit": 10}`
	var resp ListUsersResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, 42, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 10, resp.Limit)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "abc", resp.Data[0].GetByKey(FieldID).StringValue())
}

func TestPathUser(t *testing.T) {
	assert.Equal(t, "/user/60d0fe4f5311236168a109ca", PathUser("60d0fe4f5311236168a109ca"))
}
