package apidef

import (
	o "github.com/dummyapi/user-api-contract-tests/framework/opt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// HeaderAppID is the header carrying the application credential. The service
// rejects any request without it.
const HeaderAppID = "app-id"

// Endpoint paths. The create path is not under the resource path, which is an
// oddity of the remote API, not a convention we chose.
const (
	PathUsers      = "/user"
	PathCreateUser = "/user/create"
)

// PathUser returns the path of a single user resource.
func PathUser(id string) string { return PathUsers + "/" + id }

// Defaults applied by the service when list query parameters are omitted.
const (
	DefaultPage  = 0
	DefaultLimit = 20
)

// Query parameter names for list requests.
const (
	QueryParamPage  = "page"
	QueryParamLimit = "limit"
)

// Field names of the user resource representation.
const (
	FieldID        = "id"
	FieldTitle     = "title"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPicture   = "picture"
	FieldTotal     = "total"
)

// UserSummaryFields is the exact key set that every element of an unfiltered
// list response must expose - no more, no fewer.
var UserSummaryFields = []string{FieldID, FieldTitle, FieldFirstName, FieldLastName, FieldPicture} //nolint:gochecknoglobals

// Error codes and messages observed from the remote service.
//
// Note the status-code asymmetry that goes with these: a GET of a nonexistent
// id is rejected with status 400 and ErrorParamsNotValid, while a DELETE of
// the same id returns status 404 and ErrorResourceNotFound. That is almost
// certainly a quirk of the remote implementation rather than a deliberate
// contract, but the harness encodes the observed behavior rather than
// normalizing it to textbook REST codes.
const (
	ErrorBodyNotValid     = "BODY_NOT_VALID"
	ErrorParamsNotValid   = "PARAMS_NOT_VALID"
	ErrorResourceNotFound = "RESOURCE_NOT_FOUND"
	ErrorAppIDMissing     = "APP_ID_MISSING"
	ErrorAppIDNotExist    = "APP_ID_NOT_EXIST"

	MessageEmailAlreadyUsed = "Email already used"
)

// StatusGetUnknownID and StatusDeleteUnknownID are the observed failure
// statuses for reads and deletes of ids that do not exist (see the comment
// above on the asymmetry).
const (
	StatusGetUnknownID    = 400
	StatusDeleteUnknownID = 404
)

// UserParams is the body of a create or partial-update request. Only the
// fields that are defined are serialized, so the same type expresses both a
// full create body and an arbitrary subset for an update.
type UserParams struct {
	FirstName o.Maybe[string]
	LastName  o.Maybe[string]
	Email     o.Maybe[string]
	Title     o.Maybe[string]
}

// JSONValue returns the request body as a JSON object containing only the
// defined fields.
func (p UserParams) JSONValue() ldvalue.Value {
	b := ldvalue.ObjectBuild()
	for _, f := range []struct {
		name  string
		value o.Maybe[string]
	}{
		{FieldFirstName, p.FirstName},
		{FieldLastName, p.LastName},
		{FieldEmail, p.Email},
		{FieldTitle, p.Title},
	} {
		if f.value.IsDefined() {
			b.Set(f.name, ldvalue.String(f.value.Value()))
		}
	}
	return b.Build()
}

func (p UserParams) MarshalJSON() ([]byte, error) {
	return []byte(p.JSONValue().JSONString()), nil
}

// ListUsersResponse is one page of users. The elements of Data are kept as
// arbitrary JSON so that shape assertions can see exactly what the service
// sent, rather than whatever survived unmarshalling into a struct.
type ListUsersResponse struct {
	Data  []ldvalue.Value `json:"data"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ErrorResponse is the body shape of a failed mutation: an error marker plus
// optional field-level detail such as {"email": "Email already used"}.
type ErrorResponse struct {
	Error string        `json:"error"`
	Data  ldvalue.Value `json:"data,omitempty"`
}
