package apitests

import (
	"fmt"

	"github.com/dummyapi/user-api-contract-tests/apidef"
	h "github.com/dummyapi/user-api-contract-tests/framework/helpers"

	"github.com/launchdarkly/go-test-helpers/v2/jsonhelpers"
	m "github.com/launchdarkly/go-test-helpers/v2/matchers"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Matchers for the shapes the user API is expected to produce. Contract
// verification is about shape, not literals: a response is allowed to carry
// server-assigned fields we did not send (id, picture, timestamps), so most
// scenarios assert containment of what they sent rather than equality.

// BodyContains matches a JSON object that has at least the properties of the
// expected object, each with an equal value. Extra properties are ignored.
func BodyContains(expected ldvalue.Value) m.Matcher {
	keys := expected.Keys()
	ms := make([]m.Matcher, 0, len(keys))
	for _, key := range keys {
		ms = append(ms, m.JSONProperty(key).Should(m.JSONEqual(expected.GetByKey(key))))
	}
	return m.AllOf(ms...)
}

// HasExactlyKeys matches a JSON object whose property names are exactly the
// given set, in any order.
func HasExactlyKeys(keys ...string) m.Matcher {
	expected := h.Sorted(keys)
	return m.New(
		func(value interface{}) bool {
			actual := ldvalue.Parse(jsonhelpers.ToJSON(value))
			if actual.Type() != ldvalue.ObjectType {
				return false
			}
			got := h.Sorted(actual.Keys())
			if len(got) != len(expected) {
				return false
			}
			for i := range got {
				if got[i] != expected[i] {
					return false
				}
			}
			return true
		},
		func() string {
			return fmt.Sprintf("JSON object with exactly the keys %v", expected)
		},
		func(value interface{}) string {
			actual := ldvalue.Parse(jsonhelpers.ToJSON(value))
			return fmt.Sprintf("had keys %v instead of %v", h.Sorted(actual.Keys()), expected)
		},
	)
}

// UserSummaryShape matches one element of a listing's data array: exactly
// the summary fields, with id and the name fields as non-empty strings.
func UserSummaryShape() m.Matcher {
	return m.AllOf(
		HasExactlyKeys(apidef.UserSummaryFields...),
		m.JSONProperty(apidef.FieldID).Should(nonEmptyJSONString()),
		m.JSONProperty(apidef.FieldFirstName).Should(nonEmptyJSONString()),
		m.JSONProperty(apidef.FieldLastName).Should(nonEmptyJSONString()),
	)
}

// IsErrorCode matches an error response body with the given error code.
func IsErrorCode(code string) m.Matcher {
	return m.JSONProperty("error").Should(m.JSONEqual(code))
}

// IsDuplicateEmailError matches the body the service returns when a create
// reuses an existing email address.
func IsDuplicateEmailError() m.Matcher {
	return m.AllOf(
		IsErrorCode(apidef.ErrorBodyNotValid),
		m.JSONProperty("data").Should(
			m.JSONProperty(apidef.FieldEmail).Should(m.JSONEqual(apidef.MessageEmailAlreadyUsed))),
	)
}

func nonEmptyJSONString() m.Matcher {
	return m.New(
		func(value interface{}) bool {
			return ldvalue.Parse(jsonhelpers.ToJSON(value)).StringValue() != ""
		},
		func() string { return "non-empty string" },
		func(value interface{}) string {
			return fmt.Sprintf("%s was not a non-empty string", jsonhelpers.ToJSON(value))
		},
	)
}
