package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestAsJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, string(AsJSON(map[string]int{"a": 1})))
	assert.Equal(t, `{"a":1}`, AsJSONString(map[string]int{"a": 1}))
	assert.Equal(t, ldvalue.Int(3), AsJSONValue(3))
}

func TestCanonicalizedJSONString(t *testing.T) {
	value := ldvalue.Parse([]byte(`{"c": [{"z": 1, "a": 2}], "b": true}`))
	assert.Equal(t, `{"b":true,"c":[{"a":2,"z":1}]}`, CanonicalizedJSONString(value))

	assert.Equal(t, `"x"`, CanonicalizedJSONString(ldvalue.String("x")))
	assert.Equal(t, `null`, CanonicalizedJSONString(ldvalue.Null()))
}
