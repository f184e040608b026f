package harness

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dummyapi/user-api-contract-tests/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestRESTClientSendsFixedHeaders(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	server := httptest.NewServer(handler)
	defer server.Close()

	headers := make(http.Header)
	headers.Set("app-id", "my-app-id")
	client := NewRESTClient(server.URL, headers, nil)

	_, err := client.DoRequest("GET", "/user", nil, ldvalue.Null())
	require.NoError(t, err)

	request := <-requestsCh
	assert.Equal(t, "my-app-id", request.Request.Header.Get("app-id"))
	assert.Equal(t, "", request.Request.Header.Get("Content-Type"),
		"no content type should be sent without a body")
}

func TestRESTClientSendsJSONBody(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	server := httptest.NewServer(handler)
	defer server.Close()

	client := NewRESTClient(server.URL, nil, nil)
	body := ldvalue.ObjectBuild().Set("firstName", ldvalue.String("Amy")).Build()

	_, err := client.DoRequest("POST", "/user/create", nil, body)
	require.NoError(t, err)

	request := <-requestsCh
	assert.Equal(t, "application/json", request.Request.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"firstName": "Amy"}`, string(request.Body))
}

func TestRESTClientReturnsResponseForAnyStatus(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(404))
	defer server.Close()

	client := NewRESTClient(server.URL, nil, nil)
	resp, err := client.DoRequest("DELETE", "/user/whatever", nil, ldvalue.Null())

	require.NoError(t, err, "a non-2xx status is not a client error")
	assert.Equal(t, 404, resp.Status)
}

func TestRESTClientReturnsErrorForTransportFailure(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	server.Close() // nothing is listening any more

	client := NewRESTClient(server.URL, nil, nil)
	_, err := client.DoRequest("GET", "/user", nil, ldvalue.Null())

	assert.Error(t, err)
}

func TestRESTClientParsesJSONResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total": 99}`))
	}))
	defer server.Close()

	client := NewRESTClient(server.URL, nil, nil)
	resp, err := client.DoRequest("GET", "/user", nil, ldvalue.Null())

	require.NoError(t, err)
	assert.Equal(t, 99, resp.Body.GetByKey("total").IntValue())
}

func TestRESTClientLogsTraffic(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	defer server.Close()

	var logger framework.CapturingLogger
	client := NewRESTClient(server.URL, nil, nil).WithLogger(&logger)

	_, err := client.DoRequest("GET", "/user", nil, ldvalue.Null())
	require.NoError(t, err)

	output := logger.Output().ToString("")
	assert.Contains(t, output, "GET")
	assert.Contains(t, output, "/user")
	assert.Contains(t, output, "200")
}
