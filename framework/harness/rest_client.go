package harness

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dummyapi/user-api-contract-tests/framework"
	"github.com/dummyapi/user-api-contract-tests/framework/helpers"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Response is the harness's view of one HTTP response from the remote service:
// the status code, the headers, and the body parsed as arbitrary JSON.
type Response struct {
	Status int
	Header http.Header
	Body   ldvalue.Value
}

// RESTClient issues requests against a single remote service base URL, adding
// a fixed set of headers to every request. It holds no other state; status
// code interpretation is entirely up to the caller.
type RESTClient struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
	logger     framework.Logger
}

// NewRESTClient creates a RESTClient. The headers parameter is the set of
// headers to attach to every request (such as the app-id credential); it may
// be nil. A nil logger disables request/response debug output.
func NewRESTClient(baseURL string, headers http.Header, logger framework.Logger) *RESTClient {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &RESTClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		headers:    headers,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// BaseURL returns the base URL the client was created with.
func (c *RESTClient) BaseURL() string { return c.baseURL }

// WithLogger returns a copy of the client that writes request/response debug
// output to the specified logger, so that each test scope can capture the
// traffic it caused.
func (c *RESTClient) WithLogger(logger framework.Logger) *RESTClient {
	ret := *c
	ret.logger = logger
	return &ret
}

// DoRequest performs one HTTP request and returns the structured response.
//
// The body parameter is sent as JSON unless it is a null value. An error is
// returned only for transport-level problems (connection failure, malformed
// response body); any HTTP status, success or not, produces a Response, since
// some scenarios deliberately expect non-2xx statuses.
func (c *RESTClient) DoRequest(
	method string,
	path string,
	query url.Values,
	body ldvalue.Value,
) (Response, error) {
	requestURL := c.baseURL + path
	if len(query) != 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if !body.IsNull() {
		bodyReader = bytes.NewBufferString(body.JSONString())
		c.logger.Printf("%s %s with body: %s", method, requestURL, body.JSONString())
	} else {
		c.logger.Printf("%s %s", method, requestURL)
	}

	req, err := http.NewRequest(method, requestURL, bodyReader)
	if err != nil {
		return Response{}, err
	}
	for name, values := range c.headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("request to %s failed: %w", requestURL, err)
	}
	var respData []byte
	if resp.Body != nil {
		respData, err = io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return Response{}, fmt.Errorf("failed to read response body from %s: %w", requestURL, err)
		}
	}

	ret := Response{Status: resp.StatusCode, Header: resp.Header, Body: ldvalue.Parse(respData)}
	c.logger.Printf("got status %d with body: %s", ret.Status, helpers.CanonicalizedJSONString(ret.Body))
	return ret, nil
}
