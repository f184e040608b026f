package harness

import (
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/dummyapi/user-api-contract-tests/apidef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// TargetServiceInfo is basic information about the remote service, learned
// from the initial reachability probe.
type TargetServiceInfo struct {
	// BaseURL is the service base URL the harness was pointed at.
	BaseURL string

	// TotalUsers is the user count the service reported at startup. Scenarios
	// must not treat this as stable; it is shown for operator information only
	// and every pagination assertion re-reads the current total.
	TotalUsers int
}

// TargetService is the remote user API under test. It verifies on creation
// that the service is reachable and that the configured credentials work.
type TargetService struct {
	client *RESTClient
	info   TargetServiceInfo
}

// NewTargetService probes the remote service with a minimal list request until
// it responds or the timeout elapses. A response with a non-200 status fails
// immediately rather than being retried, since that normally means the app-id
// credential is wrong and waiting will not fix it.
func NewTargetService(
	client *RESTClient,
	timeout time.Duration,
	output io.Writer,
) (*TargetService, error) {
	fmt.Fprintf(output, "Checking user API at %s", client.BaseURL())

	probeQuery := url.Values{"limit": {"1"}}
	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := client.DoRequest("GET", apidef.PathUsers, probeQuery, ldvalue.Null())
		if err == nil {
			fmt.Fprintln(output)
			if resp.Status != 200 {
				return nil, fmt.Errorf("user API returned status %d for the initial list request"+
					" (body: %s) - check the base URL and app-id", resp.Status, resp.Body.JSONString())
			}
			total := resp.Body.GetByKey(apidef.FieldTotal).IntValue()
			fmt.Fprintf(output, "Service is reachable and reports %d existing users\n", total)
			return &TargetService{
				client: client,
				info:   TargetServiceInfo{BaseURL: client.BaseURL(), TotalUsers: total},
			}, nil
		}
		if !time.Now().Before(deadline) {
			return nil, fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(time.Millisecond * 100)
	}
}

// Client returns the RESTClient for issuing requests to the service.
func (s *TargetService) Client() *RESTClient { return s.client }

// Info returns the information gathered by the startup probe.
func (s *TargetService) Info() TargetServiceInfo { return s.info }
