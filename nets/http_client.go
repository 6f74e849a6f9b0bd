package nets

import (
	"net/http"
)

type HTTPClient = *http.Client

// HTTPClient has no timeout: a backend call that never answers leaves the console in its prior state
func (Module) HTTPClient(
	dialer Dialer,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext:       dialer.DialContext,
			ForceAttemptHTTP2: true,
		},
	}
}
