// Package remote holds the HTTP/JSON clients for the external
// collaborators: the cart service, the coupon service, the payment
// preference provider and the user profile endpoint. The packages that
// consume them define the interfaces; this package only satisfies them.
package remote

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewHTTPClient builds the client shared by the collaborators, with an
// instrumented transport and a hard timeout so a hung backend cannot
// stall a mutation past its fallback.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
