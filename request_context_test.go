package hostedpay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestContextFromRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/ok/42/", nil)
	req.RemoteAddr = "192.0.2.10:52100"
	req.Header.Set("Referer", " https://test1.maksuturva.fi/NewPaymentExtended.pmt ")
	req.Header.Set("User-Agent", "hostedpay-test/1.0")
	req.Header.Set("Request-Id", "req-123")

	got := requestContextFromRequest(req)
	if got == nil {
		t.Fatalf("expected request context")
	}
	if got.RemoteAddr != "192.0.2.10:52100" {
		t.Fatalf("unexpected remote addr %q", got.RemoteAddr)
	}
	if got.Referer != "https://test1.maksuturva.fi/NewPaymentExtended.pmt" {
		t.Fatalf("unexpected referer %q", got.Referer)
	}
	if got.UserAgent != "hostedpay-test/1.0" {
		t.Fatalf("unexpected user-agent %q", got.UserAgent)
	}
	if got.RequestID != "req-123" {
		t.Fatalf("unexpected request id %q", got.RequestID)
	}
}

func TestRequestContextRoundTrip(t *testing.T) {
	t.Parallel()

	requestCtx := &RequestContext{RequestID: "req-1"}
	ctx := contextWithRequestContext(context.Background(), requestCtx)
	got := RequestContextFromContext(ctx)
	if got == nil {
		t.Fatalf("expected request context on context")
	}
	if got.RequestID != "req-1" {
		t.Fatalf("unexpected request id %q", got.RequestID)
	}
	if RequestContextFromContext(context.Background()) != nil {
		t.Fatalf("expected nil when request context not set")
	}
	if contextWithRequestContext(context.Background(), nil) != context.Background() {
		t.Fatalf("expected context unchanged for nil request context")
	}
}
