package hostedpay

import (
	"context"
	"net/http"
	"strings"
)

// RequestContext carries metadata of the browser request that delivered a
// gateway return.
type RequestContext struct {
	// Client address as seen by the server.
	RemoteAddr string
	// Page the browser came from, usually the hosted payment page.
	//
	// Example: https://test1.maksuturva.fi/
	Referer string
	// Example: Mozilla/5.0 (X11; Linux x86_64)
	UserAgent string
	// Unique key for each request for tracing purposes, when a proxy sets one.
	//
	// Example: request_id_123
	RequestID string
}

func requestContextFromRequest(r *http.Request) *RequestContext {
	return &RequestContext{
		RemoteAddr: r.RemoteAddr,
		Referer:    strings.TrimSpace(r.Header.Get("Referer")),
		UserAgent:  strings.TrimSpace(r.Header.Get("User-Agent")),
		RequestID:  strings.TrimSpace(r.Header.Get("Request-Id")),
	}
}

type requestContextKey struct{}

func contextWithRequestContext(ctx context.Context, requestCtx *RequestContext) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if requestCtx == nil {
		return ctx
	}
	return context.WithValue(ctx, requestContextKey{}, requestCtx)
}

// RequestContextFromContext extracts the request metadata stored by the
// return handler.
func RequestContextFromContext(ctx context.Context) *RequestContext {
	if ctx == nil {
		return nil
	}
	if requestCtx, ok := ctx.Value(requestContextKey{}).(*RequestContext); ok {
		return requestCtx
	}
	return nil
}
