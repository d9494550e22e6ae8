// Package session carries the customer's commerce session through the
// request context so the commerce gateway can forward it on every call.
// The storefront never stores sessions itself; cookie/token storage is
// owned by the backend and the browser.
package session

import "context"

type ctxKey struct{}

// Session holds the credentials the browser presented for this request.
// Either or both may be empty (guest browsing without an order).
type Session struct {
	// Cookie is the raw Cookie header, forwarded verbatim.
	Cookie string
	// Bearer is a backend auth token, forwarded as Authorization: Bearer.
	Bearer string
}

func With(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func From(ctx context.Context) Session {
	if v, ok := ctx.Value(ctxKey{}).(Session); ok {
		return v
	}
	return Session{}
}
