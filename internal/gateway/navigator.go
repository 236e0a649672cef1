package gateway

import "context"

// Navigator abstracts the browser location for the client's 401 handler:
// where the user currently is, and the ability to send them somewhere else.
type Navigator interface {
	CurrentPath() string
	Redirect(path string)
}

type navigatorKey struct{}

// WithNavigator attaches the navigator for the current screen to the request
// context. Requests issued without one (startup probes, tests) only get the
// session-clearing half of the 401 handling.
func WithNavigator(ctx context.Context, nav Navigator) context.Context {
	return context.WithValue(ctx, navigatorKey{}, nav)
}

func navigatorFrom(ctx context.Context) Navigator {
	nav, _ := ctx.Value(navigatorKey{}).(Navigator)
	return nav
}
