package webapp

// Middleware defines the methods that any HTTP middleware must implement.  If
// the Handle method returns true, the request will continue to be propagated to
// subsequent middleware handlers and eventually the route's Controller.  A
// middleware that returns false is expected to have responded itself.
type Middleware interface {
	Handle(ctx *Context) bool
}
