package webapp

// ContextHandlerFunc is an alias for a function that accepts a Context as its
// one and only parameter.  HandlerBuilder composes middleware, controller
// resolution and Invoke into one of these per route.
type ContextHandlerFunc func(ctx *Context)
