package webapp

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisteredRoute is a read-only view of a route exposed by a built Router.
// Callable is the controller name the route was bound to.
type RegisteredRoute struct {
	Pattern  string
	Methods  []string
	Callable string
}

// RouteLister lists the routes of a built application.  *Router implements it,
// and it is the type the router is held under in the container.
type RouteLister interface {
	Routes() []RegisteredRoute
}

// Router is the http.Handler produced by HandlerBuilder.  Besides serving
// requests it reports the routes it was built with.
type Router struct {
	mx     *mux.Router
	routes []RegisteredRoute
}

var _ http.Handler = &Router{}
var _ RouteLister = &Router{}

// ServeHTTP dispatches the request to the matching route.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mx.ServeHTTP(w, r)
}

// Routes returns the registered routes in the order they were passed to
// HandlerBuilder.Use.
func (rt *Router) Routes() []RegisteredRoute {
	routes := make([]RegisteredRoute, len(rt.routes))
	for i, route := range rt.routes {
		routes[i] = route
		routes[i].Methods = append([]string(nil), route.Methods...)
	}

	return routes
}
