package webapp

// Route defines the methods that any HTTP route must implement.  Controller
// returns the name the route's controller is registered under in Controllers.
type Route interface {
	Methods() []string
	Path() string
	Middleware() []Middleware
	Controller() string
}

// BasicRoute is a Route declared as plain data.
type BasicRoute struct {
	methods    []string
	path       string
	controller string
	middleware []Middleware
}

var _ Route = &BasicRoute{}

// NewRoute creates a route that dispatches the provided methods on path to the
// named controller.
func NewRoute(path string, controller string, methods ...string) *BasicRoute {
	return &BasicRoute{
		methods:    methods,
		path:       path,
		controller: controller,
	}
}

// With appends middleware to the route.
func (r *BasicRoute) With(middleware ...Middleware) *BasicRoute {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Methods returns the HTTP methods the route accepts.
func (r *BasicRoute) Methods() []string {
	return r.methods
}

// Path returns the mux path template of the route.
func (r *BasicRoute) Path() string {
	return r.path
}

// Middleware returns the middleware run before the controller.
func (r *BasicRoute) Middleware() []Middleware {
	return r.middleware
}

// Controller returns the name of the controller the route is bound to.
func (r *BasicRoute) Controller() string {
	return r.controller
}
