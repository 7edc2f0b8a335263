package webapp

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/ljpx/di"
	"github.com/ljpx/logging"
)

// HandlerBuilder is used to build a Router that can be passed to any HTTP
// server.  Once Build has been called, the HandlerBuilder is invalid and can
// no longer be used.  HandlerBuilder is not thread-safe.
type HandlerBuilder struct {
	c      di.Container
	config *Config
	logger logging.Logger

	paths        []string
	routesByPath map[string][]Route
	registered   []RegisteredRoute
	hasBeenBuilt bool
}

// NewHandlerBuilder creates a new handler builder with the provided config and
// container.  The container must be able to resolve a ControllerRegistry (see
// RegisterControllers).  logger may be nil.
func NewHandlerBuilder(c di.Container, logger logging.Logger, config *Config) *HandlerBuilder {
	return &HandlerBuilder{
		c:      c,
		config: config,
		logger: logger,

		routesByPath: make(map[string][]Route),
	}
}

// Use adds a route to the list of routes this handler should expose.  It
// panics if one of the route's methods is already handled on the same path.
func (b *HandlerBuilder) Use(route Route) {
	b.assertNotAlreadyBuilt()

	path := purifyPath(route.Path())
	methods := purifyMethods(route.Methods())

	if len(methods) == 0 {
		panic(fmt.Sprintf("the route '%v' does not accept any methods", path))
	}

	for _, existing := range b.routesByPath[path] {
		for _, method := range purifyMethods(existing.Methods()) {
			if containsMethod(methods, method) {
				panic(fmt.Sprintf("a route for %v %v has already been registered", method, path))
			}
		}
	}

	if _, seen := b.routesByPath[path]; !seen {
		b.paths = append(b.paths, path)
	}

	b.routesByPath[path] = append(b.routesByPath[path], route)
	b.registered = append(b.registered, RegisteredRoute{
		Pattern:  path,
		Methods:  methods,
		Callable: route.Controller(),
	})
}

// Build builds a Router that can be passed to any server, and registers it in
// the container as a singleton RouteLister.
func (b *HandlerBuilder) Build() *Router {
	b.assertNotAlreadyBuilt()
	b.hasBeenBuilt = true

	mx := mux.NewRouter()

	for _, path := range b.paths {
		ctxHandler := buildHandlerForPath(b.routesByPath[path])
		requestHandler := buildHandlerFromRequest(b.c, b.logger, b.config, ctxHandler)
		mx.HandleFunc(path, requestHandler)
	}

	notFoundRequestHandler := buildHandlerFromRequest(b.c, b.logger, b.config, func(ctx *Context) {
		ctx.NotFound("path", ctx.r.URL.Path)
	})

	mx.PathPrefix("/").HandlerFunc(notFoundRequestHandler)

	router := &Router{
		mx:     mx,
		routes: b.registered,
	}

	b.c.Register(di.Singleton, func(c di.Container) (RouteLister, error) {
		return router, nil
	})

	logf(b.logger, "• built router with %v routes on %v paths\n", len(b.registered), len(b.paths))

	return router
}

func (b *HandlerBuilder) assertNotAlreadyBuilt() {
	if b.hasBeenBuilt {
		panic("a HandlerBuilder can not be used after Build has been called")
	}
}

func buildHandlerFromRequest(c di.Container, logger logging.Logger, config *Config, ctxHandler ContextHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mrw := NewMeasuredResponseWriter(w)
		ctx := NewContext(mrw, r, c, config)

		defer func() {
			if p := recover(); p != nil && !mrw.HasWrittenHeaders() {
				err := fmt.Errorf("%v", p)
				ctx.InternalServerError(err)
			}

			logf(logger, "• %v %v %v %v %v\n", mrw.StatusCode(), mrw.Duration(), ByteSizeToFriendlyString(mrw.Volume()), r.Method, r.URL.Path)
		}()

		ctxHandler(ctx)
	}
}

func buildHandlerForPath(routes []Route) ContextHandlerFunc {
	handlerByMethod := make(map[string]ContextHandlerFunc)
	allowedMethods := []string{}

	for _, route := range routes {
		handler := buildHandlerForRoute(route)

		for _, method := range purifyMethods(route.Methods()) {
			handlerByMethod[method] = handler
			allowedMethods = append(allowedMethods, method)
		}
	}

	return func(ctx *Context) {
		if !ctx.AssertMethod(allowedMethods...) {
			return
		}

		handlerByMethod[strings.ToUpper(ctx.r.Method)](ctx)
	}
}

func buildHandlerForRoute(route Route) ContextHandlerFunc {
	name := route.Controller()

	return func(ctx *Context) {
		for _, mw := range route.Middleware() {
			shouldContinue := mw.Handle(ctx)
			if !shouldContinue {
				return
			}
		}

		var controllers ControllerRegistry
		if !ctx.Resolve(&controllers) {
			return
		}

		controller, err := controllers.Resolve(ctx.Container(), name)
		if err != nil {
			ctx.InternalServerError(err)
			return
		}

		err = Invoke(controller, ctx, ctx.RouteArguments())
		if err != nil {
			ctx.Error(err)
		}
	}
}

func purifyPath(path string) string {
	return strings.TrimSpace(strings.ReplaceAll(path, "\\", "/"))
}

func purifyMethods(methods []string) []string {
	purified := make([]string, 0, len(methods))

	for _, method := range methods {
		method = strings.ToUpper(strings.TrimSpace(method))
		if method != "" && !containsMethod(purified, method) {
			purified = append(purified, method)
		}
	}

	return purified
}

func containsMethod(methods []string, method string) bool {
	for _, m := range methods {
		if m == method {
			return true
		}
	}

	return false
}

func logf(logger logging.Logger, format string, args ...interface{}) {
	if logger == nil {
		return
	}

	logger.Printf(format, args...)
}
