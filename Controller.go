package webapp

//go:generate mockgen -source=Controller.go -destination=internal/mock/controller_mock.go -package=mock

import (
	"reflect"
	"runtime"
	"strings"
)

// RouteArguments holds the path parameters matched for a request, keyed by
// parameter name.
type RouteArguments map[string]string

// Controller defines the methods that any request handling controller must
// implement.  Execute writes its response through ctx.  A returned error is
// not handled by the controller layer; it is reported by the handler built by
// HandlerBuilder.
type Controller interface {
	Execute(ctx *Context, args RouteArguments) error
}

// NamedController may be implemented by controllers that want to choose the
// identifier they are registered and reconciled under.
type NamedController interface {
	Name() string
}

// ControllerFunc allows an ordinary function to be used as a Controller.
type ControllerFunc func(ctx *Context, args RouteArguments) error

var _ Controller = ControllerFunc(nil)

// Execute calls f(ctx, args).
func (f ControllerFunc) Execute(ctx *Context, args RouteArguments) error {
	return f(ctx, args)
}

// Invoke runs c for a dispatched request.  It is the entry point used by the
// router, and returns whatever error Execute returns.
func Invoke(c Controller, ctx *Context, args RouteArguments) error {
	return c.Execute(ctx, args)
}

// ControllerName returns the fully qualified identifier of c, for example
// "github.com/acme/app/controller.ProfileViewMeController".
func ControllerName(c Controller) string {
	if named, ok := c.(NamedController); ok {
		return named.Name()
	}

	if f, ok := c.(ControllerFunc); ok {
		if fn := runtime.FuncForPC(reflect.ValueOf(f).Pointer()); fn != nil {
			return fn.Name()
		}
	}

	t := reflect.TypeOf(c)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == nil {
		return ""
	}

	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}

// ShortControllerName strips the package qualifier from a controller
// identifier, e.g. "github.com/acme/app/controller.Profile" => "Profile".
func ShortControllerName(name string) string {
	name = name[strings.LastIndex(name, "/")+1:]
	name = name[strings.LastIndex(name, ".")+1:]

	return strings.TrimPrefix(name, "*")
}

// IsQualifiedControllerName returns true if name carries a package qualifier.
func IsQualifiedControllerName(name string) bool {
	return strings.ContainsAny(name, "./")
}
