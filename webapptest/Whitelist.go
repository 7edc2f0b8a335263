package webapptest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ljpx/di"
	"github.com/ljpx/webapp"
)

// RouteDescriptor declares a route an application is expected to register.
// Controller may be a fully qualified controller name or a short one.  Method
// is matched case-insensitively.
type RouteDescriptor struct {
	Pattern    string
	Method     string
	Controller string
}

// Whitelist is the hand-maintained list of every route an application is
// expected to register, one entry per pattern and method.
type Whitelist []RouteDescriptor

// Report holds the drift found by both reconciliation passes.
type Report struct {
	Registered []*Drift
	Declared   []*Drift
}

// Drifts returns the drift of the forward pass followed by that of the
// reverse pass.
func (report *Report) Drifts() []*Drift {
	drifts := make([]*Drift, 0, len(report.Registered)+len(report.Declared))
	drifts = append(drifts, report.Registered...)

	return append(drifts, report.Declared...)
}

// HasDrift returns true if either pass found any drift.
func (report *Report) HasDrift() bool {
	return len(report.Registered) > 0 || len(report.Declared) > 0
}

// Reconciler detects drift between a Whitelist and the routes of a built
// router, in both directions.
type Reconciler struct {
	whitelist   Whitelist
	routes      []webapp.RegisteredRoute
	controllers webapp.ControllerRegistry
	c           di.Container
}

// NewReconciler creates a reconciler for the routes listed by router.
// Controllers named by routes are resolved from controllers using c.
func NewReconciler(whitelist Whitelist, router webapp.RouteLister, controllers webapp.ControllerRegistry, c di.Container) *Reconciler {
	return &Reconciler{
		whitelist:   whitelist,
		routes:      router.Routes(),
		controllers: controllers,
		c:           c,
	}
}

// NewReconcilerFromContainer resolves the webapp.RouteLister registered by
// HandlerBuilder.Build and the webapp.ControllerRegistry registered by
// webapp.RegisterControllers from c, and creates a reconciler for them.
func NewReconcilerFromContainer(c di.Container, whitelist Whitelist) (*Reconciler, error) {
	var router webapp.RouteLister
	var controllers webapp.ControllerRegistry

	err := c.Resolve(&router, &controllers)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve the application router: %w", err)
	}

	return NewReconciler(whitelist, router, controllers, c), nil
}

// Check reconciles whitelist against the application held by c.
func Check(c di.Container, whitelist Whitelist) (*Report, error) {
	reconciler, err := NewReconcilerFromContainer(c, whitelist)
	if err != nil {
		return nil, err
	}

	return reconciler.Report(), nil
}

// Report runs both passes.
func (r *Reconciler) Report() *Report {
	return &Report{
		Registered: r.Registered(),
		Declared:   r.Declared(),
	}
}

// Registered checks that every method of every registered route is present in
// the whitelist exactly once, and is bound to the whitelisted controller.
func (r *Reconciler) Registered() []*Drift {
	drifts := []*Drift{}

	for _, route := range r.routes {
		for _, method := range route.Methods {
			method = normalizeMethod(method)

			matches := []RouteDescriptor{}
			for _, expected := range r.whitelist {
				if expected.Pattern == route.Pattern && normalizeMethod(expected.Method) == method {
					matches = append(matches, expected)
				}
			}

			if len(matches) == 0 {
				drifts = append(drifts, &Drift{Kind: DriftUndeclared, Pattern: route.Pattern, Method: method, Actual: route.Callable})
				continue
			}

			if len(matches) > 1 {
				drifts = append(drifts, &Drift{Kind: DriftAmbiguous, Pattern: route.Pattern, Method: method, Matches: len(matches), InWhitelist: true})
				continue
			}

			if drift := r.compareControllers(route.Pattern, method, matches[0].Controller, route.Callable); drift != nil {
				drifts = append(drifts, drift)
			}
		}
	}

	return drifts
}

// Declared checks that every whitelisted route is registered exactly once, and
// that it is bound to the whitelisted controller.
func (r *Reconciler) Declared() []*Drift {
	drifts := []*Drift{}

	for _, expected := range r.whitelist {
		method := normalizeMethod(expected.Method)

		matches := []webapp.RegisteredRoute{}
		for _, route := range r.routes {
			if route.Pattern == expected.Pattern && hasMethod(route.Methods, method) {
				matches = append(matches, route)
			}
		}

		if len(matches) == 0 {
			drifts = append(drifts, &Drift{Kind: DriftMissing, Pattern: expected.Pattern, Method: method, Expected: expected.Controller})
			continue
		}

		if len(matches) > 1 {
			drifts = append(drifts, &Drift{Kind: DriftAmbiguous, Pattern: expected.Pattern, Method: method, Matches: len(matches)})
			continue
		}

		if drift := r.compareControllers(expected.Pattern, method, expected.Controller, matches[0].Callable); drift != nil {
			drifts = append(drifts, drift)
		}
	}

	return drifts
}

// compareControllers compares qualified names verbatim when both are
// qualified, and short names otherwise.  The controller the route is bound to
// must then be resolvable under the route's own name, which is the name
// HandlerBuilder resolves it by.
func (r *Reconciler) compareControllers(pattern, method, expected, actual string) *Drift {
	expectedName, actualName := expected, actual
	if !webapp.IsQualifiedControllerName(expected) || !webapp.IsQualifiedControllerName(actual) {
		expectedName = webapp.ShortControllerName(expected)
		actualName = webapp.ShortControllerName(actual)
	}

	if expectedName != actualName {
		return &Drift{Kind: DriftControllerMismatch, Pattern: pattern, Method: method, Expected: expectedName, Actual: actualName}
	}

	controller, err := r.controllers.Resolve(r.c, actual)
	if err != nil || controller == nil {
		return &Drift{Kind: DriftControllerUnregistered, Pattern: pattern, Method: method, Expected: actual, Err: err}
	}

	return nil
}

// AssertRoutes fails t for every drift between the whitelist and the routes of
// the application held by c.  The two directions are reported under the names
// RoutesAreInTheWhitelist and AllWhitelistRoutesArePresent, as subtests when t
// is a *testing.T.
func AssertRoutes(t testing.TB, c di.Container, whitelist Whitelist) {
	t.Helper()

	report, err := Check(c, whitelist)
	if err != nil {
		t.Fatalf("%v", err)
		return
	}

	assertPass(t, "RoutesAreInTheWhitelist", report.Registered)
	assertPass(t, "AllWhitelistRoutesArePresent", report.Declared)
}

func assertPass(t testing.TB, name string, drifts []*Drift) {
	t.Helper()

	if tt, ok := t.(*testing.T); ok {
		tt.Run(name, func(t *testing.T) {
			assertNoDrift(t, drifts)
		})

		return
	}

	for _, drift := range drifts {
		t.Errorf("%v: %v", name, drift)
	}
}

func assertNoDrift(t testing.TB, drifts []*Drift) {
	t.Helper()

	for _, drift := range drifts {
		t.Errorf("%v", drift)
	}
}

func normalizeMethod(method string) string {
	return strings.ToUpper(strings.TrimSpace(method))
}

func hasMethod(methods []string, method string) bool {
	for _, m := range methods {
		if normalizeMethod(m) == method {
			return true
		}
	}

	return false
}
