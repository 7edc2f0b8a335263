// Package webapptest provides utilities for testing applications built on
// webapp: invoking a controller without a router, and reconciling the routes
// an application registers against a whitelist.
package webapptest

import (
	"net/http"
	"net/http/httptest"

	"github.com/ljpx/di"
	"github.com/ljpx/webapp"
)

// InvokeController runs c against r without dispatching through a Router.  The
// controller receives a context backed by a new ResponseRecorder, an empty
// container, webapp.DefaultConfig() and empty route arguments.  The recorder
// and the error returned by the controller are returned unmodified.
func InvokeController(c webapp.Controller, r *http.Request) (*httptest.ResponseRecorder, error) {
	w := httptest.NewRecorder()
	ctx := webapp.NewContext(w, r, di.NewContainer(), webapp.DefaultConfig())

	err := webapp.Invoke(c, ctx, webapp.RouteArguments{})

	return w, err
}
