package webapp_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ljpx/di"
	"github.com/ljpx/test"
	"github.com/ljpx/webapp"
	"github.com/ljpx/webapp/internal/mock"
	"go.uber.org/mock/gomock"
)

func TestInvokeDelegatesToExecute(t *testing.T) {
	// Arrange.
	ctrl := gomock.NewController(t)
	controller := mock.NewMockController(ctrl)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := webapp.NewContext(w, r, di.NewContainer(), webapp.DefaultConfig())
	args := webapp.RouteArguments{"api_version": "1"}

	controller.EXPECT().Execute(ctx, args).Times(1).Return(nil)

	// Act.
	err := webapp.Invoke(controller, ctx, args)

	// Assert.
	test.That(t, err).IsNil()
}

func TestInvokeReturnsExecuteErrorUnchanged(t *testing.T) {
	// Arrange.
	ctrl := gomock.NewController(t)
	controller := mock.NewMockController(ctrl)
	failure := webapp.NewLocalizedError("de", 4001, http.StatusBadRequest, map[string]string{"en": "Invalid."})

	controller.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(failure)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := webapp.NewContext(w, r, di.NewContainer(), webapp.DefaultConfig())

	// Act.
	err := webapp.Invoke(controller, ctx, webapp.RouteArguments{})

	// Assert.
	test.That(t, errors.Is(err, failure)).IsTrue()
	test.That(t, w.Result().StatusCode).IsEqualTo(http.StatusOK)
}

func TestControllerName(t *testing.T) {
	ctrl := gomock.NewController(t)
	named := mock.NewMockNamedController(ctrl)
	named.EXPECT().Name().Return("App\\Controller\\ProfileViewMeController")

	testCases := []struct {
		given    webapp.Controller
		expected string
	}{
		{given: &profileViewMeController{}, expected: "github.com/ljpx/webapp_test.profileViewMeController"},
		{given: profileViewMeController{}, expected: "github.com/ljpx/webapp_test.profileViewMeController"},
		{given: webapp.ControllerFunc(statusController), expected: "github.com/ljpx/webapp_test.statusController"},
		{given: &namedController{NamedController: named}, expected: "App\\Controller\\ProfileViewMeController"},
	}

	for _, testCase := range testCases {
		// Act.
		name := webapp.ControllerName(testCase.given)

		// Assert.
		test.That(t, name).IsEqualTo(testCase.expected)
	}
}

func TestShortControllerName(t *testing.T) {
	testCases := []struct {
		given     string
		expected  string
		qualified bool
	}{
		{given: "github.com/acme/app/controller.ProfileViewMeController", expected: "ProfileViewMeController", qualified: true},
		{given: "controller.ProfileViewMeController", expected: "ProfileViewMeController", qualified: true},
		{given: "ProfileViewMeController", expected: "ProfileViewMeController", qualified: false},
		{given: "*ProfileViewMeController", expected: "ProfileViewMeController", qualified: false},
		{given: "", expected: "", qualified: false},
	}

	for _, testCase := range testCases {
		// Act and Assert.
		test.That(t, webapp.ShortControllerName(testCase.given)).IsEqualTo(testCase.expected)
		test.That(t, webapp.IsQualifiedControllerName(testCase.given)).IsEqualTo(testCase.qualified)
	}
}

// -----------------------------------------------------------------------------

type profileViewMeController struct{}

func (profileViewMeController) Execute(ctx *webapp.Context, args webapp.RouteArguments) error {
	ctx.Respond(http.StatusNoContent)
	return nil
}

func statusController(ctx *webapp.Context, args webapp.RouteArguments) error {
	ctx.Respond(http.StatusOK)
	return nil
}

type namedController struct {
	webapp.NamedController
	profileViewMeController
}
