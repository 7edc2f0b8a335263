package webapp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/ljpx/di"
	"github.com/ljpx/id"
	"github.com/ljpx/problem"
)

// Context represents the context of a single HTTP web request.  It is not
// thread-safe.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	c      di.Container
	config *Config

	correlationID       id.ID
	middlewareArtifacts map[string]interface{}
}

// NewContext creates a new context for the provided request.
func NewContext(w http.ResponseWriter, r *http.Request, c di.Container, config *Config) *Context {
	return &Context{
		w:      w,
		r:      r,
		c:      c.Fork(),
		config: config,

		correlationID:       id.New(),
		middlewareArtifacts: make(map[string]interface{}),
	}
}

// GetCorrelationID returns the correlationID for the request.
func (ctx *Context) GetCorrelationID() id.ID {
	return ctx.correlationID
}

// GetMiddlewareArtifact retrieves the middleware artifact with the specified
// name.  It will return nil if the artifact does not exist.
func (ctx *Context) GetMiddlewareArtifact(name string) interface{} {
	v := ctx.middlewareArtifacts[name]
	return v
}

// SetMiddlewareArtifact sets the middleware artifact for the specified name.
func (ctx *Context) SetMiddlewareArtifact(name string, value interface{}) {
	ctx.middlewareArtifacts[name] = value
}

// ResponseWriter returns the http.ResponseWriter.
func (ctx *Context) ResponseWriter() http.ResponseWriter {
	return ctx.w
}

// Container returns the underlying container.
func (ctx *Context) Container() di.Container {
	return ctx.c
}

// Request returns the *http.Request.
func (ctx *Context) Request() *http.Request {
	return ctx.r
}

// Header returns the set of response headers.
func (ctx *Context) Header() http.Header {
	return ctx.w.Header()
}

// GetPathParameter retrieves a path segment parameter from the request.
func (ctx *Context) GetPathParameter(name string) string {
	return mux.Vars(ctx.r)[name]
}

// RouteArguments returns a copy of every path segment parameter matched for
// the request.  It is never nil.
func (ctx *Context) RouteArguments() RouteArguments {
	args := RouteArguments{}
	for name, value := range mux.Vars(ctx.r) {
		args[name] = value
	}

	return args
}

// Language returns the base language code the client asked for, or the
// configured default language.
func (ctx *Context) Language() string {
	fallback := ctx.config.DefaultLanguage
	if fallback == "" {
		fallback = DefaultLanguage
	}

	return ResolveLanguage(ctx.r, fallback)
}

// GetQueryParameter retrieves a query parameter from the request.
func (ctx *Context) GetQueryParameter(name string) string {
	return ctx.r.URL.Query().Get(name)
}

// FromJSON retrieves JSON from the request body to place into the provided
// Purifiable.
func (ctx *Context) FromJSON(model Purifiable) bool {
	if !ctx.AssertContentType("application/json") {
		return false
	}

	if !ctx.AssertContentLength(ctx.config.JSONContentLengthLimit) {
		return false
	}

	decoder := json.NewDecoder(ctx.r.Body)
	err := decoder.Decode(model)
	if err != nil {
		details := ctx.problem(http.StatusBadRequest, "json/deserialization", "The provided request body could not be deserialized.", nil)
		ctx.respondWithProblem(http.StatusBadRequest, details, err)
		return false
	}

	field, err := model.Purify()
	if err != nil {
		details := ctx.problem(http.StatusUnprocessableEntity, "http/unprocessable-entity", "The provided request body contained an invalid value.", map[string]interface{}{
			"field": field,
			"error": err.Error(),
		})
		ctx.RespondWithJSON(http.StatusUnprocessableEntity, details)
		return false
	}

	return true
}

// Respond reponds to the request with the provided HTTP code.
func (ctx *Context) Respond(code int) {
	ctx.w.Header().Set("Correlation-ID", ctx.correlationID.String())
	ctx.w.WriteHeader(code)
}

// RespondWithJSON responds to the request with the provided HTTP code and
// model.
func (ctx *Context) RespondWithJSON(code int, model interface{}) {
	rawJSON, err := json.Marshal(model)
	if err != nil {
		code = http.StatusInternalServerError
		details := ctx.problem(code, "http/internal-server-error", "The response could not be serialized.", nil)
		if ctx.config.DebuggingEnabled {
			details.AttachError(err)
		}

		rawJSON, _ = json.Marshal(details)
	}

	ctx.w.Header().Set("Content-Type", "application/json")
	ctx.w.Header().Set("Content-Length", fmt.Sprintf("%v", len(rawJSON)))
	ctx.Respond(code)
	ctx.w.Write(rawJSON)
}

// NotFound responds to the request with a NotFound status code.
func (ctx *Context) NotFound(subjectType string, subject string) {
	details := ctx.problem(http.StatusNotFound, "http/not-found", fmt.Sprintf("The %v '%v' was not found.", subjectType, subject), map[string]interface{}{
		"subjectType": subjectType,
		"subject":     subject,
	})
	ctx.RespondWithJSON(http.StatusNotFound, details)
}

// InternalServerError responds to the request with an InternalServerError
// status code.
func (ctx *Context) InternalServerError(err error) {
	details := ctx.problem(http.StatusInternalServerError, "http/internal-server-error", "An internal error prevented the request from completing.", nil)
	ctx.respondWithProblem(http.StatusInternalServerError, details, err)
}

// Error responds to the request with the provided error.  A Translatable error
// is reported with its own status and translated message; anything else, or a
// Translatable without any message, is an InternalServerError.
func (ctx *Context) Error(err error) {
	var translatable Translatable
	if !errors.As(err, &translatable) {
		ctx.InternalServerError(err)
		return
	}

	message, terr := translatable.TranslatedMessage()
	if terr != nil {
		ctx.InternalServerError(terr)
		return
	}

	lang := ctx.Language()
	if localized, ok := translatable.(interface{ Language() string }); ok {
		lang = localized.Language()
	}

	status := translatable.HTTPStatus()
	details := ctx.problem(status, fmt.Sprintf("app/%v", translatable.ErrorCode()), message, map[string]interface{}{
		"code":     translatable.ErrorCode(),
		"language": lang,
	})
	ctx.RespondWithJSON(status, details)
}

// Resolve resolves from the underlying container.  It will return false if
// an error prevented the operation from completing.
func (ctx *Context) Resolve(dependencies ...interface{}) bool {
	err := ctx.c.Resolve(dependencies...)
	if err != nil {
		ctx.InternalServerError(err)
		return false
	}

	return true
}

// AssertContentType ensures that the content type of the request matches one of
// the content types provided.
func (ctx *Context) AssertContentType(allowedContentTypes ...string) bool {
	contentType := ctx.r.Header.Get("Content-Type")
	contentTypeUppercase := strings.TrimSpace(strings.ToUpper(contentType))

	for _, allowedContentType := range allowedContentTypes {
		if contentTypeUppercase == strings.ToUpper(allowedContentType) {
			return true
		}
	}

	details := ctx.problem(http.StatusUnsupportedMediaType, "http/unsupported-media-type", fmt.Sprintf("The Content-Type '%v' is not accepted here.", contentType), map[string]interface{}{
		"providedContentType": contentType,
		"allowedContentTypes": allowedContentTypes,
	})
	ctx.RespondWithJSON(http.StatusUnsupportedMediaType, details)

	return false
}

// AssertContentLength ensures that a content length was provided, and that it
// is in (0, max].
func (ctx *Context) AssertContentLength(max int64) bool {
	contentLength := ctx.r.ContentLength

	if contentLength > max {
		detail := fmt.Sprintf("The request body of %v exceeds the limit of %v.", ByteSizeToFriendlyString(contentLength), ByteSizeToFriendlyString(max))
		details := ctx.problem(http.StatusRequestEntityTooLarge, "http/request-entity-too-large", detail, map[string]interface{}{
			"contentLength":        contentLength,
			"maximumContentLength": max,
		})
		ctx.RespondWithJSON(http.StatusRequestEntityTooLarge, details)
		return false
	}

	if contentLength <= 0 {
		details := ctx.problem(http.StatusLengthRequired, "http/length-required", "A positive Content-Length is required.", nil)
		ctx.RespondWithJSON(http.StatusLengthRequired, details)
		return false
	}

	return true
}

// AssertMethod ensures that the incoming request is using one of the provided
// methods.
func (ctx *Context) AssertMethod(allowedMethods ...string) bool {
	methodUpperCase := strings.ToUpper(ctx.r.Method)

	for _, allowedMethod := range allowedMethods {
		if methodUpperCase == strings.ToUpper(allowedMethod) {
			return true
		}
	}

	details := ctx.problem(http.StatusMethodNotAllowed, "http/method-not-allowed", fmt.Sprintf("The '%v' method is not allowed here.", ctx.r.Method), map[string]interface{}{
		"methodUsed":     ctx.r.Method,
		"allowedMethods": allowedMethods,
	})
	ctx.RespondWithJSON(http.StatusMethodNotAllowed, details)

	return false
}

// problem builds a problem document of type <prefix>/<kind>, titled with the
// status text of status.
func (ctx *Context) problem(status int, kind string, detail string, specifics map[string]interface{}) *problem.Details {
	return &problem.Details{
		Type:      fmt.Sprintf("%v/%v", ctx.config.ProblemDetailsTypePrefix, kind),
		Title:     http.StatusText(status),
		Detail:    detail,
		Specifics: specifics,
	}
}

// respondWithProblem answers with status and details.  err is only attached
// when debugging is enabled.
func (ctx *Context) respondWithProblem(status int, details *problem.Details, err error) {
	if ctx.config.DebuggingEnabled && err != nil {
		details.AttachError(err)
	}

	ctx.RespondWithJSON(status, details)
}
