package webapp

import (
	"errors"
	"fmt"
)

// DefaultLanguage is the language that messages fall back to.
const DefaultLanguage = "en"

// ErrNoTranslation is returned when neither the requested language nor the
// default language has a message.
var ErrNoTranslation = errors.New("no translation available")

// Translatable defines the methods that any error with a user facing, localized
// message must implement.  Context.Error uses it to build the response.
type Translatable interface {
	error
	TranslatedMessage() (string, error)
	ErrorCode() int
	HTTPStatus() int
}

// LocalizedError is an error carrying a message per language, an application
// error code and the HTTP status it should be reported with.  Domain errors
// embed it and supply their own messages.  It is immutable once created.
type LocalizedError struct {
	lang     string
	code     int
	status   int
	messages map[string]string
}

var _ Translatable = &LocalizedError{}

// NewLocalizedError creates a new LocalizedError held in lang.  An empty lang
// is treated as DefaultLanguage.
func NewLocalizedError(lang string, code int, status int, messages map[string]string) *LocalizedError {
	if lang == "" {
		lang = DefaultLanguage
	}

	copied := make(map[string]string, len(messages))
	for k, v := range messages {
		copied[k] = v
	}

	return &LocalizedError{
		lang:     lang,
		code:     code,
		status:   status,
		messages: copied,
	}
}

// Language returns the language the error was raised in.
func (e *LocalizedError) Language() string {
	return e.lang
}

// ErrorCode returns the application specific error code.
func (e *LocalizedError) ErrorCode() int {
	return e.code
}

// HTTPStatus returns the status code the error should be reported with.
func (e *LocalizedError) HTTPStatus() int {
	return e.status
}

// TranslatedMessage returns the message for the held language.  If there is
// none, the DefaultLanguage message is returned instead.  If that is missing
// too, the error wraps ErrNoTranslation.
func (e *LocalizedError) TranslatedMessage() (string, error) {
	if msg, ok := e.messages[e.lang]; ok {
		return msg, nil
	}

	if msg, ok := e.messages[DefaultLanguage]; ok {
		return msg, nil
	}

	return "", fmt.Errorf("%w for language '%v' (error code %v)", ErrNoTranslation, e.lang, e.code)
}

// Error implements error.
func (e *LocalizedError) Error() string {
	msg, err := e.TranslatedMessage()
	if err != nil {
		return fmt.Sprintf("error %v", e.code)
	}

	return msg
}
