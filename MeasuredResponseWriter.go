package webapp

import (
	"net/http"
	"time"
)

// MeasuredResponseWriter wraps the http.ResponseWriter handed to a Context and
// measures the response for the request log line written by HandlerBuilder.
// It also tells the panic recovery whether the response has already started.
type MeasuredResponseWriter struct {
	w       http.ResponseWriter
	started time.Time
	status  int
	written int64
}

var _ http.ResponseWriter = &MeasuredResponseWriter{}

// NewMeasuredResponseWriter starts measuring a response written to w.
func NewMeasuredResponseWriter(w http.ResponseWriter) *MeasuredResponseWriter {
	return &MeasuredResponseWriter{w: w, started: time.Now()}
}

// Header returns the headers of the underlying writer.
func (mrw *MeasuredResponseWriter) Header() http.Header {
	return mrw.w.Header()
}

// Write writes b to the underlying writer.  Like net/http, a Write before any
// WriteHeader commits the response with http.StatusOK.
func (mrw *MeasuredResponseWriter) Write(b []byte) (int, error) {
	if mrw.status == 0 {
		mrw.status = http.StatusOK
	}

	n, err := mrw.w.Write(b)
	mrw.written += int64(n)

	return n, err
}

// WriteHeader writes statusCode unless the response has already started.
func (mrw *MeasuredResponseWriter) WriteHeader(statusCode int) {
	if mrw.status != 0 {
		return
	}

	mrw.status = statusCode
	mrw.w.WriteHeader(statusCode)
}

// StatusCode is the status the response started with, or http.StatusOK.
func (mrw *MeasuredResponseWriter) StatusCode() int {
	if mrw.status == 0 {
		return http.StatusOK
	}

	return mrw.status
}

// HasWrittenHeaders returns true once the response has started.
func (mrw *MeasuredResponseWriter) HasWrittenHeaders() bool {
	return mrw.status != 0
}

// Duration is the time elapsed since the writer was created, truncated to
// the millisecond.
func (mrw *MeasuredResponseWriter) Duration() time.Duration {
	return time.Since(mrw.started).Truncate(time.Millisecond)
}

// Volume is the number of body bytes written.
func (mrw *MeasuredResponseWriter) Volume() int64 {
	return mrw.written
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (mrw *MeasuredResponseWriter) Unwrap() http.ResponseWriter {
	return mrw.w
}
