package http

import (
	"net/http"

	"power-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records the service error a handler answered with, so the
// metrics and completion log middlewares can label requests by error code.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcErr *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcErr *svcerrors.ServiceError) {
	w.svcErr = svcErr
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcErr == nil {
		return ""
	}
	return w.svcErr.Code
}

func (w *appResponseWriter) ErrorCategory() string {
	if w.svcErr == nil {
		return ""
	}
	return w.svcErr.Category
}
