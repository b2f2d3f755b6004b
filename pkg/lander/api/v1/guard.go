package api_v1

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/render"
	"github.com/nais/lander/pkg/logging"
	"github.com/nais/lander/pkg/publisher"
)

const jsonContentType = "application/json"

// RequireJSON rejects request bodies that are not declared as JSON.
// Empty bodies pass through so the handler can report the missing data.
func RequireJSON(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != jsonContentType {
			render.Render(w, r, ErrUnsupportedMediaType(r.Header.Get("Content-Type")))
			return
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}

// Deadline bounds the request context. Work that honors the context fails
// with an error the handler renders like any other.
func Deadline(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

// Recoverer turns a panicking handler into a JSON 500 response.
func Recoverer(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			logging.FromContext(r.Context()).WithField("stack", string(debug.Stack())).Errorf("Recovered from panic: %v", rvr)
			render.Render(w, r, ErrInternal(fmt.Errorf("panic: %v", rvr)))
		}()
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}

func ErrUnsupportedMediaType(contentType string) render.Renderer {
	return &ErrResponse{
		Err:            fmt.Errorf("unsupported content type %q", contentType),
		HTTPStatusCode: http.StatusUnsupportedMediaType,
		ErrorText:      string(publisher.KindValidationFailed),
		Message:        "Content-Type must be application/json",
	}
}

func ErrInternal(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		ErrorText:      "Internal server error",
		Message:        "the request could not be completed",
	}
}
