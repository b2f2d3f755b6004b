package api_v1

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/nais/lander/pkg/publisher"
)

// ErrResponse is the body of every failed request.
type ErrResponse struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	ErrorText string `json:"error"`
	Message   string `json:"message,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		ErrorText:      string(publisher.KindValidationFailed),
		Message:        err.Error(),
	}
}

// ErrPublish maps an error from the publisher to a response.
func ErrPublish(err error) render.Renderer {
	kind := publisher.ErrorKind(err)
	status := http.StatusInternalServerError

	var pubErr *publisher.Error
	isPubErr := errors.As(err, &pubErr)

	switch {
	case kind == publisher.KindRateLimitExceeded:
		status = http.StatusTooManyRequests
	case kind == publisher.KindValidationFailed:
		status = http.StatusBadRequest
	case isPubErr && pubErr.Remote():
		status = http.StatusBadGateway
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: status,
		ErrorText:      string(kind),
		Message:        err.Error(),
	}
}

var ErrNotFound = &ErrResponse{HTTPStatusCode: http.StatusNotFound, ErrorText: "Endpoint not found"}

var ErrMethodNotAllowed = &ErrResponse{HTTPStatusCode: http.StatusMethodNotAllowed, ErrorText: "Method not allowed"}
