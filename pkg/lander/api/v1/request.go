package api_v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/nais/lander/pkg/publisher"
	"github.com/nais/lander/pkg/theme"
	log "github.com/sirupsen/logrus"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500

	// Upper bound of a request body, well above what a valid request needs.
	MaxBodySize = 64 * 1024
)

var ErrNoData = errors.New("No JSON data provided")

type Request struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Theme       *theme.Theme `json:"theme,omitempty"`
}

func (r *Request) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *Request) validate() error {
	if len(r.Title) == 0 {
		return fmt.Errorf("Title is required")
	}

	if len(r.Description) == 0 {
		return fmt.Errorf("Description is required")
	}

	if utf8.RuneCountInString(r.Title) > MaxTitleLength {
		return fmt.Errorf("Title must be %d characters or less", MaxTitleLength)
	}

	if utf8.RuneCountInString(r.Description) > MaxDescriptionLength {
		return fmt.Errorf("Description must be %d characters or less", MaxDescriptionLength)
	}

	return nil
}

func (r *Request) LogFields() log.Fields {
	return log.Fields{
		"title": r.Title,
		"theme": theme.DisplayName(r.Theme),
	}
}

func (r *Request) Publisher() publisher.Request {
	return publisher.Request{
		Title:       r.Title,
		Description: r.Description,
		Theme:       r.Theme,
	}
}

// DecodeRequest reads and validates a page request. Returned errors are
// meant for the caller.
func DecodeRequest(r *http.Request) (*Request, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("unable to read request body: %s", err)
	}
	if len(data) > MaxBodySize {
		return nil, fmt.Errorf("request body exceeds %d bytes", MaxBodySize)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrNoData
	}

	request := &Request{}
	err = json.Unmarshal(data, request)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal request body: %s", err)
	}

	request.normalize()

	err = request.validate()
	if err != nil {
		return nil, err
	}

	return request, nil
}
