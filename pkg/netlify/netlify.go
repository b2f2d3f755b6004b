package netlify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/nais/lander/pkg/lander/metrics"
	"github.com/nais/lander/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	DefaultURL = "https://api.netlify.com/api/v1"

	OperationCreateSite   = "create_site"
	OperationCreateDeploy = "create_deploy"

	archiveField    = "zip"
	archiveFilename = "site.zip"
	archiveMimeType = "application/zip"
)

type Site struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	SSLURL   string `json:"ssl_url"`
	AdminURL string `json:"admin_url"`
}

type Deploy struct {
	ID        string `json:"id"`
	SiteID    string `json:"site_id"`
	State     string `json:"state"`
	SSLURL    string `json:"ssl_url"`
	AdminURL  string `json:"admin_url"`
	CreatedAt string `json:"created_at"`
}

type createSiteRequest struct {
	Name         string  `json:"name"`
	CustomDomain *string `json:"custom_domain"`
	ForceSSL     bool    `json:"force_ssl"`
	Published    bool    `json:"published"`
}

// Error is returned when the provider answers with an unexpected status.
// Body holds the raw response text.
type Error struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	switch e.Operation {
	case OperationCreateSite:
		return fmt.Sprintf("failed to create site: %s", e.Body)
	case OperationCreateDeploy:
		return fmt.Sprintf("failed to deploy site: %s", e.Body)
	default:
		return fmt.Sprintf("%s: %s", e.Operation, e.Body)
	}
}

type Client struct {
	url        string
	httpClient *httpClient
}

func New(url, apiToken string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url: url,
		httpClient: &httpClient{
			client:   http.DefaultClient,
			apiToken: apiToken,
		},
	}
}

// CreateSite registers a new published site with forced TLS.
func (c *Client) CreateSite(ctx context.Context, name string) (*Site, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "netlify.CreateSite")
	defer span.End()
	span.SetAttributes(attribute.String("site.name", name))

	body, err := json.Marshal(createSiteRequest{
		Name:      name,
		ForceSSL:  true,
		Published: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/sites", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	site := &Site{}
	err = c.do(req, OperationCreateSite, http.StatusCreated, site)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("site.id", site.ID))
	return site, nil
}

// CreateDeploy uploads a zip archive as a new deploy of an existing site.
func (c *Client) CreateDeploy(ctx context.Context, siteID string, archive []byte) (*Deploy, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "netlify.CreateDeploy")
	defer span.End()
	span.SetAttributes(
		attribute.String("site.id", siteID),
		attribute.Int("archive.size", len(archive)),
	)

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, archiveField, archiveFilename))
	header.Set("Content-Type", archiveMimeType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, err
	}
	_, err = part.Write(archive)
	if err != nil {
		return nil, err
	}
	err = mw.Close()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/sites/%s/deploys", c.url, siteID), buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	deploy := &Deploy{}
	err = c.do(req, OperationCreateDeploy, http.StatusOK, deploy)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("deploy.id", deploy.ID))
	return deploy, nil
}

func (c *Client) do(req *http.Request, operation string, expected int, target any) error {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ProviderRequest(operation, 0, start)
		return fmt.Errorf("%s: %w", operation, err)
	}
	defer resp.Body.Close()

	metrics.ProviderRequest(operation, resp.StatusCode, start)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", operation, err)
	}

	if resp.StatusCode != expected {
		return &Error{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	err = json.Unmarshal(body, target)
	if err != nil {
		return fmt.Errorf("%s: decode response: %w", operation, err)
	}

	return nil
}
