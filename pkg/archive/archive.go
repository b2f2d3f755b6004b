package archive

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/zip"
)

const (
	IndexFile     = "index.html"
	RedirectsFile = "_redirects"
	ConfigFile    = "netlify.toml"

	// Serve index.html for every path so client-side routing works.
	RedirectRule = "/* /index.html 200"
)

type Build struct {
	Publish string `toml:"publish"`
}

type HeaderRule struct {
	For    string            `toml:"for"`
	Values map[string]string `toml:"values"`
}

// HostConfig is the hosting provider configuration shipped with every site.
type HostConfig struct {
	Build   Build        `toml:"build"`
	Headers []HeaderRule `toml:"headers"`
}

// SecurityHeaders are sent on every response of a published site.
var SecurityHeaders = map[string]string{
	"X-Frame-Options":        "DENY",
	"X-XSS-Protection":       "1; mode=block",
	"X-Content-Type-Options": "nosniff",
	"Referrer-Policy":        "strict-origin-when-cross-origin",
}

func DefaultHostConfig() HostConfig {
	return HostConfig{
		Build: Build{
			Publish: ".",
		},
		Headers: []HeaderRule{
			{
				For:    "/*",
				Values: SecurityHeaders,
			},
		},
	}
}

func encodeHostConfig(cfg HostConfig) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := toml.NewEncoder(buf).Encode(cfg)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type entry struct {
	name string
	data []byte
}

// Package creates a deflate compressed zip archive containing the
// rendered document, the redirect rule and the host configuration.
func Package(html string) ([]byte, error) {
	hostConfig, err := encodeHostConfig(DefaultHostConfig())
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", ConfigFile, err)
	}

	entries := []entry{
		{name: IndexFile, data: []byte(html)},
		{name: RedirectsFile, data: []byte(RedirectRule)},
		{name: ConfigFile, data: hostConfig},
	}

	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			return nil, fmt.Errorf("writing %s: %w", e.name, err)
		}
		_, err = w.Write(e.data)
		if err != nil {
			return nil, fmt.Errorf("writing %s: %w", e.name, err)
		}
	}

	err = zw.Close()
	if err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}

	return buf.Bytes(), nil
}

// Entries reads back every file in an archive, in archive order.
func Entries(data []byte) ([]string, map[string][]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, err
	}

	names := make([]string, 0, len(zr.File))
	contents := make(map[string][]byte, len(zr.File))

	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		names = append(names, f.Name)
		contents[f.Name] = content
	}

	return names, contents, nil
}
