// Package store implements the StoreClient port against an HTTP store gateway.
package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.trai.ch/apkfetch/internal/core/domain"
	"go.trai.ch/apkfetch/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	detailsPath  = "/details"
	downloadPath = "/download"

	deviceIDHeader = "X-DFE-Device-Id"

	progressThrottle = 100 * time.Millisecond
	progressWidth    = 40
)

var _ ports.StoreClient = (*Client)(nil)

// Client talks to the store gateway on behalf of one set of credentials.
type Client struct {
	baseURL     string
	userAgent   string
	creds       Credentials
	httpClient  *http.Client
	progressOut io.Writer
}

// NewClient creates a Client for the given credentials and gateway configuration.
func NewClient(creds Credentials, cfg domain.StoreConfig) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		creds:     creds,
		httpClient: newHTTPClient(cfg.Timeout),
	}
	if cfg.Progress {
		c.progressOut = os.Stderr
	}
	return c
}

// newHTTPClient bounds the wait for response headers only. Artifact bodies
// may stream for as long as the context allows.
func newHTTPClient(headerTimeout time.Duration) *http.Client {
	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return &http.Client{}
	}
	transport = transport.Clone()
	transport.ResponseHeaderTimeout = headerTimeout
	return &http.Client{Transport: transport}
}

// WithHTTPClient replaces the HTTP client used for requests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// WithProgressOutput sets where the download progress bar is drawn. A nil writer disables it.
func (c *Client) WithProgressOutput(w io.Writer) *Client {
	c.progressOut = w
	return c
}

// AppDetails fetches the metadata the store reports for pkg.
func (c *Client) AppDetails(ctx context.Context, pkg string) (*domain.AppDetails, error) {
	resp, err := c.get(ctx, detailsPath, pkg)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, zerr.With(domain.ErrMetadataUnavailable, "package", pkg)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(domain.ErrStoreRequestFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(apiErr, "package", pkg)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreRequestFailed.Error())
	}

	var payload detailsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreResponseParseFailed.Error()), "package", pkg)
	}

	doc := payload.DocV2
	if doc == nil || doc.Details == nil || doc.Details.AppDetails == nil || doc.Details.AppDetails.VersionCode == nil {
		return nil, zerr.With(domain.ErrMetadataUnavailable, "package", pkg)
	}

	name := doc.DocID
	if name == "" {
		name = pkg
	}

	return &domain.AppDetails{
		PackageName: name,
		Title:       doc.Title,
		Creator:     doc.Creator,
		VersionCode: *doc.Details.AppDetails.VersionCode,
	}, nil
}

// Download streams the artifact for pkg into dest. The content is written to a
// temporary file next to dest and renamed once complete.
func (c *Client) Download(ctx context.Context, pkg, dest string) error {
	resp, err := c.get(ctx, downloadPath, pkg)
	if err != nil {
		return zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		dlErr := zerr.With(domain.ErrDownloadFailed, "status_code", resp.StatusCode)
		return zerr.With(dlErr, "package", pkg)
	}

	if err := c.writeArtifact(resp, pkg, dest); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "dest", dest)
	}

	return nil
}

func (c *Client) writeArtifact(resp *http.Response, pkg, dest string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".part-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	var w io.Writer = tmpFile
	var bar *progressbar.ProgressBar
	if c.progressOut != nil {
		bar = progressbar.NewOptions64(resp.ContentLength,
			progressbar.OptionSetWriter(c.progressOut),
			progressbar.OptionSetDescription("downloading "+pkg),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(progressWidth),
			progressbar.OptionThrottle(progressThrottle),
		)
		w = io.MultiWriter(tmpFile, bar)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if bar != nil {
		_ = bar.Finish()
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, dest)
}

func (c *Client) get(ctx context.Context, path, pkg string) (*http.Response, error) {
	endpoint := c.baseURL + path + "?" + url.Values{"doc": {pkg}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreRequestFailed.Error())
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreRequestFailed.Error()), "package", pkg)
	}

	return resp, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.creds.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.creds.Token)
	} else {
		req.SetBasicAuth(c.creds.Username, c.creds.Password)
	}
	req.Header.Set(deviceIDHeader, c.creds.AndroidID)
	if c.creds.LangCode != "" {
		req.Header.Set("Accept-Language", c.creds.LangCode)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
}
