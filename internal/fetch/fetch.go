package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds the single request when the caller sets none.
const DefaultTimeout = 15 * time.Second

// ErrInvalidURL marks a URL rejected by validation before any network use.
var ErrInvalidURL = errors.New("invalid document URL")

// URLRule is the host/path pattern a document URL must satisfy.
type URLRule struct {
	// HostContains must appear in the URL host.
	HostContains string
	// PathContains must appear in the URL path.
	PathContains string
}

// DefaultURLRule accepts published Google Docs exports.
var DefaultURLRule = URLRule{HostContains: "docs.google.com", PathContains: "/pub"}

// ValidateDocURL checks raw against rule. It runs before the network call so
// a bad URL never produces a request.
func ValidateDocURL(raw string, rule URLRule) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if rule.HostContains != "" && !strings.Contains(u.Host, rule.HostContains) {
		return fmt.Errorf("%w: host %q does not match %q", ErrInvalidURL, u.Host, rule.HostContains)
	}
	if rule.PathContains != "" && !strings.Contains(u.Path, rule.PathContains) {
		return fmt.Errorf("%w: path %q does not match %q", ErrInvalidURL, u.Path, rule.PathContains)
	}
	return nil
}

// StatusError reports an HTTP response outside the 2xx range.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.Status)
}

// Client issues a single GET per document. No retries and no caching: on
// timeout or HTTP error the failure surfaces immediately to the caller.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds the request. Zero means DefaultTimeout.
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Get fetches the document body. Non-2xx responses return *StatusError; a
// non-HTML content type is rejected.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	ua := c.UserAgent
	if ua == "" {
		ua = "gridart/1.0 (+https://github.com/gridlabs/gridart)"
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	c.Logger.Info().Str("url", rawURL).Msg("fetching document")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("request timed out after %s: %w", timeout, err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}
	contentType := resp.Header.Get("Content-Type")
	if !isAllowedContentType(contentType) {
		return nil, fmt.Errorf("unsupported content type: %s", contentType)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	c.Logger.Info().Str("contentType", contentType).Int("bytes", len(body)).Msg("fetch successful")
	return body, nil
}

func isAllowedContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	return strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml+xml")
}
