package visa

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	requestTimeout    = 30 * time.Second
	maxErrorBodyBytes = 4 * 1024
)

// Factory builds authenticated partner clients from an immutable Config. It
// is safe for concurrent use; each NewClient call is independent.
type Factory struct {
	cfg Config
}

func NewFactory(cfg Config) *Factory {
	return &Factory{cfg: cfg}
}

// NewClient constructs a client bound to the environment-selected base URL,
// carrying the mTLS key pair and basic-auth credentials. The key pair is
// loaded on every call so a repaired certificate takes effect on the next
// invocation. There is no unauthenticated fallback.
func (f *Factory) NewClient() (*Client, error) {
	cert, err := tls.LoadX509KeyPair(f.cfg.CertPath, f.cfg.KeyPath)
	if err != nil {
		return nil, &ConfigError{Path: f.cfg.CertPath, Err: err}
	}
	return &Client{
		BaseURL: f.cfg.BaseURL(),
		HTTPClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					Certificates: []tls.Certificate{cert},
				},
			},
		},
		userID:   f.cfg.UserID,
		password: f.cfg.Password,
	}, nil
}

// Client issues JSON requests against the partner API. BaseURL and HTTPClient
// are exported so tests can point the client at a stub transport.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	userID   string
	password string
}

// Close releases any connections the client holds. Clients are scoped to a
// single invocation.
func (c *Client) Close() {
	if c.HTTPClient != nil {
		c.HTTPClient.CloseIdleConnections()
	}
}

// Do issues one request and decodes the response. body may be nil for
// body-less methods. Failures map onto the error taxonomy: request/network
// problems become TransportError, non-2xx statuses PartnerError, and
// undecodable success bodies DecodeError.
func (c *Client) Do(ctx context.Context, method, path string, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.userID, c.password)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &PartnerError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(snippet)),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return payload, nil
}
