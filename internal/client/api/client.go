// Package api implements the authenticated HTTP client for the dashboard API.
//
// Responses are decoded by their declared content type: application/json is
// unmarshalled into the caller's target, everything else is returned as raw
// text. The preview endpoint is the reason for the dual mode: it serves the
// rendered week message as plain text.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenHeaderName is the header carrying the operator-supplied dashboard token.
const TokenHeaderName = "X-Dashboard-Token"

// TokenSource yields the current token. It is consulted on every request so a
// token changed mid-session takes effect without reconstructing the client.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
}

// New creates a client for the given base URL. A zero timeout disables the
// client-side deadline; per-request deadlines come from the context either way.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: timeout},
	}
}

// Request performs one authenticated call. No retries happen at this layer.
//
// body may be nil (no payload), a string (sent verbatim, used by the import
// endpoints), or any JSON-marshallable value. The Content-Type header is
// always application/json, matching the dashboard server's expectations even
// for raw CSV payloads.
//
// out may be nil (response discarded). JSON responses are unmarshalled into
// out; any other content type requires out to be a *string.
func (c *Client) Request(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := strings.TrimSpace(c.tokens.Token()); token != "" {
		req.Header.Set(TokenHeaderName, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	}

	text, ok := out.(*string)
	if !ok {
		return fmt.Errorf("unexpected content type %q for %s", resp.Header.Get("Content-Type"), path)
	}
	*text = string(data)
	return nil
}
