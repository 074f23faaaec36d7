// Package client talks to the parking-reservation backend. One Client per
// backend; all calls take a context and classify failures into the
// apperrors taxonomy.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"parquea/internal/apperrors"
	"parquea/internal/session"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	// HTTPClient may be replaced before first use, e.g. by tests.
	HTTPClient *http.Client

	baseURL string
	tokens  session.TokenSource
}

func New(baseURL string, tokens session.TokenSource) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		tokens:     tokens,
	}
}

// doJSON performs one authenticated request. A missing credential fails
// fast with ErrAuthRequired before anything is dialed. Non-2xx statuses
// become ServerError, transport failures NetworkError, and a 2xx with no
// body ErrEmptyResponse when a decoded response was expected.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	token, err := c.tokens.Token()
	if err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &apperrors.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperrors.NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apperrors.ServerError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return apperrors.ErrEmptyResponse
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
