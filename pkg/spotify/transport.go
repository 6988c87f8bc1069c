package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// get performs a single GET against the Web API with the bearer token
// attached and returns the raw response body.
//
// locator may be a path relative to the client's base URL (for the first
// request of an operation) or an absolute URL (as handed out by the API's
// pagination pointers). Timeouts are whatever the underlying http.Client
// enforces; the transport adds none of its own.
func (c *Client) get(ctx context.Context, locator string, query url.Values) ([]byte, error) {
	target := locator
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = c.baseURL + target
	}
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target = target + sep + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")

	c.logDebugf("spotify: GET %s", target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// getJSON performs a GET and decodes the response body into dst.
func (c *Client) getJSON(ctx context.Context, locator string, query url.Values, dst interface{}) error {
	body, err := c.get(ctx, locator, query)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
