package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to a relay Server over HTTP.
type Client struct {
	base string
	http *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimSuffix(base, "/"),
		http: http.DefaultClient,
	}
}

// PutProof deposits the envelope for its session id. It fails if a
// proof has already been deposited for the session.
func (c *Client) PutProof(ctx context.Context, env Envelope) error {
	return c.post(ctx, "/proof/"+url.PathEscape(env.SessionID), env)
}

// WaitProof blocks until a proof is deposited for the session id, the
// server's wait expires, or ctx is done.
func (c *Client) WaitProof(ctx context.Context, sessionID string) (Envelope, error) {
	var out Envelope
	if err := c.getJSON(ctx, "/proof/"+url.PathEscape(sessionID), &out); err != nil {
		return Envelope{}, err
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, in any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("relay post %s: %s", path, resp.Status)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("relay get %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
