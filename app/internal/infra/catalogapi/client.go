package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"example.com/solar-directory/app/internal/domain/filter"
	domview "example.com/solar-directory/app/internal/domain/view"
)

const maxBodySize = 16 << 20

var ErrUnexpectedBody = errors.New("unexpected catalog response body")

// Client reads entity and category collections from a REST catalog that
// answers either a JSON array or an {"items": [...], "meta": {...}} envelope.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("catalog url %q: scheme must be http or https", baseURL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{baseURL: u, http: &http.Client{Timeout: timeout}}, nil
}

func (c *Client) Entities(ctx context.Context, kind domview.Kind) ([]filter.Entity, error) {
	if !kind.IsValid() {
		return nil, domview.ErrInvalidKind
	}
	var out []filter.Entity
	if err := c.getCollection(ctx, string(kind), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Categories(ctx context.Context) ([]filter.Category, error) {
	var out []filter.Category
	if err := c.getCollection(ctx, "categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getCollection(ctx context.Context, path string, dst any) error {
	u := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: status %d", path, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return DecodeCollection(body, dst)
}

type envelope struct {
	Items json.RawMessage `json:"items"`
	Meta  json.RawMessage `json:"meta"`
}

// DecodeCollection decodes a bare JSON array or the items of an envelope
// into dst.
func DecodeCollection(body []byte, dst any) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ErrUnexpectedBody
	}
	switch body[0] {
	case '[':
		return json.Unmarshal(body, dst)
	case '{':
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return err
		}
		if len(env.Items) == 0 || bytes.Equal(env.Items, []byte("null")) {
			return json.Unmarshal([]byte("[]"), dst)
		}
		return json.Unmarshal(env.Items, dst)
	default:
		return ErrUnexpectedBody
	}
}
