package client

import (
	"context"
	"net/http"
	"net/url"
)

// Targets lists the account's target library.
func (c *Client) Targets(ctx context.Context) ([]Target, error) {
	var ts []Target
	if err := c.do(ctx, http.MethodGet, "/targets", nil, nil, &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

// CreateTarget adds a target to the library and returns it with the
// server-assigned id.
func (c *Client) CreateTarget(ctx context.Context, t NewTarget) (*Target, error) {
	var created Target
	if err := c.do(ctx, http.MethodPost, "/targets", nil, t, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Target reads a single target by id.
func (c *Client) Target(ctx context.Context, id string) (*Target, error) {
	var t Target
	if err := c.do(ctx, http.MethodGet, "/targets/"+url.PathEscape(id), nil, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTarget replaces a target's definition and returns the updated record.
func (c *Client) UpdateTarget(ctx context.Context, id string, t NewTarget) (*Target, error) {
	var updated Target
	if err := c.do(ctx, http.MethodPost, "/targets/"+url.PathEscape(id), nil, t, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTarget removes a target from the library. The server answers 204.
func (c *Client) DeleteTarget(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/targets/"+url.PathEscape(id), nil, nil, nil)
}
