package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// pendingMessage is the error body the API returns while an analysis job is
// still in progress.
const pendingMessage = "Image analysis not complete"

// PresignedUpload requests a single-use S3 form POST descriptor for the given
// remote filename. The filename must be non-empty; callers should make it
// unique per session to avoid collisions (see analysis.Session).
func (c *Client) PresignedUpload(ctx context.Context, filename string) (*PresignedUpload, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: empty filename", ErrRequest)
	}
	var p PresignedUpload
	if err := c.do(ctx, http.MethodGet, "/presigned-urls/"+url.PathEscape(filename), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// RequestAnalysis triggers server-side analysis of a previously uploaded
// object. A non-empty targetID selects a target from the library; otherwise
// the target type is auto-detected from the image.
func (c *Client) RequestAnalysis(ctx context.Context, uploadID, targetID string) error {
	var query url.Values
	if targetID != "" {
		query = url.Values{"target_id": []string{targetID}}
	}
	return c.do(ctx, http.MethodPost, "/requests-for-analysis/"+url.PathEscape(uploadID), query, nil, nil)
}

// ResultsSummary fetches the analysis outcome for an upload once. While the
// job is still running it returns ErrAnalysisPending; a server-reported
// failure returns ErrAnalysisFailed. Reading a terminal summary has no side
// effects, so repeated calls keep returning the same state.
func (c *Client) ResultsSummary(ctx context.Context, uploadID string) (*ResultSummary, error) {
	var s ResultSummary
	err := c.do(ctx, http.MethodGet, "/upload-results-summary/"+url.PathEscape(uploadID), nil, nil, &s)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message() == pendingMessage {
			return nil, fmt.Errorf("%w: upload %s", ErrAnalysisPending, uploadID)
		}
		return nil, err
	}
	if s.Status == StatusFailed {
		return nil, fmt.Errorf("%w: upload %s", ErrAnalysisFailed, uploadID)
	}
	return &s, nil
}
