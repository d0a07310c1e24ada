// Package analysis orchestrates one upload-and-analyze session against the
// ImageZebra API: presigned URL, storage upload, analysis request, result
// polling. Control flow is strictly linear; the only suspension point is the
// cancellable sleep between polls.
package analysis

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/imagezebra/imagezebra-go/internal/client"
	"github.com/imagezebra/imagezebra-go/internal/logging"
)

// Session runs the analysis workflow end to end. Each run is all-or-nothing:
// the first error aborts the remaining steps and is returned unchanged.
type Session struct {
	api         *client.Client
	httpc       *http.Client
	log         logging.Logger
	interval    time.Duration
	maxAttempts uint64
}

type SessionOption func(*Session)

// WithStorageHTTPClient replaces the HTTP client used for the storage upload.
// This client talks to the presigned URL, not the API.
func WithStorageHTTPClient(h *http.Client) SessionOption {
	return func(s *Session) { s.httpc = h }
}

// WithLogger attaches a logger to the session.
func WithLogger(l logging.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// WithPolling overrides the fixed poll interval and the attempt budget.
func WithPolling(interval time.Duration, maxAttempts uint64) SessionOption {
	return func(s *Session) {
		s.interval = interval
		s.maxAttempts = maxAttempts
	}
}

// NewSession wraps an authenticated API client with the default polling
// policy (5s fixed interval, 60 attempts).
func NewSession(api *client.Client, opts ...SessionOption) *Session {
	s := &Session{
		api:         api,
		httpc:       &http.Client{Timeout: client.DefaultRequestTimeout},
		log:         logging.Nop(),
		interval:    client.DefaultPollInterval,
		maxAttempts: client.DefaultMaxPollAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run uploads the image at imagePath, requests analysis with target
// auto-detection, and polls until the job finishes.
func (s *Session) Run(ctx context.Context, imagePath string) (*client.ResultSummary, error) {
	return s.RunWithTarget(ctx, imagePath, "")
}

// RunWithTarget is Run with an explicit target from the target library.
func (s *Session) RunWithTarget(ctx context.Context, imagePath, targetID string) (*client.ResultSummary, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	// Unique remote name per session, so repeated runs of the same local
	// file cannot collide.
	filename := uuid.NewString() + "-" + filepath.Base(imagePath)

	presigned, err := s.api.PresignedUpload(ctx, filename)
	if err != nil {
		return nil, err
	}

	if err := Upload(ctx, s.httpc, presigned, filename, data); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "upload successful", "upload_id", presigned.UploadID, "filename", filename)

	s.log.Info(ctx, "requesting analysis", "upload_id", presigned.UploadID)
	if err := s.api.RequestAnalysis(ctx, presigned.UploadID, targetID); err != nil {
		return nil, err
	}

	return s.api.PollResults(ctx, presigned.UploadID, s.interval, s.maxAttempts)
}
