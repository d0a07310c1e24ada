package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
)

// Default polling policy. The API gives no guidance on completion times, so
// the interval is fixed (matching the service's own examples) and the budget
// is explicit rather than open-ended.
const (
	DefaultPollInterval    = 5 * time.Second
	DefaultMaxPollAttempts = 60
)

// PollResults polls the results summary at a fixed interval until the job
// reaches a terminal state or the attempt budget runs out. The sleep between
// polls is cancellable through ctx. At most maxAttempts polls are issued;
// if the job is still pending after the last one, ErrPollTimeout is returned.
// A server-reported failure surfaces as ErrAnalysisFailed, any other API
// error aborts polling immediately.
func (c *Client) PollResults(ctx context.Context, uploadID string, interval time.Duration, maxAttempts uint64) (*ResultSummary, error) {
	if maxAttempts == 0 {
		return nil, fmt.Errorf("%w: zero attempt budget", ErrPollTimeout)
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	var summary *ResultSummary
	backoff := retry.WithMaxRetries(maxAttempts-1, retry.NewConstant(interval))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		c.log.Debug(ctx, "requesting summary", "upload_id", uploadID)
		s, err := c.ResultsSummary(ctx, uploadID)
		if err != nil {
			if errors.Is(err, ErrAnalysisPending) {
				c.log.Info(ctx, "analysis not complete", "upload_id", uploadID)
				return retry.RetryableError(err)
			}
			return err
		}
		summary = s
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAnalysisPending) {
			return nil, fmt.Errorf("%w after %d attempts: %w", ErrPollTimeout, maxAttempts, err)
		}
		return nil, err
	}
	return summary, nil
}
