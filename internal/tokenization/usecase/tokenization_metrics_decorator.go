package usecase

import (
	"context"
	"time"

	"github.com/fintechx/panvault/internal/metrics"
	tokenizationDomain "github.com/fintechx/panvault/internal/tokenization/domain"
)

const metricsDomain = "tokenization"

// tokenizationMetricsDecorator wraps a TokenizationUseCase and records an
// observation per operation.
type tokenizationMetricsDecorator struct {
	next     TokenizationUseCase
	recorder metrics.Recorder
}

// NewTokenizationMetricsDecorator wraps a TokenizationUseCase with metrics
// recording.
func NewTokenizationMetricsDecorator(
	next TokenizationUseCase,
	recorder metrics.Recorder,
) TokenizationUseCase {
	return &tokenizationMetricsDecorator{next: next, recorder: recorder}
}

func (d *tokenizationMetricsDecorator) Tokenize(
	ctx context.Context,
	rawPAN string,
) (*tokenizationDomain.Token, error) {
	start := time.Now()
	token, err := d.next.Tokenize(ctx, rawPAN)
	d.recorder.Observe(ctx, metricsDomain, "tokenize", time.Since(start), err)
	return token, err
}

func (d *tokenizationMetricsDecorator) Detokenize(
	ctx context.Context,
	token string,
) (*DetokenizeResult, error) {
	start := time.Now()
	result, err := d.next.Detokenize(ctx, token)
	d.recorder.Observe(ctx, metricsDomain, "detokenize", time.Since(start), err)
	return result, err
}

func (d *tokenizationMetricsDecorator) Delete(ctx context.Context, token string) error {
	start := time.Now()
	err := d.next.Delete(ctx, token)
	d.recorder.Observe(ctx, metricsDomain, "delete", time.Since(start), err)
	return err
}
