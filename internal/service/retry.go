package service

import (
	"context"
	"time"

	"delivery-wallet/pkg/apperror"
	"delivery-wallet/pkg/metrics"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// RetryPolicy bounds automatic retries of a whole unit of work after a
// transient store failure. A zero MaxElapsed disables retrying.
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxElapsed      time.Duration
}

// retrier re-runs units of work that failed with a retryable AppError.
// Any other error stops it immediately.
type retrier struct {
	policy  RetryPolicy
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func newRetrier(policy RetryPolicy, m *metrics.Metrics, log zerolog.Logger) retrier {
	return retrier{policy: policy, metrics: m, log: log}
}

func (r retrier) do(ctx context.Context, operation string, fn func() error) error {
	if r.policy.MaxElapsed <= 0 {
		return fn()
	}

	b := backoff.NewExponentialBackOff()
	if r.policy.InitialInterval > 0 {
		b.InitialInterval = r.policy.InitialInterval
	}
	b.MaxElapsedTime = r.policy.MaxElapsed

	op := func() error {
		err := fn()
		if err != nil && !apperror.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		r.metrics.Retry(operation)
		r.log.Warn().Err(err).Str("operation", operation).Dur("wait", wait).Msg("transient store failure, retrying unit")
	}
	return backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify)
}

// retryValue is do for units that produce a value.
func retryValue[T any](ctx context.Context, r retrier, operation string, fn func() (T, error)) (T, error) {
	var out T
	err := r.do(ctx, operation, func() error {
		v, err := fn()
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}
