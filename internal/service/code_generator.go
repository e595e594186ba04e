package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"delivery-wallet/internal/core/domain"
	"delivery-wallet/internal/core/ports"
	"delivery-wallet/pkg/apperror"
	"delivery-wallet/pkg/metrics"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const (
	defaultCodeAttempts       = 100
	defaultCodeInsertAttempts = 5
)

// CodeGenerator draws short human-readable codes that are unique among the
// live records of one namespace. Uniqueness is checked up front and enforced
// by the store's unique index at insert time; Issue retries the insert when
// the index reports a clash.
type CodeGenerator struct {
	maxAttempts       int
	maxInsertAttempts int
	random            io.Reader
	now               func() time.Time
	metrics           *metrics.Metrics
	log               zerolog.Logger
}

// NewCodeGenerator creates a CodeGenerator backed by crypto/rand.
func NewCodeGenerator(maxAttempts, maxInsertAttempts int, m *metrics.Metrics, log zerolog.Logger) *CodeGenerator {
	if maxAttempts <= 0 {
		maxAttempts = defaultCodeAttempts
	}
	if maxInsertAttempts <= 0 {
		maxInsertAttempts = defaultCodeInsertAttempts
	}
	return &CodeGenerator{
		maxAttempts:       maxAttempts,
		maxInsertAttempts: maxInsertAttempts,
		random:            rand.Reader,
		now:               time.Now,
		metrics:           m,
		log:               log,
	}
}

// Generate returns a code that isLive reported free. After MaxAttempts
// taken draws it falls back to a time-derived code instead of blocking.
func (g *CodeGenerator) Generate(ctx context.Context, spec ports.CodeSpec, isLive func(context.Context, string) (bool, error)) (string, error) {
	spec = g.normalize(spec)

	for attempt := 1; attempt <= spec.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		code, err := g.draw(spec.Alphabet, spec.Length)
		if err != nil {
			return "", apperror.InternalError(fmt.Errorf("draw code: %w", err))
		}
		live, err := isLive(ctx, code)
		if err != nil {
			return "", storeErr("check code", err)
		}
		if !live {
			g.metrics.ObserveCodeAttempts(spec.Namespace, attempt)
			return code, nil
		}
	}

	g.metrics.ObserveCodeAttempts(spec.Namespace, spec.MaxAttempts)
	g.metrics.CodeFallback(spec.Namespace)
	g.log.Warn().Str("namespace", spec.Namespace).Int("attempts", spec.MaxAttempts).Msg("code space congested, using fallback code")
	return g.fallback(spec.Alphabet, spec.Length)
}

// Issue generates a code and hands it to insert, drawing a fresh code each
// time insert reports domain.ErrCodeTaken.
func (g *CodeGenerator) Issue(
	ctx context.Context,
	spec ports.CodeSpec,
	isLive func(context.Context, string) (bool, error),
	insert func(context.Context, string) error,
) (string, error) {
	for attempt := 1; attempt <= g.maxInsertAttempts; attempt++ {
		code, err := g.Generate(ctx, spec, isLive)
		if err != nil {
			return "", err
		}
		err = insert(ctx, code)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, domain.ErrCodeTaken) {
			return "", err
		}
		g.log.Debug().Str("namespace", spec.Namespace).Int("attempt", attempt).Msg("code taken at insert, drawing again")
	}
	return "", apperror.ErrConflict("could not allocate a unique code")
}

func (g *CodeGenerator) normalize(spec ports.CodeSpec) ports.CodeSpec {
	if spec.Alphabet == "" {
		spec.Alphabet = domain.CodeAlphabet
	}
	if spec.MaxAttempts <= 0 {
		spec.MaxAttempts = g.maxAttempts
	}
	return spec
}

func (g *CodeGenerator) draw(alphabet string, length int) (string, error) {
	out := make([]byte, length)
	size := big.NewInt(int64(len(alphabet)))
	for i := range out {
		n, err := rand.Int(g.random, size)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

// fallback fills the first half of the code from the low-order bytes of a
// ULID timestamp and the rest with random characters.
func (g *CodeGenerator) fallback(alphabet string, length int) (string, error) {
	id, err := ulid.New(ulid.Timestamp(g.now()), g.random)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("fallback code: %w", err))
	}
	tail, err := g.draw(alphabet, length-length/2)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("fallback code: %w", err))
	}

	out := make([]byte, 0, length)
	for i := 0; i < length/2; i++ {
		out = append(out, alphabet[int(id[5-i%6])%len(alphabet)])
	}
	return string(out) + tail, nil
}
