package recognition

import (
	"context"

	"go.uber.org/zap"
)

// Stub is the deployed provider. It refuses every request until a backend
// proxy exists; the refusal is deliberate, not a transient failure.
type Stub struct {
	log *zap.Logger
}

// NewStub returns the always-failing provider.
func NewStub(log *zap.Logger) *Stub {
	return &Stub{log: log}
}

// Recognize always fails with ErrUnavailable.
func (s *Stub) Recognize(ctx context.Context, image []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.log.Debug("recognition requested", zap.Int("image_bytes", len(image)))
	return nil, ErrUnavailable
}
