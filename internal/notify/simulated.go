package notify

import (
	"context"
	"time"

	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

// SimulatedDelay is how long the simulated provider pretends delivery
// takes.
const SimulatedDelay = 2 * time.Second

// SimulatedSender mimics an email provider without network access: it
// waits a fixed delay and then reports success unconditionally. Used in
// environments with no provider credentials so the confirmation flow
// stays exercisable end to end.
type SimulatedSender struct {
	logger *logging.Logger
	delay  time.Duration
}

// NewSimulatedSender creates a simulated email sender.
func NewSimulatedSender(logger *logging.Logger) *SimulatedSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &SimulatedSender{logger: logger, delay: SimulatedDelay}
}

// Send waits out the simulated delay and succeeds. Context cancellation
// is the only way it fails.
func (s *SimulatedSender) Send(ctx context.Context, msg EmailMessage) error {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return ctx.Err()
	}
	s.logger.Info("simulated email delivered", "to", msg.To, "subject", msg.Subject)
	return nil
}

var _ EmailSender = (*SimulatedSender)(nil)
