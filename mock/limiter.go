package mock

import (
	"context"

	"github.com/mkowalik/feedscout"
)

var _ feedscout.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of feedscout.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
