package helpers

import (
	"context"
	"time"

	"github.com/GregMSThompson/finance-insights/pkg/logger"
)

// TestCtx returns a context carrying a logger that discards output.
func TestCtx() context.Context {
	return logger.ToContext(context.Background(), logger.New("debug", logger.NewTestHandler))
}

// TestClock returns a clock fixed at t, for services that take a clockNow.
func TestClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
